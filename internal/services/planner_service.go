package services

import (
	"context"
	"log"
	"strings"
	"time"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/response_models"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

const planCacheTTL = time.Hour

// PlannerServiceInterface turns a trip request into a parsed itinerary.
// Generation failures are hard errors; parse failures degrade to the
// default itinerary so a trip is never left without a plan.
type PlannerServiceInterface interface {
	GeneratePlan(ctx context.Context, trip *db_models.Trip, profile *db_models.UserProfile) (response_models.ItineraryResult, string, error)
}

type PlannerService struct {
	client  utils.TripPlanClientInterface
	parser  ItineraryParser
	dialect Dialect
	cache   mem.PlanCache
}

func NewPlannerService(client utils.TripPlanClientInterface, dialect Dialect, cache mem.PlanCache) PlannerServiceInterface {
	return &PlannerService{
		client:  client,
		parser:  NewItineraryParser(dialect),
		dialect: dialect,
		cache:   cache,
	}
}

func (s *PlannerService) GeneratePlan(ctx context.Context, trip *db_models.Trip, profile *db_models.UserProfile) (response_models.ItineraryResult, string, error) {
	prompt := BuildTripPrompt(trip, profile)

	raw, err := s.generateRaw(ctx, prompt)
	if err != nil {
		log.Printf("Plan generation failed for trip %s: %v", trip.ID, err)
		return response_models.ItineraryResult{}, "", utils.ErrGenerationFailed
	}

	result, err := s.parser.Parse(raw)
	if err != nil {
		log.Printf("Plan parse failed for trip %s, falling back to default: %v", trip.ID, err)
		result = response_models.DefaultItineraryResult()
	}

	s.padSchedule(&result, trip)
	return result, raw, nil
}

func (s *PlannerService) generateRaw(ctx context.Context, prompt string) (string, error) {
	key := mem.CacheKey(prompt, string(s.dialect))
	if cached, ok := s.cache.Get(key); ok {
		log.Printf("Plan cache hit")
		return cached, nil
	}

	raw, err := s.client.GenerateTripPlan(ctx, PlanInstructions(s.dialect), prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		return "", utils.ErrGenerationFailed
	}

	s.cache.Set(key, raw, planCacheTTL)
	return raw, nil
}

// padSchedule guarantees one schedule entry per trip day, in order, with the
// calendar date filled in. Model output that came back short or with bad
// dates still yields a complete day grid.
func (s *PlannerService) padSchedule(result *response_models.ItineraryResult, trip *db_models.Trip) {
	days := int(trip.EndDate.Sub(trip.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}

	for i := 0; i < days; i++ {
		date := trip.StartDate.AddDate(0, 0, i).Format("2006-01-02")
		if i >= len(result.DailySchedule) {
			result.DailySchedule = append(result.DailySchedule, response_models.EmptyDayPlan(i+1, date))
			continue
		}
		result.DailySchedule[i].DayNumber = i + 1
		if result.DailySchedule[i].Date == "" {
			result.DailySchedule[i].Date = date
		}
	}
	if len(result.DailySchedule) > days {
		result.DailySchedule = result.DailySchedule[:days]
	}
}
