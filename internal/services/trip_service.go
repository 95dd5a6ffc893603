package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

const (
	TripStatusPending   = "pending"
	TripStatusCompleted = "completed"
	TripStatusFailed    = "failed"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error)
	GetTripsByUser(ctx context.Context, userID string, page int, pageSize int, filter repositories.TripListFilter) ([]response_models.TripResponse, error)
	GetTripDetail(ctx context.Context, userID string, tripID string) (*response_models.TripDetailResponse, error)
	DeleteTrip(ctx context.Context, userID string, tripID string) error
	SetPublished(ctx context.Context, userID string, tripID string, published bool) error
	SetFavorite(ctx context.Context, userID string, tripID string, favorite bool) error
	GetSimilarTrips(ctx context.Context, userID string, tripID string, limit int) ([]response_models.SimilarTripResponse, error)
}

type TripService struct {
	tripRepo      repositories.TripRepository
	itineraryRepo repositories.ItineraryRepository
	profileRepo   repositories.ProfileRepository
	embeddingRepo repositories.TripEmbeddingRepository
	planner       PlannerServiceInterface
	aiClient      utils.TripPlanClientInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	itineraryRepo repositories.ItineraryRepository,
	profileRepo repositories.ProfileRepository,
	embeddingRepo repositories.TripEmbeddingRepository,
	planner PlannerServiceInterface,
	aiClient utils.TripPlanClientInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
		profileRepo:   profileRepo,
		embeddingRepo: embeddingRepo,
		planner:       planner,
		aiClient:      aiClient,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, userID string, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if endDate.Before(startDate) {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		UserID:              userID,
		Destination:         req.Destination,
		StartDate:           startDate,
		EndDate:             endDate,
		ArrivalTime:         req.ArrivalTime,
		DepartureTime:       req.DepartureTime,
		DietaryPreferences:  req.DietaryPreferences,
		ActivityPreferences: req.ActivityPreferences,
		AdditionalNotes:     req.AdditionalNotes,
		Status:              TripStatusPending,
		IsPublished:         true,
	}
	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Printf("Profile lookup failed for user %s: %v", userID, err)
		profile = nil
	}

	result, raw, err := s.planner.GeneratePlan(ctx, trip, profile)
	if err != nil {
		trip.Status = TripStatusFailed
		if updErr := s.tripRepo.UpdateTrip(ctx, trip); updErr != nil {
			log.Printf("Failed to mark trip %s as failed: %v", trip.ID, updErr)
		}
		return nil, err
	}

	rows, err := buildItineraryRows(trip, result, raw)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if err := s.itineraryRepo.ReplaceTripItineraries(ctx, trip.ID, rows); err != nil {
		return nil, utils.ErrDatabaseError
	}

	trip.Status = TripStatusCompleted
	if err := s.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.storeTripEmbedding(ctx, trip)

	detail := &response_models.TripDetailResponse{
		Trip:        toTripResponse(trip),
		Itineraries: toDayResponses(result),
	}
	return detail, nil
}

// storeTripEmbedding indexes the trip for similarity search. Failures are
// logged and never block trip creation.
func (s *TripService) storeTripEmbedding(ctx context.Context, trip *db_models.Trip) {
	text := fmt.Sprintf("%s %s %s", trip.Destination, trip.ActivityPreferences, trip.AdditionalNotes)
	vector, err := s.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("Embedding failed for trip %s: %v", trip.ID, err)
		return
	}

	emb := &db_models.TripEmbedding{
		TripID:      trip.ID.String(),
		UserID:      trip.UserID,
		Destination: trip.Destination,
		Preferences: trip.ActivityPreferences,
		Embedding:   vector,
	}
	if err := s.embeddingRepo.UpsertTripEmbedding(ctx, emb); err != nil {
		log.Printf("Embedding upsert failed for trip %s: %v", trip.ID, err)
	}
}

func (s *TripService) GetTripsByUser(ctx context.Context, userID string, page int, pageSize int, filter repositories.TripListFilter) ([]response_models.TripResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := s.tripRepo.GetListOfTripsByUserID(ctx, page, pageSize, userID, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, toTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTripDetail(ctx context.Context, userID string, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID != userID && !trip.IsPublished {
		return nil, utils.ErrNotOwner
	}

	detail := &response_models.TripDetailResponse{
		Trip:        toTripResponse(trip),
		Itineraries: make([]response_models.ItineraryDayResponse, 0, len(trip.Itineraries)),
	}
	for i := range trip.Itineraries {
		day, err := toItineraryDayResponse(&trip.Itineraries[i])
		if err != nil {
			log.Printf("Skipping unreadable itinerary row %s: %v", trip.Itineraries[i].ID, err)
			continue
		}
		detail.Itineraries = append(detail.Itineraries, day)
	}
	return detail, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userID string, tripID string) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}
	if err := s.tripRepo.DeleteTripWithItineraries(ctx, trip.ID.String()); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) SetPublished(ctx context.Context, userID string, tripID string, published bool) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}
	if err := s.tripRepo.SetPublished(ctx, trip.ID.String(), published); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) SetFavorite(ctx context.Context, userID string, tripID string, favorite bool) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}
	if err := s.tripRepo.SetFavorite(ctx, trip.ID.String(), favorite); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) GetSimilarTrips(ctx context.Context, userID string, tripID string, limit int) ([]response_models.SimilarTripResponse, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID != userID && !trip.IsPublished {
		return nil, utils.ErrNotOwner
	}

	text := fmt.Sprintf("%s %s %s", trip.Destination, trip.ActivityPreferences, trip.AdditionalNotes)
	vector, err := s.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		return nil, utils.ErrGenerationFailed
	}

	matches, err := s.embeddingRepo.GetSimilarTrips(ctx, vector, tripID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SimilarTripResponse, 0, len(matches))
	for _, m := range matches {
		match, err := s.tripRepo.GetTripByID(ctx, m.TripID)
		if err != nil || match == nil {
			continue
		}
		if match.UserID != userID && !match.IsPublished {
			continue
		}
		out = append(out, response_models.SimilarTripResponse{
			ID:          match.ID.String(),
			Destination: match.Destination,
			StartDate:   match.StartDate.Format("2006-01-02"),
			EndDate:     match.EndDate.Format("2006-01-02"),
		})
	}
	return out, nil
}

func (s *TripService) ownedTrip(ctx context.Context, userID string, tripID string) (*db_models.Trip, error) {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID != userID {
		return nil, utils.ErrNotOwner
	}
	return trip, nil
}

func toTripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		StartDate:   trip.StartDate.Format("2006-01-02"),
		EndDate:     trip.EndDate.Format("2006-01-02"),
		Status:      trip.Status,
		IsPublished: trip.IsPublished,
		IsFavorite:  trip.IsFavorite,
	}
}

func buildItineraryRows(trip *db_models.Trip, result response_models.ItineraryResult, raw string) ([]db_models.Itinerary, error) {
	accommodations, err := json.Marshal(result.Accommodations)
	if err != nil {
		return nil, err
	}
	tips, err := json.Marshal(result.TravelTips)
	if err != nil {
		return nil, err
	}

	rows := make([]db_models.Itinerary, 0, len(result.DailySchedule))
	for _, day := range result.DailySchedule {
		plan, err := json.Marshal(day)
		if err != nil {
			return nil, err
		}
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			date = trip.StartDate.AddDate(0, 0, day.DayNumber-1)
		}
		rows = append(rows, db_models.Itinerary{
			TripID:         trip.ID,
			DayNumber:      day.DayNumber,
			Date:           date,
			Plan:           datatypes.JSON(plan),
			Accommodations: datatypes.JSON(accommodations),
			TravelTips:     datatypes.JSON(tips),
			RawResponse:    raw,
		})
	}
	return rows, nil
}

func toDayResponses(result response_models.ItineraryResult) []response_models.ItineraryDayResponse {
	out := make([]response_models.ItineraryDayResponse, 0, len(result.DailySchedule))
	for _, day := range result.DailySchedule {
		out = append(out, response_models.ItineraryDayResponse{
			DayNumber:      day.DayNumber,
			Date:           day.Date,
			Plan:           day,
			Accommodations: result.Accommodations,
			TravelTips:     result.TravelTips,
		})
	}
	return out
}

func toItineraryDayResponse(row *db_models.Itinerary) (response_models.ItineraryDayResponse, error) {
	var day response_models.DayPlan
	if err := json.Unmarshal(row.Plan, &day); err != nil {
		return response_models.ItineraryDayResponse{}, err
	}
	var accommodations []response_models.Accommodation
	if len(row.Accommodations) > 0 {
		if err := json.Unmarshal(row.Accommodations, &accommodations); err != nil {
			return response_models.ItineraryDayResponse{}, err
		}
	}
	var tips response_models.TravelTips
	if len(row.TravelTips) > 0 {
		if err := json.Unmarshal(row.TravelTips, &tips); err != nil {
			return response_models.ItineraryDayResponse{}, err
		}
	}
	return response_models.ItineraryDayResponse{
		DayNumber:      row.DayNumber,
		Date:           row.Date.Format("2006-01-02"),
		Plan:           day,
		Accommodations: accommodations,
		TravelTips:     tips,
	}, nil
}
