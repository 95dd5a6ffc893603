package services

import (
	"context"
	"time"

	resp "tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
)

// DashboardService reports trip activity for one authenticated user.
type DashboardService interface {
	BuildDashboard(ctx context.Context, userID string, rng resp.TimeRange) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// normalizeRange ensures sane defaults and ordering
func normalizeRange(r resp.TimeRange) resp.TimeRange {
	out := r
	if out.Interval == "" {
		out.Interval = "day"
	}
	if out.End.IsZero() {
		out.End = time.Now().UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30) // last 30 days default
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildDashboard(ctx context.Context, userID string, rng resp.TimeRange) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng)

	totalTrips, err := s.repo.CountTotalTrips(ctx, userID)
	if err != nil {
		return nil, err
	}
	newTrips, err := s.repo.CountNewTrips(ctx, userID, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	completedTrips, err := s.repo.CountTripsByStatus(ctx, userID, TripStatusCompleted)
	if err != nil {
		return nil, err
	}
	failedTrips, err := s.repo.CountTripsByStatus(ctx, userID, TripStatusFailed)
	if err != nil {
		return nil, err
	}
	publishedTrips, err := s.repo.CountPublishedTrips(ctx, userID)
	if err != nil {
		return nil, err
	}
	favoriteTrips, err := s.repo.CountFavoriteTrips(ctx, userID)
	if err != nil {
		return nil, err
	}

	seriesRows, err := s.repo.NewTripsSeries(ctx, userID, rng.Start, rng.End, rng.Interval, rng.Timezone)
	if err != nil {
		return nil, err
	}
	var newTripPoints []resp.SeriesPoint
	for _, r := range seriesRows {
		newTripPoints = append(newTripPoints, resp.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
	}

	destRows, err := s.repo.TopDestinations(ctx, userID, rng.Start, rng.End, 10)
	if err != nil {
		return nil, err
	}
	var topDestinations []resp.TopDestination
	for _, r := range destRows {
		topDestinations = append(topDestinations, resp.TopDestination{
			Destination: r.Destination,
			Count:       r.Count,
		})
	}

	report := &resp.DashboardReport{
		Range: rng,
		KPIs: resp.KPIBlock{
			TotalTrips:     totalTrips,
			NewTrips:       newTrips,
			CompletedTrips: completedTrips,
			FailedTrips:    failedTrips,
			PublishedTrips: publishedTrips,
			FavoriteTrips:  favoriteTrips,
		},
		NewTrips: resp.CountSeries{
			Points: newTripPoints,
		},
		TopDestinations: topDestinations,
	}

	return report, nil
}
