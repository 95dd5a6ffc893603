package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type ItineraryServiceInterface interface {
	ListDays(ctx context.Context, userID string, tripID string) ([]response_models.ItineraryDayResponse, error)
	GetDay(ctx context.Context, userID string, tripID string, dayNumber int) (*response_models.ItineraryDayResponse, error)
	UpdateDay(ctx context.Context, userID string, tripID string, dayNumber int, plan response_models.DayPlan) (*response_models.ItineraryDayResponse, error)
	DeleteDay(ctx context.Context, userID string, tripID string, dayNumber int) error
}

type ItineraryService struct {
	tripRepo      repositories.TripRepository
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(tripRepo repositories.TripRepository, itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo:      tripRepo,
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) ListDays(ctx context.Context, userID string, tripID string) ([]response_models.ItineraryDayResponse, error) {
	if err := s.checkAccess(ctx, userID, tripID, false); err != nil {
		return nil, err
	}

	rows, err := s.itineraryRepo.GetListByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryDayResponse, 0, len(rows))
	for i := range rows {
		day, err := toItineraryDayResponse(&rows[i])
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		out = append(out, day)
	}
	return out, nil
}

func (s *ItineraryService) GetDay(ctx context.Context, userID string, tripID string, dayNumber int) (*response_models.ItineraryDayResponse, error) {
	if err := s.checkAccess(ctx, userID, tripID, false); err != nil {
		return nil, err
	}

	row, err := s.itineraryRepo.GetByTripAndDay(ctx, tripID, dayNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrItineraryNotFound
	}

	day, err := toItineraryDayResponse(row)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &day, nil
}

func (s *ItineraryService) UpdateDay(ctx context.Context, userID string, tripID string, dayNumber int, plan response_models.DayPlan) (*response_models.ItineraryDayResponse, error) {
	if err := s.checkAccess(ctx, userID, tripID, true); err != nil {
		return nil, err
	}

	row, err := s.itineraryRepo.GetByTripAndDay(ctx, tripID, dayNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrItineraryNotFound
	}

	// The stored day number and date win over whatever the client sent.
	plan.DayNumber = row.DayNumber
	if plan.Date == "" {
		plan.Date = row.Date.Format("2006-01-02")
	}

	encoded, err := json.Marshal(plan)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	row.Plan = datatypes.JSON(encoded)

	if err := s.itineraryRepo.UpdateItinerary(ctx, row); err != nil {
		return nil, utils.ErrDatabaseError
	}

	day, err := toItineraryDayResponse(row)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &day, nil
}

func (s *ItineraryService) DeleteDay(ctx context.Context, userID string, tripID string, dayNumber int) error {
	if err := s.checkAccess(ctx, userID, tripID, true); err != nil {
		return err
	}

	row, err := s.itineraryRepo.GetByTripAndDay(ctx, tripID, dayNumber)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if row == nil {
		return utils.ErrItineraryNotFound
	}

	return s.itineraryRepo.DeleteByTripAndDay(ctx, tripID, dayNumber)
}

// checkAccess verifies the trip exists and the caller may read it, or owns
// it when requireOwner is set.
func (s *ItineraryService) checkAccess(ctx context.Context, userID string, tripID string, requireOwner bool) error {
	trip, err := s.tripRepo.GetTripByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if trip.UserID != userID {
		if requireOwner || !trip.IsPublished {
			return utils.ErrNotOwner
		}
	}
	return nil
}
