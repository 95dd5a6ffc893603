package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripplanner/internal/models/db_models"
)

type ItineraryRepository interface {
	// ReplaceTripItineraries wipes any stored days for the trip and inserts
	// the new set in one transaction.
	ReplaceTripItineraries(ctx context.Context, tripID uuid.UUID, days []dbm.Itinerary) error

	GetByTripAndDay(ctx context.Context, tripID string, dayNumber int) (*dbm.Itinerary, error)
	GetListByTripID(ctx context.Context, tripID string) ([]dbm.Itinerary, error)
	UpdateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error
	DeleteByTripAndDay(ctx context.Context, tripID string, dayNumber int) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) ReplaceTripItineraries(ctx context.Context, tripID uuid.UUID, days []dbm.Itinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.Itinerary{}).Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
}

func (r *itineraryRepository) GetByTripAndDay(ctx context.Context, tripID string, dayNumber int) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND day_number = ?", tripID, dayNumber).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) GetListByTripID(ctx context.Context, tripID string) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day_number ASC").
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}

	return itineraries, nil
}

func (r *itineraryRepository) UpdateItinerary(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).Save(itinerary).Error
}

func (r *itineraryRepository) DeleteByTripAndDay(ctx context.Context, tripID string, dayNumber int) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ? AND day_number = ?", tripID, dayNumber).
		Delete(&dbm.Itinerary{}).Error
}
