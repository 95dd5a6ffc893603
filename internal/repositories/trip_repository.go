package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripplanner/internal/models/db_models"
)

// TripListFilter narrows the trip list query. ShowUnpublished defaults to
// true for a user listing their own trips.
type TripListFilter struct {
	ShowUnpublished bool
	FavoritesOnly   bool
}

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *dbm.Trip) error
	GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error)
	GetListOfTripsByUserID(ctx context.Context, page int, pageSize int, userID string, filter TripListFilter) ([]dbm.Trip, error)
	UpdateTrip(ctx context.Context, trip *dbm.Trip) error
	DeleteTripWithItineraries(ctx context.Context, tripID string) error
	SetPublished(ctx context.Context, tripID string, published bool) error
	SetFavorite(ctx context.Context, tripID string, favorite bool) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripByID(ctx context.Context, tripID string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Itineraries", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) GetListOfTripsByUserID(ctx context.Context, page int, pageSize int, userID string, filter TripListFilter) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID)
	if !filter.ShowUnpublished {
		query = query.Where("is_published = ?", true)
	}
	if filter.FavoritesOnly {
		query = query.Where("is_favorite = ?", true)
	}
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) UpdateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) DeleteTripWithItineraries(ctx context.Context, tripID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.Itinerary{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).
			Delete(&dbm.TripEmbedding{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tripID).
			Delete(&dbm.Trip{}).Error
	})
}

func (r *tripRepository) SetPublished(ctx context.Context, tripID string, published bool) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripID).
		Update("is_published", published).Error
}

func (r *tripRepository) SetFavorite(ctx context.Context, tripID string, favorite bool) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripID).
		Update("is_favorite", favorite).Error
}
