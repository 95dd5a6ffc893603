package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "tripplanner/internal/models/db_models"
)

// DashboardRepository aggregates trip counters for one user.
type DashboardRepository interface {
	CountTotalTrips(ctx context.Context, userID string) (int64, error)
	CountNewTrips(ctx context.Context, userID string, start, end time.Time) (int64, error)
	CountTripsByStatus(ctx context.Context, userID string, status string) (int64, error)
	CountPublishedTrips(ctx context.Context, userID string) (int64, error)
	CountFavoriteTrips(ctx context.Context, userID string) (int64, error)

	NewTripsSeries(ctx context.Context, userID string, start, end time.Time, interval, tz string) ([]BucketSum, error)
	TopDestinations(ctx context.Context, userID string, start, end time.Time, limit int) ([]DestinationRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type BucketSum struct {
	Bucket time.Time `gorm:"column:bucket"`
	Sum    int64     `gorm:"column:sum"`
}

type DestinationRow struct {
	Destination string `gorm:"column:destination"`
	Count       int64  `gorm:"column:count"`
}

func dateTrunc(interval, tz string, unixColumn string) string {
	// unixColumn holds UNIX seconds (created_at on BaseModel rows).
	// Example: date_trunc('day', timezone('UTC', to_timestamp(created_at)))
	if tz == "" {
		return "date_trunc(?, to_timestamp(" + unixColumn + "))"
	}
	return "date_trunc(?, timezone(?, to_timestamp(" + unixColumn + ")))"
}

func (r *dashboardRepository) CountTotalTrips(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountNewTrips(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("user_id = ?", userID).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountTripsByStatus(ctx context.Context, userID string, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("user_id = ?", userID).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountPublishedTrips(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("user_id = ?", userID).
		Where("is_published = ?", true).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountFavoriteTrips(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("user_id = ?", userID).
		Where("is_favorite = ?", true).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) NewTripsSeries(ctx context.Context, userID string, start, end time.Time, interval, tz string) ([]BucketSum, error) {
	var rows []BucketSum
	truncExpr := dateTrunc(interval, tz, "created_at")
	args := []interface{}{interval}
	if tz != "" {
		args = append(args, tz)
	}
	tx := r.db.WithContext(ctx).
		Table("trips").
		Select(truncExpr+" AS bucket, COUNT(*) AS sum", args...).
		Where("user_id = ?", userID).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Group("bucket").
		Order("bucket ASC")
	err := tx.Find(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TopDestinations(ctx context.Context, userID string, start, end time.Time, limit int) ([]DestinationRow, error) {
	var rows []DestinationRow
	err := r.db.WithContext(ctx).
		Table("trips").
		Select("destination, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Where("created_at BETWEEN ? AND ?", start.Unix(), end.Unix()).
		Where("destination <> ''").
		Group("destination").
		Order("count DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
