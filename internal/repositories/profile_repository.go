package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "tripplanner/internal/models/db_models"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*dbm.UserProfile, error)
	CreateProfile(ctx context.Context, profile *dbm.UserProfile) error
	UpdateProfile(ctx context.Context, profile *dbm.UserProfile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*dbm.UserProfile, error) {
	var profile dbm.UserProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *dbm.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) UpdateProfile(ctx context.Context, profile *dbm.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&dbm.UserProfile{}).Error
}
