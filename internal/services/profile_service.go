package services

import (
	"context"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error)
	UpsertProfile(ctx context.Context, userID string, req request_models.UpsertProfileRequest) (*response_models.ProfileResponse, error)
	DeleteProfile(ctx context.Context, userID string) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*response_models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return toProfileResponse(profile), nil
}

func (s *ProfileService) UpsertProfile(ctx context.Context, userID string, req request_models.UpsertProfileRequest) (*response_models.ProfileResponse, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing == nil {
		profile := &db_models.UserProfile{
			UserID:             userID,
			TravelerType:       db_models.TravelerType(req.TravelerType),
			ActivityLevel:      db_models.ActivityLevel(req.ActivityLevel),
			BudgetPreference:   db_models.BudgetPreference(req.BudgetPreference),
			SpecialInterests:   req.SpecialInterests,
			DietaryPreferences: req.DietaryPreferences,
			AccessibilityNeeds: req.AccessibilityNeeds,
			PreferredLanguages: req.PreferredLanguages,
		}
		if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return toProfileResponse(profile), nil
	}

	existing.TravelerType = db_models.TravelerType(req.TravelerType)
	existing.ActivityLevel = db_models.ActivityLevel(req.ActivityLevel)
	existing.BudgetPreference = db_models.BudgetPreference(req.BudgetPreference)
	existing.SpecialInterests = req.SpecialInterests
	existing.DietaryPreferences = req.DietaryPreferences
	existing.AccessibilityNeeds = req.AccessibilityNeeds
	existing.PreferredLanguages = req.PreferredLanguages

	if err := s.profileRepo.UpdateProfile(ctx, existing); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProfileResponse(existing), nil
}

func (s *ProfileService) DeleteProfile(ctx context.Context, userID string) error {
	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrProfileNotFound
	}
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toProfileResponse(profile *db_models.UserProfile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		UserID:             profile.UserID,
		TravelerType:       string(profile.TravelerType),
		ActivityLevel:      string(profile.ActivityLevel),
		BudgetPreference:   string(profile.BudgetPreference),
		SpecialInterests:   profile.SpecialInterests,
		DietaryPreferences: profile.DietaryPreferences,
		AccessibilityNeeds: profile.AccessibilityNeeds,
		PreferredLanguages: profile.PreferredLanguages,
	}
}
