package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo,
	provideProfileService,
)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo)
}
