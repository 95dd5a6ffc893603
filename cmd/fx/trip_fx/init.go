package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo,
	provideEmbeddingRepo,
	provideTripService,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.TripEmbeddingRepository {
	return repositories.NewTripEmbeddingRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	itineraryRepo repositories.ItineraryRepository,
	profileRepo repositories.ProfileRepository,
	embeddingRepo repositories.TripEmbeddingRepository,
	planner services.PlannerServiceInterface,
	aiClient utils.TripPlanClientInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, itineraryRepo, profileRepo, embeddingRepo, planner, aiClient)
}
