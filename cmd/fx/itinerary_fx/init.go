package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	tripRepo repositories.TripRepository,
	itineraryRepo repositories.ItineraryRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(tripRepo, itineraryRepo)
}
