package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripplanner/cmd/fx/controllers_fx"
	"tripplanner/cmd/fx/dashboard_fx"
	"tripplanner/cmd/fx/db_fx"
	"tripplanner/cmd/fx/itinerary_fx"
	"tripplanner/cmd/fx/memcache_fx"
	"tripplanner/cmd/fx/planner_fx"
	"tripplanner/cmd/fx/profile_fx"
	"tripplanner/cmd/fx/trip_fx"
	"tripplanner/internal/api/controllers"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		planner_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		profile_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	profileController *controllers.ProfileController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripController, itineraryController, profileController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	itineraryController *controllers.ItineraryController,
	profileController *controllers.ProfileController,
	dashboardController *controllers.DashboardController) {

	r.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"message": "Welcome to the Trip Planner API!"}, "")
	})

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("/create", tripController.CreateTrip)
	tripsGroup.GET("/", tripController.GetTrips)
	tripsGroup.GET("/:tripId", tripController.GetTripDetail)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)
	tripsGroup.PUT("/:tripId/publish", tripController.PublishTrip)
	tripsGroup.PUT("/:tripId/favorite", tripController.FavoriteTrip)
	tripsGroup.GET("/:tripId/similar", tripController.GetSimilarTrips)
	tripsGroup.GET("/:tripId/itineraries", itineraryController.ListItineraryDays)
	tripsGroup.GET("/:tripId/itineraries/:dayNumber", itineraryController.GetItineraryDay)
	tripsGroup.PUT("/:tripId/itineraries/:dayNumber", itineraryController.UpdateItineraryDay)
	tripsGroup.DELETE("/:tripId/itineraries/:dayNumber", itineraryController.DeleteItineraryDay)

	usersGroup := r.Group("/users")
	usersGroup.Use(middleware.JWTAuthMiddleware())
	usersGroup.GET("/profile", profileController.GetProfile)
	usersGroup.POST("/profile", profileController.UpsertProfile)
	usersGroup.PUT("/profile", profileController.UpsertProfile)
	usersGroup.DELETE("/profile", profileController.DeleteProfile)

	dashboardGroup := r.Group("/dashboard")
	dashboardGroup.Use(middleware.JWTAuthMiddleware())
	dashboardGroup.GET("", dashboardController.GetDashboard)
}
