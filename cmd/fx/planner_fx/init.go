package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	provideDialect,
	provideTripPlanClient,
	providePlannerService,
)

func provideDialect() services.Dialect {
	return services.ParseDialect(os.Getenv("PLAN_RESPONSE_FORMAT"))
}

func provideTripPlanClient(dialect services.Dialect) utils.TripPlanClientInterface {
	provider := os.Getenv("AI_PROVIDER")
	model := os.Getenv("AI_MODEL")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if provider == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	client, err := utils.NewTripPlanClient(provider, apiKey, model, dialect == services.DialectJSON)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}
	return client
}

func providePlannerService(client utils.TripPlanClientInterface, dialect services.Dialect, cache mem.PlanCache) services.PlannerServiceInterface {
	return services.NewPlannerService(client, dialect, cache)
}
