package memcache_fx

import (
	"go.uber.org/fx"

	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(providePlanCache)

func providePlanCache() mem.PlanCache {
	return mem.NewPlanCache()
}
