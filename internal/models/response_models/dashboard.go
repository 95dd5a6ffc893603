package response_models

import "time"

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	// "day" | "week" | "month"
	Interval string `json:"interval"`
	// Optional: timezone used for bucketing (defaults to UTC if empty)
	Timezone string `json:"timezone,omitempty"`
}

type KPIBlock struct {
	TotalTrips     int64 `json:"total_trips"`
	NewTrips       int64 `json:"new_trips"`
	CompletedTrips int64 `json:"completed_trips"`
	FailedTrips    int64 `json:"failed_trips"`
	PublishedTrips int64 `json:"published_trips"`
	FavoriteTrips  int64 `json:"favorite_trips"`
}

type SeriesPoint struct {
	Bucket time.Time `json:"bucket"`
	Value  int64     `json:"value"`
}

type CountSeries struct {
	Points []SeriesPoint `json:"points"`
}

type TopDestination struct {
	Destination string `json:"destination"`
	Count       int64  `json:"count"`
}

type DashboardReport struct {
	Range           TimeRange        `json:"range"`
	KPIs            KPIBlock         `json:"kpis"`
	NewTrips        CountSeries      `json:"new_trips"`
	TopDestinations []TopDestination `json:"top_destinations"`
}
