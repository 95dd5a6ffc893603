package response_models

// ItineraryResult is the canonical parsed form of a model response.
// Slice order is presentation order; DailySchedule is ordered by DayNumber
// ascending starting at 1. The parser returns it fully populated, falling
// back to DefaultItineraryResult when the response cannot be trusted.
type ItineraryResult struct {
	Accommodations []Accommodation `json:"accommodations"`
	DailySchedule  []DayPlan       `json:"daily_schedule"`
	TravelTips     TravelTips      `json:"travel_tips"`
}

type Accommodation struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Location       string  `json:"location"`
	Rating         float64 `json:"rating"`
	UniqueFeatures string  `json:"unique_features"`
	NightlyRate    string  `json:"nightly_rate"`
	URL            string  `json:"url"`
}

type MealEntry struct {
	Spot        string  `json:"spot"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
}

type ActivityEntry struct {
	Activity    string `json:"activity"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type DayPlan struct {
	DayNumber         int           `json:"day_number"`
	Date              string        `json:"date"`
	Breakfast         MealEntry     `json:"breakfast"`
	MorningActivity   ActivityEntry `json:"morning_activity"`
	Lunch             MealEntry     `json:"lunch"`
	AfternoonActivity ActivityEntry `json:"afternoon_activity"`
	Dinner            MealEntry     `json:"dinner"`
	EveningActivity   ActivityEntry `json:"evening_activity"`
}

// TravelTips fields are always strings, never null, so downstream
// persistence can rely on the column shape.
type TravelTips struct {
	Weather        string `json:"weather"`
	Transportation string `json:"transportation"`
	CulturalNotes  string `json:"cultural_notes"`
	SeasonalEvents string `json:"seasonal_events"`
}

// DefaultItineraryResult is the fixed fallback substituted whenever a model
// response cannot be decoded or fails validation. The caller pads the daily
// schedule to the trip's date range before persisting.
func DefaultItineraryResult() ItineraryResult {
	return ItineraryResult{
		Accommodations: []Accommodation{
			{
				Name:        "Accommodation suggestions unavailable",
				Description: "We could not prepare hotel recommendations for this trip. Please regenerate the itinerary or add your own accommodation.",
			},
			{
				Name:        "Local mid-range hotel",
				Description: "A centrally located hotel is usually a safe choice; check recent reviews before booking.",
			},
			{
				Name:        "Local guesthouse or B&B",
				Description: "Smaller guesthouses often offer better value and local advice.",
			},
		},
		DailySchedule: []DayPlan{},
		TravelTips: TravelTips{
			Weather:        "",
			Transportation: "",
			CulturalNotes:  "",
			SeasonalEvents: "",
		},
	}
}

// EmptyDayPlan returns a schedule slot with defaulted fields for days the
// parser could not fill, so stored day rows are never dropped.
func EmptyDayPlan(dayNumber int, date string) DayPlan {
	return DayPlan{
		DayNumber: dayNumber,
		Date:      date,
	}
}
