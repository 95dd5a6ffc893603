package response_models

type TripResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	IsPublished bool   `json:"is_published"`
	IsFavorite  bool   `json:"is_favorite"`
}

type ItineraryDayResponse struct {
	DayNumber      int             `json:"day_number"`
	Date           string          `json:"date"`
	Plan           DayPlan         `json:"plan"`
	Accommodations []Accommodation `json:"accommodations"`
	TravelTips     TravelTips      `json:"travel_tips"`
}

type TripDetailResponse struct {
	Trip        TripResponse           `json:"trip"`
	Itineraries []ItineraryDayResponse `json:"itineraries"`
}

type SimilarTripResponse struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}
