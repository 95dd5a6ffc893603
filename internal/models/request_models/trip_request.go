package request_models

type CreateTripRequest struct {
	Destination         string `json:"destination" binding:"required"`
	StartDate           string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate             string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	ArrivalTime         string `json:"arrival_time"`
	DepartureTime       string `json:"departure_time"`
	DietaryPreferences  string `json:"dietary_preferences"`
	ActivityPreferences string `json:"activity_preferences"`
	AdditionalNotes     string `json:"additional_notes"`
}
