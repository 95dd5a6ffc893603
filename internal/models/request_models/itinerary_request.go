package request_models

import (
	"tripplanner/internal/models/response_models"
)

type UpdateItineraryRequest struct {
	Plan response_models.DayPlan `json:"plan" binding:"required"`
}
