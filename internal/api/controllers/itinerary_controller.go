package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func dayParams(c *gin.Context) (string, int, bool) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return "", 0, false
	}
	day, err := strconv.Atoi(c.Param("dayNumber"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Day number must be a positive integer")
		return "", 0, false
	}
	return tripID, day, true
}

// ListItineraryDays godoc
// @Summary List all itinerary days for a trip
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.ItineraryDayResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itineraries [get]
func (i *ItineraryController) ListItineraryDays(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userID := c.GetString("user_id")

	days, err := i.itineraryService.ListDays(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Itinerary days fetched successfully")
}

// GetItineraryDay godoc
// @Summary Get one day of a trip itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param dayNumber path int true "Day number (1-based)"
// @Success 200 {object} response_models.ItineraryDayResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itineraries/{dayNumber} [get]
func (i *ItineraryController) GetItineraryDay(c *gin.Context) {
	tripID, day, ok := dayParams(c)
	if !ok {
		return
	}

	userID := c.GetString("user_id")

	result, err := i.itineraryService.GetDay(c.Request.Context(), userID, tripID, day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary day fetched successfully")
}

// UpdateItineraryDay godoc
// @Summary Replace the plan for one day of a trip itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param dayNumber path int true "Day number (1-based)"
// @Param request body request_models.UpdateItineraryRequest true "Replacement day plan"
// @Success 200 {object} response_models.ItineraryDayResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itineraries/{dayNumber} [put]
func (i *ItineraryController) UpdateItineraryDay(c *gin.Context) {
	tripID, day, ok := dayParams(c)
	if !ok {
		return
	}

	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A day plan is required")
		return
	}

	userID := c.GetString("user_id")

	result, err := i.itineraryService.UpdateDay(c.Request.Context(), userID, tripID, day, req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary day updated successfully")
}

// DeleteItineraryDay godoc
// @Summary Delete one day of a trip itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param dayNumber path int true "Day number (1-based)"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itineraries/{dayNumber} [delete]
func (i *ItineraryController) DeleteItineraryDay(c *gin.Context) {
	tripID, day, ok := dayParams(c)
	if !ok {
		return
	}

	userID := c.GetString("user_id")

	if err := i.itineraryService.DeleteDay(c.Request.Context(), userID, tripID, day); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary day deleted successfully")
}
