package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// boolQuery parses a boolean query parameter, falling back to def when the
// parameter is absent or unparseable.
func boolQuery(c *gin.Context, name string, def bool) bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// CreateTrip godoc
// @Summary Create a trip and generate its itinerary
// @Description Create a trip for the authenticated user and generate a day-by-day plan
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip details"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/create [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, start date, and end date are required")
		return
	}

	userID := c.GetString("user_id")

	detail, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip created successfully")
}

// GetTrips godoc
// @Summary List trips for the authenticated user
// @Description Fetch a paginated list of the user's trips
// @Tags Trip
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Param show_unpublished query bool false "Include unpublished trips" default(true)
// @Param favorites_only query bool false "Only favorite trips" default(false)
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips/ [get]
func (t *TripController) GetTrips(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	filter := repositories.TripListFilter{
		ShowUnpublished: boolQuery(c, "show_unpublished", true),
		FavoritesOnly:   boolQuery(c, "favorites_only", false),
	}

	userID := c.GetString("user_id")

	trips, err := t.tripService.GetTripsByUser(c.Request.Context(), userID, page, pageSize, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTripDetail godoc
// @Summary Get trip details by ID
// @Description Fetch a trip with its full day-by-day itinerary
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTripDetail(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userID := c.GetString("user_id")

	detail, err := t.tripService.GetTripDetail(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Trip details fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Delete a trip and all of its itineraries
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userID := c.GetString("user_id")

	if err := t.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// PublishTrip godoc
// @Summary Publish or unpublish a trip
// @Description Set the published flag on a trip. Defaults to true when the query parameter is absent.
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param publish query bool false "Published state" default(true)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/publish [put]
func (t *TripController) PublishTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userID := c.GetString("user_id")

	if err := t.tripService.SetPublished(c.Request.Context(), userID, tripID, boolQuery(c, "publish", true)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip publish state updated")
}

// FavoriteTrip godoc
// @Summary Favorite or unfavorite a trip
// @Description Set the favorite flag on a trip. Defaults to true when the query parameter is absent.
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param favorite query bool false "Favorite state" default(true)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/favorite [put]
func (t *TripController) FavoriteTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userID := c.GetString("user_id")

	if err := t.tripService.SetFavorite(c.Request.Context(), userID, tripID, boolQuery(c, "favorite", true)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip favorite state updated")
}

// GetSimilarTrips godoc
// @Summary Find trips similar to a trip
// @Description Vector similarity search over trip destinations and preferences
// @Tags Trip
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param limit query int false "Max results" default(5)
// @Success 200 {array} response_models.SimilarTripResponse
// @Security BearerAuth
// @Router /trips/{tripId}/similar [get]
func (t *TripController) GetSimilarTrips(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 20 {
		utils.RespondError(c, http.StatusBadRequest, "Limit must be between 1 and 20")
		return
	}

	userID := c.GetString("user_id")

	similar, err := t.tripService.GetSimilarTrips(c.Request.Context(), userID, tripID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, similar, "Similar trips fetched successfully")
}
