package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile godoc
// @Summary Get the authenticated user's travel profile
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} response_models.ProfileResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := p.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpsertProfile godoc
// @Summary Create or update the authenticated user's travel profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpsertProfileRequest true "Profile fields"
// @Success 200 {object} response_models.ProfileResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/profile [put]
func (p *ProfileController) UpsertProfile(c *gin.Context) {
	var req request_models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid profile payload")
		return
	}

	userID := c.GetString("user_id")

	profile, err := p.profileService.UpsertProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile saved successfully")
}

// DeleteProfile godoc
// @Summary Delete the authenticated user's travel profile
// @Tags Profile
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/profile [delete]
func (p *ProfileController) DeleteProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := p.profileService.DeleteProfile(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile deleted successfully")
}
