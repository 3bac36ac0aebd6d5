package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"itinera/internal/models/response_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{recommendationService: recommendationService}
}

// GetRecommendations godoc
// @Summary Fetch recommended itineraries
// @Description Get the personalized recommendation list for a user, best matches first
// @Tags Recommendations
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /recommendations [get]
func (r *RecommendationController) GetRecommendations(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	items, err := r.recommendationService.GetRecommendationsForUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.RecommendationList{Recommendations: items},
		"Recommendations fetched successfully")
}
