package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type RatingController struct {
	ratingService services.RatingServiceInterface
}

func NewRatingController(ratingService services.RatingServiceInterface) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// SubmitRating godoc
// @Summary Submit an itinerary rating
// @Description Record a user's rating for an itinerary; textually divergent duplicates are merged by similarity
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body request_models.SubmitRatingRequest true "Rating payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /ratings/submit [post]
func (r *RatingController) SubmitRating(c *gin.Context) {
	var req request_models.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := r.ratingService.SubmitRating(c.Request.Context(), req.UserID, req.ItineraryText, req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "New rating saved successfully"
	if result.Matched {
		message = "Rating updated successfully"
	}

	utils.RespondSuccess(c, result, message)
}
