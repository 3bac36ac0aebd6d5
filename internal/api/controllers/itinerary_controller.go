package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"github.com/google/uuid"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// Generate godoc
// @Summary Generate itineraries
// @Description Generate alternative day-by-day itineraries for a trip
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItinerariesRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItinerariesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itineraries, err := i.itineraryService.GenerateItineraries(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.GeneratedItineraries{Itineraries: itineraries},
		"Itineraries generated successfully")
}

// Save godoc
// @Summary Save an itinerary
// @Description Save an itinerary to the user's favorites
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.SaveItineraryRequest true "Save payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/save [post]
func (i *ItineraryController) Save(c *gin.Context) {
	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := i.itineraryService.SaveItinerary(c.Request.Context(), userID, req.ItineraryText); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary saved successfully")
}

// ListSaved godoc
// @Summary List saved itineraries
// @Description Get all itineraries a user has saved
// @Tags Itineraries
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/saved [get]
func (i *ItineraryController) ListSaved(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	itineraries, err := i.itineraryService.ListSavedItineraries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Saved itineraries fetched successfully")
}
