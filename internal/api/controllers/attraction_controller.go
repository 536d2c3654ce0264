package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type AttractionController struct {
	attractionService services.AttractionServiceInterface
}

func NewAttractionController(attractionService services.AttractionServiceInterface) *AttractionController {
	return &AttractionController{
		attractionService: attractionService,
	}
}

// GetAttraction builds the day-by-day itinerary for a destination.
// Query parameters: destination, days (required), cat, date (optional,
// YYYY-MM-DD, defaults to today).
func (a *AttractionController) GetAttraction(c *gin.Context) {
	destination := c.Query("destination")
	daysStr := c.Query("days")
	if destination == "" || daysStr == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination and Days are required")
		return
	}

	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Days must be a positive number")
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Date must be formatted as YYYY-MM-DD")
			return
		}
		date = parsed
	}

	plan, err := a.attractionService.PlanTrip(c.Request.Context(), destination, days, c.Query("cat"), date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary generated successfully")
}

// GetAttractionDetails returns the attraction rows matching a name.
func (a *AttractionController) GetAttractionDetails(c *gin.Context) {
	name := c.Query("destination")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	attractions, err := a.attractionService.GetAttractionDetails(c.Request.Context(), name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attraction details fetched successfully")
}
