package controllers

import (
	"net/http"

	"github.com/rishen2486/wheels-up-booking-suite/config"
	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/models"
	"github.com/rishen2486/wheels-up-booking-suite/services"

	"github.com/gin-gonic/gin"
)

type searchRequestPayload struct {
	PickupLocation  string `json:"pickup_location" binding:"required"`
	DropoffLocation string `json:"dropoff_location"`
	PickupDate      string `json:"pickup_date" binding:"required,dateonly"`
	DropoffDate     string `json:"dropoff_date" binding:"required,dateonly"`
	PickupTime      string `json:"pickup_time"`
	DropoffTime     string `json:"dropoff_time"`
}

// POST /api/search-requests — guests allowed.
func CreateSearchRequest(c *gin.Context) {
	var payload searchRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	req := models.SearchRequest{
		PickupLocation:  payload.PickupLocation,
		DropoffLocation: payload.DropoffLocation,
		PickupDate:      payload.PickupDate,
		DropoffDate:     payload.DropoffDate,
		PickupTime:      payload.PickupTime,
		DropoffTime:     payload.DropoffTime,
	}
	if uid, ok := middleware.UserID(c); ok {
		req.UserID = &uid
	}

	if err := services.NewSearchService(config.DB).Record(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record search"})
		return
	}
	c.JSON(http.StatusCreated, req)
}
