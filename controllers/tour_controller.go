package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rishen2486/wheels-up-booking-suite/config"
	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/models"
	"github.com/rishen2486/wheels-up-booking-suite/services"

	"github.com/gin-gonic/gin"
)

func GetTours(c *gin.Context) {
	tours, err := services.NewTourService(config.DB).ListPublic(services.CatalogFilter{
		Location: strings.TrimSpace(c.Query("location")),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tours"})
		return
	}
	c.JSON(http.StatusOK, tours)
}

func GetTour(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	tour, err := services.NewTourService(config.DB).GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tour not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tour"})
		return
	}
	c.JSON(http.StatusOK, tour)
}

func GetMyTours(c *gin.Context) {
	scope, ok := scopeFor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	tours, err := services.NewTourService(config.DB).ListScoped(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tours"})
		return
	}
	c.JSON(http.StatusOK, tours)
}

func CreateTour(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var tour models.Tour
	if err := c.ShouldBindJSON(&tour); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	tour.Name = strings.TrimSpace(tour.Name)
	if tour.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tour name is required"})
		return
	}
	if tour.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	if tour.DurationDays < 1 {
		tour.DurationDays = 1
	}
	tour.UserID = userID

	if err := services.NewTourService(config.DB).Create(&tour); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tour"})
		return
	}
	c.JSON(http.StatusCreated, tour)
}

func UpdateTour(c *gin.Context) {
	scope, ok := scopeFor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	updateData = sanitizeUpdates(updateData)

	if err := services.NewTourService(config.DB).Update(uint(id), scope, updateData); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tour not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Tour updated successfully"})
}

func DeleteTour(c *gin.Context) {
	scope, ok := scopeFor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.NewTourService(config.DB).Delete(uint(id), scope); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tour not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tour"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Tour deleted successfully"})
}
