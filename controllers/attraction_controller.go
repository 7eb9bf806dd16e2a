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

func GetAttractions(c *gin.Context) {
	attractions, err := services.NewAttractionService(config.DB).ListPublic(services.CatalogFilter{
		Location: strings.TrimSpace(c.Query("location")),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attractions"})
		return
	}
	c.JSON(http.StatusOK, attractions)
}

func GetAttraction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	attraction, err := services.NewAttractionService(config.DB).GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attraction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attraction"})
		return
	}
	c.JSON(http.StatusOK, attraction)
}

func GetMyAttractions(c *gin.Context) {
	scope, ok := scopeFor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	attractions, err := services.NewAttractionService(config.DB).ListScoped(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attractions"})
		return
	}
	c.JSON(http.StatusOK, attractions)
}

func CreateAttraction(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var attraction models.Attraction
	if err := c.ShouldBindJSON(&attraction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	attraction.Name = strings.TrimSpace(attraction.Name)
	if attraction.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "attraction name is required"})
		return
	}
	if attraction.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	attraction.UserID = userID

	if err := services.NewAttractionService(config.DB).Create(&attraction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create attraction"})
		return
	}
	c.JSON(http.StatusCreated, attraction)
}

func UpdateAttraction(c *gin.Context) {
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

	if err := services.NewAttractionService(config.DB).Update(uint(id), scope, updateData); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "attraction not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Attraction updated successfully"})
}

func DeleteAttraction(c *gin.Context) {
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

	if err := services.NewAttractionService(config.DB).Delete(uint(id), scope); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "attraction not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete attraction"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Attraction deleted successfully"})
}
