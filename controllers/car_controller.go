package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/rishen2486/wheels-up-booking-suite/config"
	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/models"
	"github.com/rishen2486/wheels-up-booking-suite/services"

	"github.com/gin-gonic/gin"
)

// ----------------------------------------------------
// 1. List Cars (GET /api/cars) — public, available only
// ----------------------------------------------------

func GetCars(c *gin.Context) {
	svc := services.NewCarService(config.DB)
	cars, err := svc.ListPublic(services.CatalogFilter{
		Location: strings.TrimSpace(c.Query("location")),
		Type:     strings.TrimSpace(c.Query("type")),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cars"})
		return
	}
	c.JSON(http.StatusOK, cars)
}

// ----------------------------------------------------
// 2. Car detail (GET /api/cars/:id)
// ----------------------------------------------------

func GetCar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	car, err := services.NewCarService(config.DB).GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("car %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load car"})
		return
	}
	c.JSON(http.StatusOK, car)
}

// ----------------------------------------------------
// 3. Owner dashboard list (GET /api/cars/mine)
// ----------------------------------------------------

func GetMyCars(c *gin.Context) {
	scope, ok := scopeFor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	cars, err := services.NewCarService(config.DB).ListScoped(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cars"})
		return
	}
	c.JSON(http.StatusOK, cars)
}

// ----------------------------------------------------
// 4. Create Car (POST /api/cars)
// ----------------------------------------------------

func CreateCar(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	car.Name = strings.TrimSpace(car.Name)
	if car.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Car name is required."})
		return
	}
	if car.DailyRate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Daily rate must be positive."})
		return
	}

	// owner is always the token holder, never client-supplied
	car.UserID = userID

	if err := services.NewCarService(config.DB).Create(&car); err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, car)
}

// ----------------------------------------------------
// 5. Update Car (PATCH/PUT /api/cars/:id)
// ----------------------------------------------------

func UpdateCar(c *gin.Context) {
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
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	// protect immutable fields, whatever the key casing
	updateData = sanitizeUpdates(updateData)

	if err := services.NewCarService(config.DB).Update(uint(id), scope, updateData); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("car %d not found", id)})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		default:
			log.Printf("❌ Update Error for Car %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Car updated successfully"})
}

// ----------------------------------------------------
// 6. Delete Car (DELETE /api/cars/:id)
// ----------------------------------------------------

func DeleteCar(c *gin.Context) {
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

	if err := services.NewCarService(config.DB).Delete(uint(id), scope); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("car %d not found", id)})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete car"})
		}
		return
	}

	log.Printf("✅ Car %d deleted.", id)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Car deleted successfully"})
}
