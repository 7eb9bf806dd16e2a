package controllers

import (
	"net/http"
	"strings"

	"github.com/rishen2486/wheels-up-booking-suite/services"
	"github.com/rishen2486/wheels-up-booking-suite/utils"

	"github.com/gin-gonic/gin"
)

type uploadPayload struct {
	Image string `json:"image" binding:"required"` // base64 payload or data URI
}

// POST /api/uploads/:kind — stores an item photo under the uploads dir
// and returns the public path for image_urls.
func UploadImage(c *gin.Context) {
	kind := strings.ToLower(c.Param("kind"))
	switch kind {
	case "cars", "tours", "attractions":
	default:
		utils.JSONError(c, http.StatusBadRequest, "kind must be cars, tours or attractions")
		return
	}

	var payload uploadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	path, err := services.SaveBase64Image(payload.Image, kind)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not store image")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"path": path, "url": "/uploads/" + path})
}
