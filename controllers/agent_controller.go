package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rishen2486/wheels-up-booking-suite/config"
	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type agentInfoPayload struct {
	CompanyName     string `json:"company_name"`
	LicenseNumber   string `json:"license_number"`
	Phone           string `json:"phone"`
	BusinessAddress string `json:"business_address"`
}

// GET /api/agent-info — the caller's own row.
func GetAgentInfo(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var info models.AgentInfo
	if err := config.DB.Where("user_id = ?", userID).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "agent info not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load agent info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// PUT /api/agent-info — upsert; approval stays with the platform.
func UpsertAgentInfo(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var payload agentInfoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	var info models.AgentInfo
	err := config.DB.Where("user_id = ?", userID).First(&info).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		info = models.AgentInfo{
			UserID:          userID,
			CompanyName:     strings.TrimSpace(payload.CompanyName),
			LicenseNumber:   strings.TrimSpace(payload.LicenseNumber),
			Phone:           strings.TrimSpace(payload.Phone),
			BusinessAddress: strings.TrimSpace(payload.BusinessAddress),
		}
		if err := config.DB.Create(&info).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save agent info"})
			return
		}
		c.JSON(http.StatusCreated, info)
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load agent info"})
		return
	}

	updates := map[string]interface{}{
		"company_name":     strings.TrimSpace(payload.CompanyName),
		"license_number":   strings.TrimSpace(payload.LicenseNumber),
		"phone":            strings.TrimSpace(payload.Phone),
		"business_address": strings.TrimSpace(payload.BusinessAddress),
	}
	if err := config.DB.Model(&info).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save agent info"})
		return
	}
	c.JSON(http.StatusOK, info)
}
