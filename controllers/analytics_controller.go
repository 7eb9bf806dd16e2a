package controllers

import (
	"net/http"

	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsSvc *services.AnalyticsService
	ProfileSvc   *services.ProfileService
}

func NewAnalyticsController(analyticsSvc *services.AnalyticsService, profileSvc *services.ProfileService) *AnalyticsController {
	return &AnalyticsController{AnalyticsSvc: analyticsSvc, ProfileSvc: profileSvc}
}

// GET /api/analytics/summary
func (ac *AnalyticsController) Summary(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	scope := ac.ProfileSvc.ResolveScope(userID)
	summary, err := ac.AnalyticsSvc.Summarize(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
