package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/services"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportSvc  *services.ExportService
	ProfileSvc *services.ProfileService
}

func NewExportController(exportSvc *services.ExportService, profileSvc *services.ProfileService) *ExportController {
	return &ExportController{ExportSvc: exportSvc, ProfileSvc: profileSvc}
}

// GET /api/export/:dataset?format=csv|xlsx|pdf
//
// The rows are filtered with the caller's resolved scope — the same one
// the dashboard lists use — so exports never leak other owners' data.
func (ec *ExportController) Export(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	dataset := strings.ToLower(c.Param("dataset"))
	format := strings.ToLower(c.DefaultQuery("format", "csv"))

	scope := ec.ProfileSvc.ResolveScope(userID)
	file, err := ec.ExportSvc.Export(dataset, format, scope)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownDataset):
			c.JSON(http.StatusBadRequest, gin.H{"error": "dataset must be cars, tours, attractions or bookings"})
		case errors.Is(err, services.ErrUnknownFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv, xlsx or pdf"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
