package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rishen2486/wheels-up-booking-suite/controllers"
	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the gin engine.
func SetupRouter(
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	ec *controllers.ExportController,
	ac *controllers.AnalyticsController,
	jwtSecret string,
) *gin.Engine {
	controllers.RegisterBookingValidations()

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./"+utils.EnvOrDefault("UPLOAD_DIR", "uploads"))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(jwtSecret)
	optionalAuth := middleware.OptionalAuth(jwtSecret)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.GET("/me", requireAuth, controllers.Me)
		}

		cars := api.Group("/cars")
		{
			cars.GET("", controllers.GetCars)

			// /mine must be registered before /:id
			cars.GET("/mine", requireAuth, controllers.GetMyCars)

			cars.GET("/:id", controllers.GetCar)
			cars.POST("", requireAuth, controllers.CreateCar)
			cars.PUT("/:id", requireAuth, controllers.UpdateCar)
			cars.PATCH("/:id", requireAuth, controllers.UpdateCar)
			cars.DELETE("/:id", requireAuth, controllers.DeleteCar)
		}

		tours := api.Group("/tours")
		{
			tours.GET("", controllers.GetTours)
			tours.GET("/mine", requireAuth, controllers.GetMyTours)
			tours.GET("/:id", controllers.GetTour)
			tours.POST("", requireAuth, controllers.CreateTour)
			tours.PUT("/:id", requireAuth, controllers.UpdateTour)
			tours.PATCH("/:id", requireAuth, controllers.UpdateTour)
			tours.DELETE("/:id", requireAuth, controllers.DeleteTour)
		}

		attractions := api.Group("/attractions")
		{
			attractions.GET("", controllers.GetAttractions)
			attractions.GET("/mine", requireAuth, controllers.GetMyAttractions)
			attractions.GET("/:id", controllers.GetAttraction)
			attractions.POST("", requireAuth, controllers.CreateAttraction)
			attractions.PUT("/:id", requireAuth, controllers.UpdateAttraction)
			attractions.PATCH("/:id", requireAuth, controllers.UpdateAttraction)
			attractions.DELETE("/:id", requireAuth, controllers.DeleteAttraction)
		}

		bookings := api.Group("/bookings")
		{
			// guests may book; the owner is stamped when a token is present
			bookings.POST("", optionalAuth, bc.CreateBooking)
			bookings.GET("", requireAuth, bc.GetBookings)
			bookings.GET("/:id", optionalAuth, bc.GetBookingDetails)
		}

		api.POST("/quote", bc.Quote)
		api.GET("/availability/:kind/:id", bc.GetAvailability)

		payments := api.Group("/payments")
		{
			payments.POST("/initiate", optionalAuth, pc.Initiate)
			payments.POST("/:id/confirm", optionalAuth, pc.Confirm)
		}

		api.POST("/search-requests", optionalAuth, controllers.CreateSearchRequest)

		api.GET("/export/:dataset", requireAuth, ec.Export)
		api.GET("/analytics/summary", requireAuth, ac.Summary)

		agent := api.Group("/agent-info", requireAuth)
		{
			agent.GET("", controllers.GetAgentInfo)
			agent.PUT("", controllers.UpsertAgentInfo)
		}

		api.POST("/uploads/:kind", requireAuth, controllers.UploadImage)
	}

	return r
}
