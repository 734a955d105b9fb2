package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires middleware and the API surface.
func SetupRouter(
	ac *controllers.AuthController,
	uc *controllers.UserController,
	hc *controllers.HotelController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

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
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.AuthRequired(), ac.Me)
		}

		users := api.Group("/users", middleware.AuthRequired())
		{
			users.GET("/profile", uc.GetProfile)
			users.PUT("/profile", uc.UpdateProfile)

			admin := users.Group("", middleware.RequireRoles(models.RoleAdmin))
			{
				admin.GET("", uc.ListUsers)
				admin.PUT("/:id/role", uc.UpdateRole)
				admin.DELETE("/:id", uc.DeleteUser)
			}
		}

		hotels := api.Group("/hotels")
		{
			// Public catalog surface.
			hotels.GET("/search", hc.SearchHotels)
			hotels.GET("/availability/:id", hc.HotelAvailability)
			hotels.GET("/destinations/popular", hc.PopularDestinations)
			hotels.GET("/room-types", hc.ListRoomTypes)
			hotels.GET("/:id", hc.GetHotel)

			managed := hotels.Group("", middleware.AuthRequired(),
				middleware.RequireRoles(models.RoleHotelManager, models.RoleAdmin))
			{
				managed.POST("", hc.CreateHotel)
				managed.GET("/my", hc.MyHotels)
				managed.PUT("/:id", hc.UpdateHotel)
				managed.DELETE("/:id", hc.DeleteHotel)
				managed.GET("/:id/bookings", bc.HotelBookings)
				managed.POST("/:id/rooms", hc.CreateRoom)
				managed.PUT("/rooms/:roomID", hc.UpdateRoom)
				managed.PUT("/room-types/:id/pricing", hc.UpsertPriceOverride)
			}

			admin := hotels.Group("", middleware.AuthRequired(), middleware.RequireRoles(models.RoleAdmin))
			{
				admin.POST("/room-types", hc.CreateRoomType)
			}
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("/availability/check", bc.CheckAvailability)

			authed := bookings.Group("", middleware.AuthRequired())
			{
				authed.POST("", bc.CreateBooking)
				authed.GET("/my", bc.MyBookings)
				authed.GET("/:id", bc.GetBooking)
				authed.PUT("/:id/cancel", bc.CancelBooking)
				authed.POST("/payments", bc.CreatePayment)

				staff := authed.Group("", middleware.RequireRoles(models.RoleHotelManager, models.RoleAdmin))
				{
					staff.PUT("/:id/status", bc.UpdateStatus)
				}

				admin := authed.Group("", middleware.RequireRoles(models.RoleAdmin))
				{
					admin.PUT("/payments/:id/status", bc.UpdatePaymentStatus)
				}
			}
		}
	}

	return r
}
