package routes

import (
	"net/http"
	"time"

	"hotelier/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoomRoutes registers room inventory endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.POST("", hb.Rooms.CreateRoomHandler)
		api.GET("", hb.Rooms.ListRoomsHandler)
		api.GET("/:id", hb.Rooms.GetRoomHandler)
		api.PUT("/:id", hb.Rooms.UpdateRoomHandler)
		api.DELETE("/:id", hb.Rooms.DeleteRoomHandler)
		api.GET("/:id/availability", hb.Bookings.CheckAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.PUT("/:id", hb.Bookings.UpdateBookingHandler)
		api.POST("/:id/confirm", hb.Bookings.ConfirmBookingHandler)
		api.POST("/:id/cancel", hb.Bookings.CancelBookingHandler)
	}
}

// RegisterBillingRoutes registers invoice and payment endpoints.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.POST("", hb.Invoices.GenerateInvoiceHandler)
		api.GET("/:id", hb.Invoices.GetInvoiceHandler)
		api.GET("/:id/balance", hb.Invoices.GetOutstandingBalanceHandler)
		api.POST("/:id/cancel", hb.Invoices.CancelInvoiceHandler)
		api.POST("/:id/overdue", hb.Invoices.MarkInvoiceOverdueHandler)
		api.POST("/:id/payments", hb.Payments.RecordPaymentHandler)
		api.GET("/:id/payments", hb.Payments.ListPaymentsHandler)
	}
	r.GET("/api/payments/:id", hb.Payments.GetPaymentHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Idempotency-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
}
