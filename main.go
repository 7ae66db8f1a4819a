package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelier/config"
	"hotelier/cron"
	"hotelier/database"
	bookingRepo "hotelier/database/repository/booking"
	guestRepo "hotelier/database/repository/guest"
	invoiceRepo "hotelier/database/repository/invoice"
	paymentRepo "hotelier/database/repository/payment"
	roomRepo "hotelier/database/repository/room"
	staffRepo "hotelier/database/repository/staff"
	"hotelier/handlers"
	"hotelier/middleware"
	"hotelier/routes"
	"hotelier/services/billing"
	"hotelier/services/booking"
	"hotelier/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitIdempotencyCache()
	stripe.Key = config.AppConfig.StripeKey

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	rooms := roomRepo.NewMongoRoomRepo()
	guests := guestRepo.NewMongoGuestRepo()
	staff := staffRepo.NewMongoStaffRepo()
	bookings := bookingRepo.NewMongoBookingRepo(rooms)
	invoices := invoiceRepo.NewMongoInvoiceRepo()
	payments := paymentRepo.NewMongoPaymentRepo()

	for name, ensure := range map[string]func() error{
		"rooms":    rooms.EnsureIndexes,
		"bookings": bookings.EnsureIndexes,
		"invoices": invoices.EnsureIndexes,
		"payments": payments.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Rooms:    rooms,
		Guests:   guests,
		Staff:    staff,
		Bookings: bookings,
		Invoices: invoices,
		Cache:    utils.GetCacheClient(),
	}

	billingService := &billing.DefaultBillingService{
		Invoices: invoices,
		Payments: payments,
		Bookings: bookings,
		Rooms:    rooms,
		Staff:    staff,
		Gateway:  &billing.StripeGateway{Currency: config.AppConfig.Currency},
		Idempotency: &billing.RedisIdempotencyStore{
			Client: utils.GetIdempotencyCacheClient(),
			TTL:    24 * time.Hour,
		},
		DueDays: config.AppConfig.InvoiceDueDays,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Rooms:    handlers.NewRoomHandler(rooms),
		Bookings: handlers.NewBookingHandler(bookingService, logger),
		Invoices: handlers.NewInvoiceHandler(billingService, logger),
		Payments: handlers.NewPaymentHandler(billingService, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	cron.InitOverdueSweeper(billingService)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
