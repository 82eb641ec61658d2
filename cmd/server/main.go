package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craftledger/etsyprofit/internal/api"
	"github.com/craftledger/etsyprofit/internal/checkout"
	"github.com/craftledger/etsyprofit/internal/serverconfig"
)

func main() {
	// Load configuration
	cfg, err := serverconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create checkout client
	checkoutClient := checkout.New(
		cfg.Stripe.SecretKey,
		cfg.Stripe.MonthlyPriceID,
		cfg.Stripe.YearlyPriceID,
		cfg.Stripe.Origin,
	)
	if checkoutClient.Demo() {
		log.Println("No Stripe key configured, checkout runs in demo mode")
	}

	// Create router
	router := api.NewRouter(checkoutClient, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
