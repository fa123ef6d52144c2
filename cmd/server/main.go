package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bozhidarvelkov/pixelmorph/internal/api"
	"github.com/bozhidarvelkov/pixelmorph/internal/auth"
	"github.com/bozhidarvelkov/pixelmorph/internal/billing"
	"github.com/bozhidarvelkov/pixelmorph/internal/config"
	"github.com/bozhidarvelkov/pixelmorph/internal/db"
	"github.com/bozhidarvelkov/pixelmorph/internal/image"
	"github.com/bozhidarvelkov/pixelmorph/internal/transaction"
	"github.com/bozhidarvelkov/pixelmorph/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bunDB := db.NewBunPostgresClient(cfg.DatabaseURL)
	defer bunDB.Close()

	userRepo := user.NewUserRepository(bunDB)
	imageRepo := image.NewImageRepository(bunDB)
	txnRepo := transaction.NewTransactionRepository(bunDB)

	userService := user.NewUserService(userRepo)
	imageService := image.NewService(imageRepo, userRepo, cfg.CloudinaryCloudName)
	txnService := transaction.NewService(txnRepo, userRepo)

	b := billing.NewBilling(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.FrontendBaseURL)

	jwtVerifier, err := auth.NewJWTVerifier(cfg.ClerkJWKSURL)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	imageHandler := api.NewImageHandler(imageService)
	userHandler := api.NewUserHandler(userService)
	checkoutHandler := api.NewCheckoutHandler(b, txnService)

	router := api.SetupRoutes(imageHandler, userHandler, checkoutHandler, jwtVerifier, userService, cfg.AllowedOrigin)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed to start: %v", err)
	}

	log.Println("Server stopped")
}
