package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"taskbazaar/ai"
	"taskbazaar/ledger"
	"taskbazaar/middleware"
	"taskbazaar/models"
	"taskbazaar/routes"
	"taskbazaar/wallet"
)

func main() {
	// Load .env if present (do not overwrite already-set environment variables).
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	// Validate required environment variables
	requiredEnvVars := []string{"JWT_SECRET", "ADMIN_PASSWORD"}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	// Seed the in-memory ledger. All state lives here; restarting the
	// process resets the marketplace to this snapshot.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	seed, err := models.Seed(adminEmail, os.Getenv("ADMIN_PASSWORD"))
	if err != nil {
		log.Fatalf("failed to seed ledger: %v", err)
	}
	store := ledger.NewStore(seed)

	// AI assistance is optional; without a key the ideas endpoint reports
	// itself unavailable and auto-approve submissions stay pending.
	var assistant ai.Assistant
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := ai.NewGemini(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("failed to init AI assistant: %v", err)
		}
		assistant = gemini
		log.Println("AI assistant enabled")
	} else {
		log.Println("GEMINI_API_KEY not set - AI assistance disabled")
	}

	provider := wallet.NewSimulated()

	settleDelay := 3 * time.Second
	if s := os.Getenv("SETTLE_DELAY_SEC"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			settleDelay = time.Duration(v) * time.Second
		}
	}

	router := routes.InitRouter(routes.Deps{
		Store:       store,
		Assistant:   assistant,
		Provider:    provider,
		SettleDelay: settleDelay,
	})

	// Wrap router with global middleware in recommended order
	// Logging -> Security headers / CORS -> Request ID -> Max Body -> Timeout -> Recovery -> Metrics -> Suspicious Activity
	handler := middleware.RequestLogMiddleware(
		middleware.SecurityHeadersMiddleware(
			middleware.RequestIDMiddleware(
				middleware.MaxBodyMiddleware(
					middleware.TimeoutMiddleware(
						middleware.RecoveryMiddleware(
							middleware.MetricsMiddleware(
								middleware.SuspiciousActivityMiddleware(router),
							),
						),
					),
				),
			),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
