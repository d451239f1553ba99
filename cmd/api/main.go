// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/faraz365/storefront-backend/internal/config"
	"github.com/faraz365/storefront-backend/internal/infrastructure/database/redis"
	"github.com/faraz365/storefront-backend/internal/interfaces/http"
	"github.com/faraz365/storefront-backend/internal/realtime"
	"github.com/faraz365/storefront-backend/internal/store/bootstrap"

	redislib "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Pick the storage backend once; the choice holds for the process lifetime.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	st, seq, closeStore := bootstrap.Select(ctx, cfg)
	cancel()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := closeStore(shutdownCtx); err != nil {
			log.Printf("Warning: storage close failed: %v", err)
		}
	}()

	log.Printf("💾 Storage mode: %s", st.Mode())

	// Redis only backs the rate limiter; run without it if unreachable.
	var redisClient *redislib.Client
	if rc, err := redis.NewConnection(cfg); err != nil {
		log.Printf("Warning: Redis not available, rate limiting disabled: %v", err)
	} else {
		redisClient = rc.GetClient()
		defer rc.Close()
	}

	// Realtime change feed for catalog mutations
	hub := realtime.NewHub()

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, st, seq, hub, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}
