// Command server is the entry point for the Lockbox API server.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lockbox/internal/config"
	"lockbox/internal/seed"
	"lockbox/internal/server"
	"lockbox/internal/service"
	"lockbox/internal/store"

	"github.com/gofiber/fiber/v2"
)

func main() {
	seedCount := flag.Int("seed", 0, "register this many fake demo accounts at startup")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}

	if *seedCount > 0 {
		accounts := service.NewAccountService(st)
		created, err := seed.Accounts(ctx, accounts, *seedCount)
		if err != nil {
			log.Fatalf("Failed to seed accounts: %v", err)
		}
		log.Printf("Seeded %d demo accounts", len(created))
	}

	srv := server.NewServerWithStore(cfg, st)

	// Body limit leaves room for the 5 MiB image cap plus multipart overhead.
	app := fiber.New(fiber.Config{
		AppName:   "Lockbox API",
		BodyLimit: 8 * 1024 * 1024,
	})

	// Setup middleware and routes
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server resource shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s (store backend: %s)...", cfg.Port, cfg.StoreBackend)
	log.Fatal(app.Listen(":" + cfg.Port))
}
