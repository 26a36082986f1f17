// cmd/worker/main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/spycraft69/GAMA-Product-Request/pkg/logger"
)

// The worker only talks to Redis and SMTP. It deliberately skips the
// API container: no database or object storage connection is needed to
// send notification emails.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg := loadConfig()
	logger.Init(cfg.Environment)

	// Initialize handlers
	handlers := initializeHandlers(cfg)

	// Setup Asynq server
	srv := setupAsynqServer(cfg, handlers)

	// Wait for shutdown signal
	waitForShutdown(srv)
}

func waitForShutdown(srv *asynqServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[Shutdown] Gracefully stopping...")
	srv.Shutdown()
	log.Println("[Shutdown] ✓ Stopped")
}
