package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/you/tradeops/internal/app"
	"github.com/you/tradeops/internal/config"
)

func main() {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
