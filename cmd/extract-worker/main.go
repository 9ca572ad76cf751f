package main

import (
	"context"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/joho/godotenv"

	"github.com/SecteurA/CloudMenu3-sub001/internal/db"
	"github.com/SecteurA/CloudMenu3-sub001/internal/extraction"
	"github.com/SecteurA/CloudMenu3-sub001/internal/llm"
	"github.com/SecteurA/CloudMenu3-sub001/internal/menu"
)

func main() {
	log.SetHandler(text.New(os.Stderr))

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	for _, k := range []string{"DATABASE_URL", "ANTHROPIC_API_KEY", "ANTHROPIC_MODEL"} {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	menuRepo := menu.NewPostgresRepository(pgDB)
	jobRepo := extraction.NewRepository(pgDB)
	service := extraction.NewService(llm.NewAnthropicClient(), menuRepo, jobRepo)

	log.Info("extraction worker running, polling every 2 seconds")

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := service.ProcessOne(context.Background()); err != nil {
			log.WithError(err).Warn("worker error")
		}
	}
}
