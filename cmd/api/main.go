package main

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/joho/godotenv"

	"github.com/SecteurA/CloudMenu3-sub001/internal/auth"
	"github.com/SecteurA/CloudMenu3-sub001/internal/db"
	"github.com/SecteurA/CloudMenu3-sub001/internal/extraction"
	"github.com/SecteurA/CloudMenu3-sub001/internal/llm"
	"github.com/SecteurA/CloudMenu3-sub001/internal/menu"
	"github.com/SecteurA/CloudMenu3-sub001/internal/router"
	"github.com/SecteurA/CloudMenu3-sub001/internal/storage"
	"github.com/SecteurA/CloudMenu3-sub001/internal/translation"
)

func main() {
	log.SetHandler(text.New(os.Stderr))

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"ANTHROPIC_API_KEY",
		"ANTHROPIC_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.WithError(err).Fatal("R2 init failed")
	}

	llmClient := llm.NewAnthropicClient()

	userRepo := auth.NewPostgresUserRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	jobRepo := extraction.NewRepository(pgDB)

	authService := auth.NewService(userRepo)
	menuService := menu.NewService(menuRepo, r2Client)
	extractionService := extraction.NewService(llmClient, menuRepo, jobRepo)
	translationService := translation.NewService(llmClient, menuRepo)

	r := router.New(router.Handlers{
		Auth:        auth.NewHandler(authService),
		Menu:        menu.NewHandler(menuService),
		Extraction:  extraction.NewHandler(extractionService),
		Translation: translation.NewHandler(translationService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.WithField("port", port).Info("API running")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
