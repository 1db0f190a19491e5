package main

import (
	"context"
	"log"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// infra setup
	var store usecase.ResumeRepo
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewResumesPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("resumes DB not available: %v", err)
		}
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		store = repo.NewPostgresRepo(pool)
	} else {
		log.Printf("warning: DATABASE_URL not set, using in-memory store")
		store = repo.NewMemoryRepo()
	}

	resumes := usecase.NewResumes(store)
	exporter := usecase.NewExporter(resumes, infra.NewChromedpRenderer())

	app := fiber.New()

	h := httpadapter.NewHandler(resumes, exporter)
	h.Register(app)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
