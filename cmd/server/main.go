package main

import (
	"context"
	"log"

	httpadapter "cv-builder/internal/adapter/http"
	repo "cv-builder/internal/adapter/repository"
	"cv-builder/internal/config"
	"cv-builder/internal/infrastructure/migration"
	"cv-builder/internal/usecase"
	infra "cv-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// infra setup; the revisions DB is optional
	revisions := repo.NewRevisionStore(nil)
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewRevisionsPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("warning: revisions DB not available: %v", err)
		} else {
			if err := migration.RunMigrations(ctx, pool); err != nil {
				log.Printf("warning: migrations failed: %v", err)
			}
			revisions = repo.NewRevisionStore(pool)
		}
	}

	renderer := infra.NewChromedpRenderer()
	exporter := usecase.NewExporter(renderer)

	cvStore := repo.NewCVStore(cfg.CVDataFile)
	empleoStore := repo.NewEmpleoFileStore(cfg.EmpleosDataFile)

	app := fiber.New(fiber.Config{BodyLimit: 4 * 1024 * 1024})
	app.Use(recover.New())
	app.Use(logger.New())

	h := httpadapter.NewHandler(cvStore, revisions, exporter)
	rh := httpadapter.NewRegistryHandler(empleoStore, revisions)

	app.Get("/get_cv_data", h.GetCVData)
	app.Post("/save_cv_data", h.SaveCVData)
	app.Post("/generate_pdf", h.GeneratePDF)
	app.Post("/preview_cv", h.PreviewCV)

	app.Get("/get_empleos", rh.GetEmpleos)
	app.Post("/save_empleos", rh.SaveEmpleos)
	app.Get("/empleos_view", rh.EmpleosView)
	app.Get("/empleos_view/:id", rh.EmpleoModalView)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
