package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/campus-ce/catalog-api/internal/models"
	"github.com/campus-ce/catalog-api/internal/repository"
	"github.com/campus-ce/catalog-api/pkg/config"
	"github.com/campus-ce/catalog-api/pkg/database"
	"github.com/campus-ce/catalog-api/pkg/logger"
)

// import-courses clears the catalog tables and reloads them from a cleaned
// scrape file. The whole load runs in one transaction, so readers never see
// a half-imported catalog.
func main() {
	var (
		file    = flag.String("file", "cleaned_data.json", "path to the cleaned course JSON")
		timeout = flag.Duration("timeout", 5*time.Minute, "import deadline")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	raw, err := os.ReadFile(*file)
	if err != nil {
		logr.Sugar().Fatalw("failed to read course file", "file", *file, "error", err)
	}

	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		logr.Sugar().Fatalw("failed to parse course file", "file", *file, "error", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	repo := repository.NewCourseRepository(db)
	if err := repo.ReplaceAll(ctx, courses); err != nil {
		logr.Sugar().Fatalw("catalog import failed", "error", err)
	}

	schedules := 0
	for _, course := range courses {
		schedules += len(course.Schedules)
	}
	logr.Sugar().Infow("catalog imported", "file", *file, "courses", len(courses), "schedules", schedules)
}
