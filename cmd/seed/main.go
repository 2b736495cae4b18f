package main

import (
	"context"
	"os"
	"time"

	"github.com/yukikurage/pharmacy-tasks/internal/config"
	"github.com/yukikurage/pharmacy-tasks/internal/database"
	"github.com/yukikurage/pharmacy-tasks/internal/logger"
	"github.com/yukikurage/pharmacy-tasks/internal/repository"
	"github.com/yukikurage/pharmacy-tasks/internal/seed"
	"github.com/yukikurage/pharmacy-tasks/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	db, err := database.Connect(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	if err := database.Migrate(db, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	userRepo := repository.NewUserRepository(db)
	pharmacyRepo := repository.NewPharmacyRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	svc := seed.Services{
		Users:      services.NewUserService(userRepo),
		Pharmacies: services.NewPharmacyService(pharmacyRepo),
		Tasks:      services.NewTaskService(taskRepo, commentRepo, pharmacyRepo, userRepo),
		Comments:   services.NewCommentService(commentRepo, taskRepo, userRepo),
	}

	if _, err := seed.Run(context.Background(), svc, cfg.SeedPassword, time.Now(), log); err != nil {
		log.Error().Err(err).Msg("Failed to seed demo data")
		database.Close(db)
		os.Exit(1)
	}
}
