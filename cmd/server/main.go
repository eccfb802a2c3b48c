package main

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-gate/internal/app"
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/handler"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/server"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/workers"
	"github.com/MKhiriev/go-auth-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-auth-gate").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-auth-gate", logger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})

	log.Info().
		Any("build", models.NewBuildInfo(buildVersion, buildDate, buildCommit)).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("sessions_backend", cfg.Storage.Sessions.Backend).
		Msg("starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Debug().Err(err).Msg("store connection error")
		log.Fatal().Msg(app.MsgDatabaseUnavailable)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	if err = storages.DB.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var background []workers.Worker
	if storages.SweepSessions {
		background = append(background, workers.NewSessionSweeper(storages.SessionStore, cfg.Storage.Sessions.SweepInterval, log))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workers.NewWorkers(background...).Run(ctx)
	}()

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	cancel()
	wg.Wait()
}
