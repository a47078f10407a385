package main

import (
	"context"
	"fmt"

	"github.com/opendesk-labs/opendesk/internal/config"
	myHTTP "github.com/opendesk-labs/opendesk/internal/handler/http"
	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/server"
	"github.com/opendesk-labs/opendesk/internal/service"
	"github.com/opendesk-labs/opendesk/internal/store"
	"github.com/opendesk-labs/opendesk/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("opendesk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	effective := config.Resolve(config.NewRuntimeContext(cfg.Runtime))
	config.LogResolution(log, &effective)

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repos := store.NewRepositories(db, log)
	services := service.NewServices(repos, &effective, log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}

	handler := myHTTP.NewHandler(services, &effective, version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
