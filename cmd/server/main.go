package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-user-mgmt/internal/config"
	httphandler "github.com/MKhiriev/go-user-mgmt/internal/handler/http"
	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/metrics"
	"github.com/MKhiriev/go-user-mgmt/internal/server"
	"github.com/MKhiriev/go-user-mgmt/internal/service"
	"github.com/MKhiriev/go-user-mgmt/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-mgmt-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.Auth, log)
	services := service.NewServices(storages, cfg.Auth, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(registry)

	handler := httphandler.NewHandler(services, cfg.App, collector, log)

	srv, err := server.NewServer(handler.Init(registry), cfg.Server, log)
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
