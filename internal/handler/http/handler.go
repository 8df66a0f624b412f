package http

import (
	"github.com/MKhiriev/go-user-mgmt/internal/config"
	"github.com/MKhiriev/go-user-mgmt/internal/logger"
	"github.com/MKhiriev/go-user-mgmt/internal/metrics"
	"github.com/MKhiriev/go-user-mgmt/internal/service"
)

type Handler struct {
	services *service.Services

	metrics *metrics.Collector

	// development gates diagnostic detail in 500 responses.
	development bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, collector *metrics.Collector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		metrics:     collector,
		development: cfg.IsDevelopment(),
		logger:      logger,
	}
}
