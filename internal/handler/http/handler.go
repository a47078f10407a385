package http

import (
	"github.com/opendesk-labs/opendesk/internal/config"
	"github.com/opendesk-labs/opendesk/internal/logger"
	"github.com/opendesk-labs/opendesk/internal/service"
)

type Handler struct {
	services  *service.Services
	effective *config.EffectiveConfig
	version   string

	logger *logger.Logger
}

func NewHandler(services *service.Services, effective *config.EffectiveConfig, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		effective: effective,
		version:   version,
		logger:    logger,
	}
}
