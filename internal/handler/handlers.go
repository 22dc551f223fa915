package handler

import (
	"github.com/MKhiriev/go-discovery-config/internal/config"
	"github.com/MKhiriev/go-discovery-config/internal/handler/grpc"
	"github.com/MKhiriev/go-discovery-config/internal/handler/http"
	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for each configured address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
