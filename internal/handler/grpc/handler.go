// Package grpc exposes the standard gRPC health service for the discovery
// resolver, so orchestrators can gate traffic on resolved options.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DiscoveryServiceName is the health service name reported for the
// resolver. The empty name reports overall process health.
const DiscoveryServiceName = "discovery"

// Handler is the root gRPC transport handler.
//
// It owns the health server. The discovery status starts as NOT_SERVING and
// follows the resolver through Refresh.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] over the service container.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus(DiscoveryServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Refresh sets the discovery status to SERVING when options are resolved and
// NOT_SERVING otherwise. It returns the status that was set.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if _, err := h.services.DiscoveryService.Options(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus(DiscoveryServiceName, status)
	h.logger.Info().Str("service", DiscoveryServiceName).Str("status", status.String()).Msg("health status updated")

	return status
}

// Shutdown flips every status to NOT_SERVING ahead of server stop.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
