package service

import (
	"fmt"

	"github.com/MKhiriev/go-discovery-config/internal/adapter"
	"github.com/MKhiriev/go-discovery-config/internal/config"
	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/models"
)

type Services struct {
	DiscoveryService DiscoveryService
	TokenService     TokenService
	AppInfoService   AppInfoService
}

// Dependencies are the outer collaborators the services are built from.
type Dependencies struct {
	Settings     SettingsSource
	Platform     PlatformSource
	Configurer   Configurer
	TokenAdapter adapter.TokenAdapter
	BuildInfo    models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		DiscoveryService: NewDiscoveryService(deps.Settings, deps.Platform, deps.Configurer, logger),
		TokenService:     NewTokenService(deps.TokenAdapter, logger),
		AppInfoService:   appInfo,
	}, nil
}
