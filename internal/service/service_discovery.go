package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/models"
)

type discoveryService struct {
	settings   SettingsSource
	platform   PlatformSource
	configurer Configurer

	mu       sync.RWMutex
	resolved *models.DiscoveryOptions

	logger *logger.Logger
}

func NewDiscoveryService(settings SettingsSource, platform PlatformSource, configurer Configurer, logger *logger.Logger) DiscoveryService {
	return &discoveryService{
		settings:   settings,
		platform:   platform,
		configurer: configurer,
		logger:     logger,
	}
}

func (s *discoveryService) Resolve(ctx context.Context) (*models.DiscoveryOptions, error) {
	opts, err := s.settings.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadSettings, err)
	}

	binding, err := s.platform.RegistryBinding(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadPlatform, err)
	}

	if record, ok := binding.Get(); ok {
		s.logger.Info().
			Str("binding", record.Name).
			Str("label", record.Label).
			Msg("service registry binding found, overriding settings")
	} else {
		s.logger.Info().Msg("no service registry binding, using settings as configured")
	}

	s.configurer.Configure(binding, opts)

	s.mu.Lock()
	s.resolved = opts.Clone()
	s.mu.Unlock()

	s.logger.Debug().
		Str("server_url", opts.Client.EurekaServerServiceUrls).
		Str("instance_id", opts.Instance.InstanceId).
		Str("app_name", opts.Instance.AppName).
		Msg("discovery options resolved")

	return opts, nil
}

func (s *discoveryService) Options(_ context.Context) (*models.DiscoveryOptions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.resolved == nil {
		return nil, ErrOptionsNotResolved
	}
	return s.resolved.Clone(), nil
}

func (s *discoveryService) RedactedOptions(_ context.Context) (*models.DiscoveryOptions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.resolved == nil {
		return nil, ErrOptionsNotResolved
	}
	return s.resolved.Redacted(), nil
}
