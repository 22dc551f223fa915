// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/internal/service"
)

// RefreshHook is called after every refresh attempt, successful or not.
type RefreshHook func(ctx context.Context)

// RefreshWorker re-resolves the discovery options on a fixed interval and
// keeps the registry access token warm. A failed resolve keeps the options
// of the previous successful one.
type RefreshWorker struct {
	discovery service.DiscoveryService
	tokens    service.TokenService
	interval  time.Duration
	hooks     []RefreshHook

	logger *logger.Logger
}

func NewRefreshWorker(services *service.Services, interval time.Duration, logger *logger.Logger, hooks ...RefreshHook) *RefreshWorker {
	return &RefreshWorker{
		discovery: services.DiscoveryService,
		tokens:    services.TokenService,
		interval:  interval,
		hooks:     hooks,
		logger:    logger,
	}
}

func (w *RefreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("discovery refresh worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("discovery refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	defer func() {
		for _, hook := range w.hooks {
			hook(ctx)
		}
	}()

	opts, err := w.discovery.Resolve(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("discovery refresh failed, keeping previous options")
		return
	}

	if !opts.Client.HasCredentials() {
		return
	}

	token, err := w.tokens.AccessToken(ctx, opts.Client)
	if err != nil {
		w.logger.Warn().Err(err).Msg("registry access token refresh failed")
		return
	}
	w.logger.Debug().Time("expires_at", token.ExpiresAt).Msg("registry access token is valid")
}
