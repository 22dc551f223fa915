// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service ties the settings tree, the platform binding and the
// configurer together into resolved discovery options, and serves the
// access token and build information derived from them.
package service

import (
	"context"

	"github.com/MKhiriev/go-discovery-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SettingsSource produces freshly loaded discovery options from the layered
// settings (defaults, files, environment).
type SettingsSource interface {
	Load(ctx context.Context) (*models.DiscoveryOptions, error)
}

// PlatformSource looks up the service registry binding injected by the
// hosting platform.
type PlatformSource interface {
	RegistryBinding(ctx context.Context) (models.Optional[models.ServiceBindingRecord], error)
}

// Configurer applies a binding, if any, on top of file-configured options.
type Configurer interface {
	Configure(binding models.Optional[models.ServiceBindingRecord], opts *models.DiscoveryOptions)
}

type DiscoveryService interface {
	// Resolve loads the settings, applies the platform binding and stores
	// the result. It may be called again to re-resolve.
	Resolve(ctx context.Context) (*models.DiscoveryOptions, error)

	// Options returns a copy of the last resolved options.
	Options(ctx context.Context) (*models.DiscoveryOptions, error)

	// RedactedOptions is Options with secrets masked.
	RedactedOptions(ctx context.Context) (*models.DiscoveryOptions, error)
}

type TokenService interface {
	AccessToken(ctx context.Context, client models.ClientOptions) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
