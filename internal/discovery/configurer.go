// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

import (
	"github.com/MKhiriev/go-discovery-config/models"
)

const (
	// ServerURLSuffix is appended to the bound registry URI to form the
	// server URL.
	ServerURLSuffix = "/eureka/"

	// DefaultNonSecurePort is the port platform routes expose an
	// application on.
	DefaultNonSecurePort = 80
)

// Configurer merges an optional service binding into settings-derived
// options.
type Configurer struct{}

// NewConfigurer returns a ready to use [Configurer].
func NewConfigurer() *Configurer {
	return &Configurer{}
}

// Configure mutates opts in place.
//
// The client type is always set to [models.ClientTypeEureka]. When binding is
// absent nothing else changes. When it is present, the registry URI,
// credentials and application identity of the record replace the values read
// from settings. Empty fields of the record leave their targets untouched.
//
// Configure is idempotent: running it twice with the same inputs yields the
// same options.
func (c *Configurer) Configure(binding models.Optional[models.ServiceBindingRecord], opts *models.DiscoveryOptions) {
	if opts == nil {
		return
	}

	opts.ClientType = models.ClientTypeEureka

	record, ok := binding.Get()
	if !ok {
		return
	}

	updateClientOptions(record, &opts.Client)
	updateInstanceOptions(record.Application, &opts.Instance)
}

func updateClientOptions(record models.ServiceBindingRecord, client *models.ClientOptions) {
	if record.URI != "" {
		client.EurekaServerServiceUrls = record.URI + ServerURLSuffix
	}
	if record.AccessTokenURI != "" {
		client.AccessTokenUri = record.AccessTokenURI
	}
	if record.ClientID != "" {
		client.ClientId = record.ClientID
	}
	if record.ClientSecret != "" {
		client.ClientSecret = record.ClientSecret
	}
}

func updateInstanceOptions(app models.ApplicationDescriptor, instance *models.InstanceOptions) {
	uri, hasURI := app.PrimaryURI()

	if hasURI {
		instance.HostName = uri
	}
	if hasURI && app.InstanceID != "" {
		instance.InstanceId = uri + ":" + app.InstanceID
	}
	if app.Name != "" {
		instance.AppName = app.Name
	}
	if app.InstanceID != "" {
		if instance.MetadataMap == nil {
			instance.MetadataMap = make(map[string]string, 1)
		}
		instance.MetadataMap[models.MetadataInstanceIDKey] = app.InstanceID
	}

	// the route port replaces whatever the settings declared
	instance.NonSecurePort = DefaultNonSecurePort
}
