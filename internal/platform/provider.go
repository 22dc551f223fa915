// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-discovery-config/models"
	"github.com/caarlos0/env/v11"
)

// Provider exposes the platform metadata captured at construction time.
type Provider struct {
	application models.Optional[models.ApplicationDescriptor]
	bindings    []models.ServiceBindingRecord
}

// NewEnvProvider reads VCAP_APPLICATION and VCAP_SERVICES from the process
// environment. Missing variables are not an error: the provider then reports
// no application and no bindings.
func NewEnvProvider() (*Provider, error) {
	var vcap vcapEnv
	if err := env.Parse(&vcap); err != nil {
		return nil, fmt.Errorf("error getting platform env: %w", err)
	}

	return newProvider(vcap), nil
}

// NewProvider builds a provider from raw VCAP_APPLICATION and VCAP_SERVICES
// payloads. Empty strings stand for unset variables.
func NewProvider(application, services string) (*Provider, error) {
	var vcap vcapEnv
	if err := vcap.Application.UnmarshalText([]byte(application)); err != nil {
		return nil, err
	}
	if err := vcap.Services.UnmarshalText([]byte(services)); err != nil {
		return nil, err
	}

	return newProvider(vcap), nil
}

func newProvider(vcap vcapEnv) *Provider {
	p := &Provider{
		application: toDescriptor(vcap.Application),
	}

	for label, instances := range vcap.Services {
		for _, svc := range instances {
			p.bindings = append(p.bindings, toRecord(label, svc))
		}
	}

	slices.SortFunc(p.bindings, func(a, b models.ServiceBindingRecord) int {
		return cmp.Or(cmp.Compare(a.Label, b.Label), cmp.Compare(a.Name, b.Name))
	})

	return p
}

// Application returns the application descriptor, absent when
// VCAP_APPLICATION was not set.
func (p *Provider) Application() models.Optional[models.ApplicationDescriptor] {
	return p.application
}

// ServiceBindings returns the records accepted by match, ordered by catalog
// label and then by instance name. Each record carries the application
// descriptor, or its zero value when there is none.
func (p *Provider) ServiceBindings(match Matcher) []models.ServiceBindingRecord {
	app, _ := p.application.Get()

	var matched []models.ServiceBindingRecord
	for _, record := range p.bindings {
		if match == nil || match(record) {
			record.Application = app
			matched = append(matched, record)
		}
	}

	return matched
}

// RegistryBinding returns the single bound service registry.
//
// No match yields an absent value. More than one match yields
// [ErrAmbiguousBinding].
func (p *Provider) RegistryBinding(_ context.Context) (models.Optional[models.ServiceBindingRecord], error) {
	matched := p.ServiceBindings(IsServiceRegistry)

	switch len(matched) {
	case 0:
		return models.None[models.ServiceBindingRecord](), nil
	case 1:
		return models.Some(matched[0]), nil
	default:
		names := make([]string, 0, len(matched))
		for _, m := range matched {
			names = append(names, m.Name)
		}
		return models.None[models.ServiceBindingRecord](), fmt.Errorf("%w: %v", ErrAmbiguousBinding, names)
	}
}

func toDescriptor(app vcapApplication) models.Optional[models.ApplicationDescriptor] {
	if !app.present {
		return models.None[models.ApplicationDescriptor]()
	}

	uris := app.ApplicationURIs
	if len(uris) == 0 {
		uris = app.URIs
	}

	return models.Some(models.ApplicationDescriptor{
		URIs:          slices.Clone(uris),
		Name:          cmp.Or(app.ApplicationName, app.Name),
		InstanceID:    app.InstanceID,
		ApplicationID: app.ApplicationID,
		SpaceName:     app.SpaceName,
		Version:       cmp.Or(app.ApplicationVersion, app.Version),
		InstanceIndex: app.InstanceIndex,
	})
}

func toRecord(label string, svc vcapService) models.ServiceBindingRecord {
	return models.ServiceBindingRecord{
		Name:           svc.Name,
		Label:          cmp.Or(svc.Label, label),
		Tags:           slices.Clone(svc.Tags),
		Plan:           svc.Plan,
		URI:            svc.credential("uri"),
		ClientID:       svc.credential("client_id"),
		ClientSecret:   svc.credential("client_secret"),
		AccessTokenURI: svc.credential("access_token_uri"),
	}
}
