// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-discovery-config/models"
)

type loader struct {
	tree *Tree
	err  error
}

func newLoader() *loader {
	return &loader{
		tree: NewDefaultTree(),
	}
}

func (l *loader) withFiles(paths ...string) *loader {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := decodeFile(path, l.tree); err != nil {
			l.err = errors.Join(l.err, err)
		}
	}

	return l
}

func (l *loader) withEnv() *loader {
	if err := parseEnv(l.tree); err != nil {
		l.err = errors.Join(l.err, err)
	}

	return l
}

func (l *loader) build() (*models.DiscoveryOptions, error) {
	if l.err != nil {
		return nil, fmt.Errorf("error occurred during loading settings: %w", l.err)
	}

	return l.tree.Options(), nil
}

// Load reads the given settings files in order and returns the resulting
// options. EUREKA_* environment variables are not consulted; use [Source]
// for the full layering.
func Load(paths ...string) (*models.DiscoveryOptions, error) {
	return newLoader().
		withFiles(paths...).
		build()
}

// Source is a settings source bound to a fixed list of files.
type Source struct {
	paths  []string
	useEnv bool
}

// NewSource returns a [Source] reading paths and, when useEnv is true,
// EUREKA_* environment overrides.
func NewSource(paths []string, useEnv bool) *Source {
	return &Source{
		paths:  append([]string(nil), paths...),
		useEnv: useEnv,
	}
}

// Load builds fresh options on every call.
func (s *Source) Load(_ context.Context) (*models.DiscoveryOptions, error) {
	l := newLoader().withFiles(s.paths...)
	if s.useEnv {
		l.withEnv()
	}

	return l.build()
}
