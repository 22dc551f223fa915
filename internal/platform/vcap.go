// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"encoding/json"
	"fmt"
)

// vcapEnv is populated by caarlos0/env. Both payloads decode themselves
// through [encoding.TextUnmarshaler].
type vcapEnv struct {
	Application vcapApplication `env:"VCAP_APPLICATION"`
	Services    vcapServices    `env:"VCAP_SERVICES"`
}

type vcapApplication struct {
	present bool

	ApplicationName    string   `json:"application_name"`
	ApplicationURIs    []string `json:"application_uris"`
	ApplicationID      string   `json:"application_id"`
	ApplicationVersion string   `json:"application_version"`
	Name               string   `json:"name"`
	URIs               []string `json:"uris"`
	SpaceName          string   `json:"space_name"`
	Version            string   `json:"version"`
	InstanceID         string   `json:"instance_id"`
	InstanceIndex      int      `json:"instance_index"`
}

func (a *vcapApplication) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return nil
	}

	type plain vcapApplication
	var decoded plain
	if err := json.Unmarshal(text, &decoded); err != nil {
		return fmt.Errorf("%w: VCAP_APPLICATION: %w", ErrMalformedPlatformData, err)
	}

	*a = vcapApplication(decoded)
	a.present = true
	return nil
}

type vcapServices map[string][]vcapService

type vcapService struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	Plan        string         `json:"plan"`
	Tags        []string       `json:"tags"`
	Credentials map[string]any `json:"credentials"`
}

func (s *vcapServices) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		return nil
	}

	var decoded map[string][]vcapService
	if err := json.Unmarshal(text, &decoded); err != nil {
		return fmt.Errorf("%w: VCAP_SERVICES: %w", ErrMalformedPlatformData, err)
	}

	*s = decoded
	return nil
}

// credential returns the string credential stored under key. Non-string
// values are treated as absent.
func (s vcapService) credential(key string) string {
	v, ok := s.Credentials[key].(string)
	if !ok {
		return ""
	}
	return v
}
