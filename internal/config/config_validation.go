// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.RefreshInterval < 0 {
		return ErrInvalidAppConfigs
	}

	for _, p := range cfg.App.SettingsFiles {
		if p == "" {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}
