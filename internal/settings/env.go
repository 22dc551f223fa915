// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv applies EUREKA_* environment variables on top of tree. Only
// variables that are present change the tree.
//
// The metadata map is read from EUREKA_INSTANCE_METADATA_MAP in the
// "key:value,key:value" form and replaces the whole map when set.
func parseEnv(tree *Tree) error {
	if err := env.Parse(tree); err != nil {
		return fmt.Errorf("%w: %w", ErrEnvSettings, err)
	}

	return nil
}
