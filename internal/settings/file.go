// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type decodeFunc func(data []byte, tree *Tree) error

func decoderFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON, nil
	case ".yaml", ".yml":
		return decodeYAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// decodeFile decodes the file at path on top of tree. Keys missing from the
// file keep the value tree already holds; an empty file changes nothing.
func decodeFile(path string, tree *Tree) error {
	decode, err := decoderFor(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrReadSettings, path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err = decode(data, tree); err != nil {
		return fmt.Errorf("%w %q: %w", ErrDecodeSettings, path, err)
	}

	return nil
}

func decodeJSON(data []byte, tree *Tree) error {
	return json.Unmarshal(data, tree)
}

func decodeYAML(data []byte, tree *Tree) error {
	return yaml.Unmarshal(data, tree)
}
