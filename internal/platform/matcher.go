// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-discovery-config/models"
)

// Matcher decides whether a bound service record is of interest.
type Matcher func(record models.ServiceBindingRecord) bool

const (
	// RegistryLabel is the catalog label of the managed service registry.
	RegistryLabel = "p-service-registry"
	// RegistryTag is the tag carried by Eureka-compatible registries.
	RegistryTag = "eureka"
)

// ByLabelPrefix matches records whose catalog label starts with prefix.
func ByLabelPrefix(prefix string) Matcher {
	return func(record models.ServiceBindingRecord) bool {
		return strings.HasPrefix(record.Label, prefix)
	}
}

// ByTag matches records carrying tag, compared case-insensitively.
func ByTag(tag string) Matcher {
	return func(record models.ServiceBindingRecord) bool {
		return slices.ContainsFunc(record.Tags, func(t string) bool {
			return strings.EqualFold(t, tag)
		})
	}
}

// Any matches records accepted by at least one of matchers.
func Any(matchers ...Matcher) Matcher {
	return func(record models.ServiceBindingRecord) bool {
		for _, m := range matchers {
			if m(record) {
				return true
			}
		}
		return false
	}
}

// IsServiceRegistry recognizes a bound service registry.
var IsServiceRegistry = Any(ByLabelPrefix(RegistryLabel), ByTag(RegistryTag))
