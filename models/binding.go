// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ApplicationDescriptor describes the running application as reported by the
// platform it is deployed on.
type ApplicationDescriptor struct {
	// URIs lists the externally reachable routes of the application.
	// The first entry is treated as the primary route.
	URIs []string `json:"uris"`

	// Name is the platform application name.
	Name string `json:"name"`

	// InstanceID identifies this particular instance of the application.
	InstanceID string `json:"instance_id"`

	ApplicationID string `json:"application_id"`

	// SpaceName is the platform grouping the application belongs to.
	SpaceName string `json:"space_name"`

	Version       string `json:"version"`
	InstanceIndex int    `json:"instance_index"`
}

// PrimaryURI returns the first application URI, or false when the platform
// reported none.
func (a ApplicationDescriptor) PrimaryURI() (string, bool) {
	if len(a.URIs) == 0 || a.URIs[0] == "" {
		return "", false
	}
	return a.URIs[0], true
}

// ServiceBindingRecord holds the credentials of a backing service bound to the
// application, together with the identity of the application it is bound to.
type ServiceBindingRecord struct {
	Name  string   `json:"name"`
	Label string   `json:"label"`
	Tags  []string `json:"tags"`
	Plan  string   `json:"plan"`

	URI            string `json:"uri"`
	ClientID       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
	AccessTokenURI string `json:"access_token_uri"`

	Application ApplicationDescriptor `json:"application"`
}
