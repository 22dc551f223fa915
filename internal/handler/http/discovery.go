// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/internal/utils"
)

// tokenInfoResponse describes the registry token without exposing it.
type tokenInfoResponse struct {
	TokenType string     `json:"token_type,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// getOptions writes the resolved discovery options with secrets masked.
func (h *Handler) getOptions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	opts, err := h.services.DiscoveryService.RedactedOptions(r.Context())
	if err != nil {
		log.Err(err).Msg("error getting discovery options")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, opts, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing discovery options")
	}
}

// getTokenInfo obtains (or reuses) the registry access token and writes its
// type and expiry. The bearer value never leaves the process.
func (h *Handler) getTokenInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	opts, err := h.services.DiscoveryService.Options(ctx)
	if err != nil {
		log.Err(err).Msg("error getting discovery options")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.TokenService.AccessToken(ctx, opts.Client)
	if err != nil {
		log.Err(err).Msg("error getting access token")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	resp := tokenInfoResponse{TokenType: token.TokenType}
	if !token.ExpiresAt.IsZero() {
		resp.ExpiresAt = &token.ExpiresAt
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing token info")
	}
}
