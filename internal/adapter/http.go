package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-discovery-config/internal/config"
	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/internal/utils"
	"github.com/MKhiriev/go-discovery-config/models"
)

const grantTypeClientCredentials = "client_credentials"

// DefaultTokenRequestTimeout bounds a token request when the config leaves
// the timeout unset.
const DefaultTokenRequestTimeout = 15 * time.Second

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type httpTokenAdapter struct {
	client *utils.HTTPClient
	now    func() time.Time

	logger *logger.Logger
}

// NewHTTPTokenAdapter constructs the resty-backed [TokenAdapter].
func NewHTTPTokenAdapter(cfg config.Adapter, logger *logger.Logger) TokenAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultTokenRequestTimeout
	}

	return &httpTokenAdapter{
		client: utils.NewHTTPClient(timeout),
		now:    time.Now,
		logger: logger,
	}
}

// RequestToken implements [TokenAdapter].
func (h *httpTokenAdapter) RequestToken(ctx context.Context, tokenURI, clientID, clientSecret string) (models.Token, error) {
	tokenURI = strings.TrimSpace(tokenURI)
	if tokenURI == "" {
		return models.Token{}, ErrEmptyTokenURI
	}

	requestedAt := h.now()
	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(clientID, clientSecret).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{"grant_type": grantTypeClientCredentials}).
		Post(tokenURI)
	if err != nil {
		return models.Token{}, fmt.Errorf("token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Int("status", resp.StatusCode()).Str("token_uri", tokenURI).Msg("token endpoint rejected request")
		return models.Token{}, err
	}

	var tr tokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return models.Token{}, fmt.Errorf("%w: decode: %w", ErrInvalidTokenResponse, err)
	}
	if tr.AccessToken == "" {
		return models.Token{}, fmt.Errorf("%w: empty access_token", ErrInvalidTokenResponse)
	}

	token := models.Token{
		AccessToken: tr.AccessToken,
		TokenType:   tr.TokenType,
		ExpiresAt:   h.expiresAt(tr, requestedAt),
	}

	h.logger.Debug().Time("expires_at", token.ExpiresAt).Msg("access token obtained")
	return token, nil
}

func (h *httpTokenAdapter) expiresAt(tr tokenResponse, requestedAt time.Time) time.Time {
	if tr.ExpiresIn > 0 {
		return requestedAt.Add(time.Duration(tr.ExpiresIn) * time.Second)
	}

	exp, err := utils.ExpiryFromJWT(tr.AccessToken)
	if err != nil {
		if !errors.Is(err, utils.ErrNoExpiry) {
			h.logger.Debug().Err(err).Msg("access token is not a JWT, expiry unknown")
		}
		return time.Time{}
	}

	return exp
}
