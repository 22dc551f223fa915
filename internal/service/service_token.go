package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-discovery-config/internal/adapter"
	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/models"
)

// TokenRefreshMargin is how long before expiry a cached token is replaced.
const TokenRefreshMargin = 30 * time.Second

type tokenKey struct {
	uri      string
	clientID string
}

type tokenService struct {
	adapter adapter.TokenAdapter
	now     func() time.Time

	// mu is held across the outbound request so concurrent callers wait
	// for one fetch instead of issuing their own.
	mu    sync.Mutex
	cache map[tokenKey]models.Token

	logger *logger.Logger
}

func NewTokenService(adapter adapter.TokenAdapter, logger *logger.Logger) TokenService {
	return &tokenService{
		adapter: adapter,
		now:     time.Now,
		cache:   make(map[tokenKey]models.Token),
		logger:  logger,
	}
}

func (s *tokenService) AccessToken(ctx context.Context, client models.ClientOptions) (models.Token, error) {
	if !client.HasCredentials() {
		return models.Token{}, ErrNoCredentials
	}

	key := tokenKey{uri: client.AccessTokenUri, clientID: client.ClientId}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.cache[key]; ok && token.ValidAt(s.now(), TokenRefreshMargin) {
		return token, nil
	}

	token, err := s.adapter.RequestToken(ctx, client.AccessTokenUri, client.ClientId, client.ClientSecret)
	if err != nil {
		delete(s.cache, key)
		s.logger.Err(err).Str("client_id", client.ClientId).Msg("error requesting access token")
		return models.Token{}, mapAdapterError(err)
	}

	s.cache[key] = token
	s.logger.Info().Str("client_id", client.ClientId).Time("expires_at", token.ExpiresAt).Msg("access token refreshed")

	return token, nil
}
