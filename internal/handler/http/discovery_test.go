package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-discovery-config/internal/service"
	"github.com/MKhiriev/go-discovery-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func resolvedOptions() *models.DiscoveryOptions {
	return &models.DiscoveryOptions{
		ClientType: models.ClientTypeEureka,
		Client: models.ClientOptions{
			EurekaServerServiceUrls: "https://eureka-X.apps.testcloud.com/eureka/",
			AccessTokenUri:          "https://uaa/oauth/token",
			ClientId:                "p-service-registry-06e28efd",
			ClientSecret:            "dCsdoiuklicS",
		},
		Instance: models.InstanceOptions{
			InstanceId:    "foo.apps.testcloud.com:instance_id",
			AppName:       "foo",
			NonSecurePort: 80,
		},
	}
}

// ── GET /api/discovery/options ──────────────────────────────────────────────

func TestGetOptions_Success(t *testing.T) {
	h, m := newTestHandler(t)

	redacted := resolvedOptions().Redacted()
	m.discovery.EXPECT().RedactedOptions(gomock.Any()).Return(redacted, nil)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routeOptions, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got models.DiscoveryOptions
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "https://eureka-X.apps.testcloud.com/eureka/", got.Client.EurekaServerServiceUrls)
	assert.Equal(t, "******", got.Client.ClientSecret)
	assert.Equal(t, 80, got.Instance.NonSecurePort)
	assert.NotContains(t, rr.Body.String(), "dCsdoiuklicS")
}

func TestGetOptions_NotResolved(t *testing.T) {
	h, m := newTestHandler(t)
	m.discovery.EXPECT().RedactedOptions(gomock.Any()).Return(nil, service.ErrOptionsNotResolved)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routeOptions, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

// ── GET /api/discovery/token ────────────────────────────────────────────────

func TestGetTokenInfo_Success(t *testing.T) {
	h, m := newTestHandler(t)

	opts := resolvedOptions()
	expiresAt := time.Date(2026, 5, 1, 11, 0, 0, 0, time.UTC)

	gomock.InOrder(
		m.discovery.EXPECT().Options(gomock.Any()).Return(opts, nil),
		m.token.EXPECT().AccessToken(gomock.Any(), opts.Client).
			Return(models.Token{AccessToken: "very-secret-bearer", TokenType: "bearer", ExpiresAt: expiresAt}, nil),
	)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routeToken, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "very-secret-bearer")

	var got tokenInfoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "bearer", got.TokenType)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, expiresAt.Equal(*got.ExpiresAt))
}

func TestGetTokenInfo_UnknownExpiryOmitted(t *testing.T) {
	h, m := newTestHandler(t)

	m.discovery.EXPECT().Options(gomock.Any()).Return(resolvedOptions(), nil)
	m.token.EXPECT().AccessToken(gomock.Any(), gomock.Any()).Return(models.Token{AccessToken: "x", TokenType: "bearer"}, nil)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routeToken, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"token_type":"bearer"}`, rr.Body.String())
}

func TestGetTokenInfo_Errors(t *testing.T) {
	tests := []struct {
		name       string
		optsErr    error
		tokenErr   error
		wantStatus int
	}{
		{"not resolved", service.ErrOptionsNotResolved, nil, http.StatusServiceUnavailable},
		{"no credentials", nil, service.ErrNoCredentials, http.StatusNotFound},
		{"rejected credentials", nil, fmt.Errorf("%w: 401", service.ErrInvalidCredentials), http.StatusBadGateway},
		{"endpoint down", nil, service.ErrTokenEndpoint, http.StatusBadGateway},
		{"unexpected", nil, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)

			if tt.optsErr != nil {
				m.discovery.EXPECT().Options(gomock.Any()).Return(nil, tt.optsErr)
			} else {
				m.discovery.EXPECT().Options(gomock.Any()).Return(resolvedOptions(), nil)
				m.token.EXPECT().AccessToken(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.tokenErr)
			}

			rr := httptest.NewRecorder()
			h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routeToken, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
