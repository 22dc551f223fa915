package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegistersRoutes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	registered := map[string]bool{}
	require.NoError(t, chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	}))

	for _, route := range []string{routeVersion, routeBuildInfo, routeOptions, routeToken} {
		assert.True(t, registered[http.MethodGet+" "+route], "expected GET %s", route)
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, routeOptions, nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h, _ := newTestHandler(t)
	// nil services make every handler panic
	h.services.AppInfoService = nil

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routeVersion, nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
