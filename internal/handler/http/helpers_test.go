package http

import (
	"testing"

	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/internal/mock"
	"github.com/MKhiriev/go-discovery-config/internal/service"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	discovery *mock.MockDiscoveryService
	token     *mock.MockTokenService
	appInfo   *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock services and a nop logger.
func newTestHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		discovery: mock.NewMockDiscoveryService(ctrl),
		token:     mock.NewMockTokenService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		DiscoveryService: m.discovery,
		TokenService:     m.token,
		AppInfoService:   m.appInfo,
	}

	return NewHandler(services, logger.Nop()), m
}
