package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/internal/mock"
	"github.com/MKhiriev/go-discovery-config/internal/service"
	"github.com/MKhiriev/go-discovery-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

// startHealthServer serves h over an in-memory listener and returns a client.
func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	srv := grpc.NewServer()
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func newTestGRPCHandler(t *testing.T) (*Handler, *mock.MockDiscoveryService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	discovery := mock.NewMockDiscoveryService(ctrl)

	return NewHandler(&service.Services{DiscoveryService: discovery}, logger.Nop()), discovery
}

func check(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_NotServingBeforeResolve(t *testing.T) {
	h, _ := newTestGRPCHandler(t)
	client := startHealthServer(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, DiscoveryServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
}

func TestHealth_Refresh(t *testing.T) {
	h, discovery := newTestGRPCHandler(t)
	client := startHealthServer(t, h)
	ctx := context.Background()

	discovery.EXPECT().Options(gomock.Any()).Return(&models.DiscoveryOptions{}, nil)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Refresh(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, DiscoveryServiceName))

	discovery.EXPECT().Options(gomock.Any()).Return(nil, service.ErrOptionsNotResolved)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Refresh(ctx))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, DiscoveryServiceName))
}

func TestHealth_Shutdown(t *testing.T) {
	h, discovery := newTestGRPCHandler(t)
	client := startHealthServer(t, h)

	discovery.EXPECT().Options(gomock.Any()).Return(&models.DiscoveryOptions{}, nil)
	h.Refresh(context.Background())
	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, DiscoveryServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHealth_UnknownService(t *testing.T) {
	h, _ := newTestGRPCHandler(t)
	client := startHealthServer(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Error(t, err)
}
