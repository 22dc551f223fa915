package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-discovery-config/internal/config"
	"github.com/MKhiriev/go-discovery-config/internal/handler"
	"github.com/MKhiriev/go-discovery-config/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownOnce sync.Once
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		if handlers == nil || handlers.HTTP == nil {
			return nil, errMissingHandler
		}
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		if handlers == nil || handlers.GRPC == nil {
			return nil, errMissingHandler
		}
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errors.New("no servers to run")
	}

	for i, t := range transports {
		if err := t.listen(); err != nil {
			for _, opened := range transports[:i] {
				opened.closeListener()
			}
			return err
		}
	}

	var wg sync.WaitGroup
	for _, t := range transports {
		s.logger.Info().Msgf("Launching %s server", t.name())
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.serve()
		}()
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		for _, t := range s.transports() {
			t.shutdown()
		}
	})
}

func (s *server) transports() []transport {
	var out []transport
	if s.httpServer != nil {
		out = append(out, s.httpServer)
	}
	if s.gRPCServer != nil {
		out = append(out, s.gRPCServer)
	}
	return out
}
