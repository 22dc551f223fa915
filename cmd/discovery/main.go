package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-discovery-config/internal/adapter"
	"github.com/MKhiriev/go-discovery-config/internal/config"
	"github.com/MKhiriev/go-discovery-config/internal/discovery"
	"github.com/MKhiriev/go-discovery-config/internal/handler"
	"github.com/MKhiriev/go-discovery-config/internal/logger"
	"github.com/MKhiriev/go-discovery-config/internal/platform"
	"github.com/MKhiriev/go-discovery-config/internal/server"
	"github.com/MKhiriev/go-discovery-config/internal/service"
	"github.com/MKhiriev/go-discovery-config/internal/settings"
	"github.com/MKhiriev/go-discovery-config/internal/workers"
	"github.com/MKhiriev/go-discovery-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const devVersion = "dev"

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("go-discovery-config")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	provider, err := platform.NewEnvProvider()
	if err != nil {
		log.Fatal().Err(err).Msg("error reading platform environment")
	}

	if cfg.App.Version == "" && !build.HasVersion() {
		log.Warn().Str("version", devVersion).Msg("no app version configured")
		cfg.App.Version = devVersion
	}

	services, err := service.NewServices(service.Dependencies{
		Settings:     settings.NewSource(cfg.App.SettingsFiles, !cfg.App.DisableEnvSettings),
		Platform:     provider,
		Configurer:   discovery.NewConfigurer(),
		TokenAdapter: adapter.NewHTTPTokenAdapter(cfg.Adapter, log),
		BuildInfo:    build,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	ctx := context.Background()
	opts, err := services.DiscoveryService.Resolve(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving discovery options")
	}

	if opts.Client.HasCredentials() {
		token, err := services.TokenService.AccessToken(ctx, opts.Client)
		if err != nil {
			log.Warn().Err(err).Msg("registry access token is not available")
		} else {
			log.Info().Time("expires_at", token.ExpiresAt).Msg("registry access token obtained")
		}
	}

	if !cfg.Server.HasServers() {
		printOptions(opts.Redacted())
		return
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var hooks []workers.RefreshHook
	if handlers.GRPC != nil {
		handlers.GRPC.Refresh(ctx)
		hooks = append(hooks, func(ctx context.Context) { handlers.GRPC.Refresh(ctx) })
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers()
	if cfg.App.RefreshInterval > 0 {
		bg.Add(workers.NewRefreshWorker(services, cfg.App.RefreshInterval, log, hooks...))
	}
	if bg.Len() == 0 {
		srv.RunServer()
		return
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	done := make(chan struct{})
	go func() {
		bg.Run(runCtx)
		close(done)
	}()

	if err := srv.Run(runCtx); err != nil {
		log.Err(err).Msg("error running server")
		stop()
	}
	<-done
}

func printOptions(opts *models.DiscoveryOptions) {
	out, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error encoding options: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
