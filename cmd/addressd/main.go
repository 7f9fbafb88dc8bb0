package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"witnet_addresses/internal/app/provider"
	"witnet_addresses/internal/config"
	networkdefinition "witnet_addresses/internal/infrastructure/network/definition"
	"witnet_addresses/internal/infrastructure/restapi"
	"witnet_addresses/internal/pkg/logger"
	"witnet_addresses/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "config/config.yml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Encoding); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Fatal("addressd stopped with error", "error", err)
	}
	logger.Info("addressd stopped")
}

// ginMode keeps gin's debug output in step with the configured log level.
func ginMode(level string) string {
	if lvl, _ := logger.ParseLevel(level); lvl == zapcore.DebugLevel {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled {
		metrics.MustRegisterMetrics()
	}

	registry, source, err := provider.NewReloadableRegistry(ctx, cfg.Registry,
		logger.NewNamedAdapter("tablesource"), logger.NewNamedAdapter("registry"))
	if err != nil {
		return err
	}

	networks := networkdefinition.NewNetworkDefinitionProvider(logger.NewNamedAdapter("networks"))
	for _, def := range networks.ActiveDefinitions(registry) {
		logger.Debug("Serving network", "network", def.Identifier, "ecosystem", def.Ecosystem, "chain_id", def.ChainID)
	}

	gin.SetMode(ginMode(cfg.Logging.Level))
	handler := restapi.NewRegistryHandler(registry, networks, registry, cfg, logger.NewNamedAdapter("restapi"))
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      restapi.SetupRouter(handler, cfg),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", "address", srv.Addr, "source", source.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return registry.Run(gctx, cfg.Registry.ReloadInterval())
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
