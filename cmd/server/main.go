package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	"calculator-service/internal/calculator"
	"calculator-service/internal/config"
	"calculator-service/internal/dispatcher"
	"calculator-service/internal/observability"
	"calculator-service/internal/server"
)

func main() {

	ctx := context.Background()

	// Config
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}

	// Tracing, metrics, log export
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		panic(err)
	}

	// Dispatcher
	d := dispatcher.New(calculator.NewService())
	if err := d.Start(); err != nil {
		panic(err)
	}

	// Ops endpoints
	var srv *http.Server
	if cfg.OpsAddr != "" {
		srv = &http.Server{
			Addr:    cfg.OpsAddr,
			Handler: server.NewRouter(d),
		}

		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				observability.Logger.Fatal("ops server failed", zap.Error(err))
			}
		}()
	}

	observability.Logger.Info("calculator service started",
		zap.String("ops_addr", cfg.OpsAddr),
		zap.Bool("telemetry", cfg.TelemetryEnabled),
	)

	exitCode := <-waitForShutdown(cfg, d, srv, telemetryShutdown)

	observability.Logger.Info("calculator service stopped", zap.Int("exit_code", exitCode))
	observability.SyncLogger()
	os.Exit(exitCode)
}

// waitForShutdown blocks on SIGINT/SIGTERM, then drains the dispatcher and
// closes the ops server and telemetry within cfg.ShutdownTimeout.
func waitForShutdown(cfg config.Config, d *dispatcher.Dispatcher, srv *http.Server, telemetryShutdown observability.ShutdownFunc) <-chan int {
	return gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"dispatcher": func(ctx context.Context) error {
				observability.Logger.Info("shutting down", zap.Int("pending", d.Stats().Pending))
				return d.Shutdown(ctx)
			},
			"ops-server": func(ctx context.Context) error {
				if srv == nil {
					return nil
				}
				return srv.Shutdown(ctx)
			},
			"telemetry": func(ctx context.Context) error {
				return telemetryShutdown(ctx)
			},
		},
	)
}
