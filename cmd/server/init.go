package main

import (
	"context"

	"calculator-service/internal/calculator"
	"calculator-service/internal/config"
	"calculator-service/internal/dispatcher"
	"calculator-service/internal/observability"
)

// initTelemetry initialises the OTLP providers and the domain metric
// instruments. Add new domain InitMetrics calls here as the project grows.
func initTelemetry(ctx context.Context, cfg config.Config) (observability.ShutdownFunc, error) {
	shutdown, err := observability.InitTelemetry(ctx, cfg.TelemetryEnabled)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	if err := dispatcher.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
