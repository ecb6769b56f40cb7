package dispatcher

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

var (
	queueDepth      metric.Int64UpDownCounter = noop.Int64UpDownCounter{}
	queueWait       metric.Float64Histogram   = noop.Float64Histogram{}
	rejectedCounter metric.Int64Counter       = noop.Int64Counter{}
)

// InitMetrics registers the dispatcher instruments on the global meter
// provider. Call it once at startup, after observability.InitTelemetry.
func InitMetrics() error {
	meter := otel.Meter("dispatcher")

	var err error

	queueDepth, err = meter.Int64UpDownCounter("dispatcher.queue.depth",
		metric.WithDescription("Requests waiting for the worker"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("creating queue depth counter: %w", err)
	}

	queueWait, err = meter.Float64Histogram("dispatcher.queue.wait",
		metric.WithDescription("Time a request spent queued before the worker picked it up"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.1, 1, 5, 10, 50, 100, 500),
	)
	if err != nil {
		return fmt.Errorf("creating queue wait histogram: %w", err)
	}

	rejectedCounter, err = meter.Int64Counter("dispatcher.requests.rejected",
		metric.WithDescription("Requests refused because the dispatcher was stopping or stopped"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return fmt.Errorf("creating rejected counter: %w", err)
	}

	return nil
}
