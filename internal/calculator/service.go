package calculator

import (
	"context"
	"time"

	"calculator-service/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Service routes a Request to the matching engine operation. It is the
// synchronous facade in front of the engine and never returns an error:
// every failure, including an unknown operation, is folded into the
// Response.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Calculate performs req and returns its response. Unknown operations are
// answered with ErrUnknownOperation without touching the engine.
func (s *Service) Calculate(ctx context.Context, req Request) Response {
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := req.Operation.Label()

	ctx, span := tracer.Start(ctx, "calculator."+opName,
		trace.WithAttributes(
			attribute.String("calculator.operation", req.Operation.String()),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	compute, ok := operations[req.Operation]
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "unknown operation", ErrUnknownOperation)
		return Failure(ErrUnknownOperation)
	}

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", req.A),
		attribute.Float64("calculator.operand.b", req.B),
	)

	start := time.Now()
	result, err := compute(req.A, req.B)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "calculation failed", err,
			zap.Float64("a", req.A),
			zap.Float64("b", req.B),
		)
		return Failure(err)
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculation completed",
		zap.String("operation", opName),
		zap.Float64("a", req.A),
		zap.Float64("b", req.B),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	return Success(result)
}
