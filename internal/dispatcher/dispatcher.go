// Package dispatcher serialises calculations through a single background
// worker while giving callers a blocking Calculate call.
//
// Requests are queued in FIFO order under one mutex; the worker sleeps on a
// condition variable until the queue is non-empty or a stop is requested, and
// always drains the queue before it exits. Each caller waits on its own
// completion slot, so waiting never holds the shared lock.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"calculator-service/internal/calculator"
	"calculator-service/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("dispatcher")

var (
	ErrAlreadyStarted = errors.New("dispatcher: already started")
	ErrNotRunning     = errors.New("dispatcher: not running")
	ErrStopped        = errors.New("dispatcher: stopped")
)

// Calculator is the work performed for every queued request. It must turn
// every failure into a Response.
type Calculator interface {
	Calculate(ctx context.Context, req calculator.Request) calculator.Response
}

// State is the dispatcher lifecycle: Idle -> Running -> Stopping -> Stopped.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Stats is a point-in-time snapshot of a dispatcher.
type Stats struct {
	State     string `json:"state"`
	Pending   int    `json:"pending"`
	Processed uint64 `json:"processed"`
	Rejected  uint64 `json:"rejected"`
}

type queuedRequest struct {
	ctx        context.Context
	req        calculator.Request
	slot       *slot
	enqueuedAt time.Time
}

type Option func(*Dispatcher)

// WithLogger overrides the logger, which defaults to a named child of
// observability.Logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// Dispatcher owns one worker goroutine and the queue feeding it. The zero
// value is not usable; create one with New.
type Dispatcher struct {
	calc   Calculator
	logger *zap.Logger

	mu    sync.Mutex
	cond  *sync.Cond
	queue []*queuedRequest
	state State
	done  chan struct{}

	processed atomic.Uint64
	rejected  atomic.Uint64
}

func New(calc Calculator, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		calc:   calc,
		logger: observability.Logger.Named("dispatcher"),
		done:   make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start launches the worker. Requests queued before Start are processed
// first, in order. A dispatcher starts at most once.
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case StateRunning:
		return ErrAlreadyStarted
	case StateStopping, StateStopped:
		return ErrStopped
	}

	d.state = StateRunning
	go d.run()

	d.logger.Info("dispatcher started", zap.Int("pending", len(d.queue)))
	return nil
}

// Stop refuses new requests, lets the worker drain everything already
// queued and blocks until it has exited.
func (d *Dispatcher) Stop() error {
	return d.Shutdown(context.Background())
}

// Shutdown is Stop bounded by ctx. When ctx ends first it returns ctx's error;
// the worker keeps draining in the background.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	switch d.state {
	case StateIdle:
		d.mu.Unlock()
		return ErrNotRunning
	case StateStopping, StateStopped:
		d.mu.Unlock()
		return ErrStopped
	}
	d.state = StateStopping
	pending := len(d.queue)
	d.cond.Signal()
	d.mu.Unlock()

	d.logger.Info("dispatcher stopping", zap.Int("pending", pending))

	select {
	case <-d.done:
	case <-ctx.Done():
		return fmt.Errorf("wait for dispatcher drain: %w", ctx.Err())
	}

	d.logger.Info("dispatcher stopped", zap.Uint64("processed", d.processed.Load()))
	return nil
}

// Calculate queues req and blocks until the worker has answered it. It may be
// called before Start; the call then returns once the dispatcher is started
// and reaches the request. After Stop has begun it fails fast with
// ErrStopped. ctx carries trace and request-id values only: a queued request
// is never abandoned.
func (d *Dispatcher) Calculate(ctx context.Context, req calculator.Request) (calculator.Response, error) {
	ctx, requestID := observability.EnsureRequestID(ctx)

	ctx, span := tracer.Start(ctx, "dispatcher.calculate",
		trace.WithAttributes(
			attribute.String("calculator.operation", req.Operation.String()),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	q := &queuedRequest{
		ctx:        ctx,
		req:        req,
		slot:       newSlot(),
		enqueuedAt: time.Now(),
	}

	if err := d.enqueue(q); err != nil {
		d.rejected.Add(1)
		observability.RecordError(ctx, span, observability.LoggerWithTrace(ctx), rejectedCounter,
			req.Operation.Label(), "request rejected", err)
		return calculator.Response{}, err
	}

	resp := q.slot.wait()
	if resp.Failed() {
		span.SetAttributes(attribute.String("calculator.error", resp.Error))
	}
	span.SetStatus(codes.Ok, "")
	return resp, nil
}

// Running reports whether the worker is accepting and processing requests.
func (d *Dispatcher) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == StateRunning
}

func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	state, pending := d.state, len(d.queue)
	d.mu.Unlock()

	return Stats{
		State:     state.String(),
		Pending:   pending,
		Processed: d.processed.Load(),
		Rejected:  d.rejected.Load(),
	}
}

func (d *Dispatcher) enqueue(q *queuedRequest) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == StateStopping || d.state == StateStopped {
		return ErrStopped
	}

	d.queue = append(d.queue, q)
	queueDepth.Add(q.ctx, 1)
	d.cond.Signal()
	return nil
}

// run is the worker loop. It holds the lock only while touching the queue
// and the state; calculations run unlocked.
func (d *Dispatcher) run() {
	defer close(d.done)

	d.mu.Lock()
	for {
		for len(d.queue) == 0 && d.state == StateRunning {
			d.cond.Wait()
		}
		if len(d.queue) == 0 {
			d.state = StateStopped
			d.mu.Unlock()
			return
		}

		q := d.queue[0]
		d.queue[0] = nil
		d.queue = d.queue[1:]
		d.mu.Unlock()

		d.process(q)

		d.mu.Lock()
	}
}

func (d *Dispatcher) process(q *queuedRequest) {
	waited := float64(time.Since(q.enqueuedAt).Microseconds()) / 1000.0 // ms
	attrs := metric.WithAttributes(attribute.String("operation", q.req.Operation.Label()))
	queueDepth.Add(q.ctx, -1)
	queueWait.Record(q.ctx, waited, attrs)

	resp := d.calculate(q)
	d.processed.Add(1)
	q.slot.fulfill(resp)
}

// calculate runs the Calculator, converting a panic into a failed response so
// the worker survives it.
func (d *Dispatcher) calculate(q *queuedRequest) (resp calculator.Response) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("internal error: %v", r)
			d.logger.Error("calculation panicked",
				zap.String("operation", q.req.Operation.String()),
				zap.String("request_id", observability.RequestIDFromContext(q.ctx)),
				zap.Any("panic", r),
			)
			resp = calculator.Failure(err)
		}
	}()
	return d.calc.Calculate(q.ctx, q.req)
}
