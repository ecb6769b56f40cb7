package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"calculator-service/internal/dispatcher"
)

// newRegistry returns a registry with the runtime collectors and gauges that
// read the dispatcher's stats at scrape time.
func newRegistry(status StatusSource) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "dispatcher_queue_pending",
			Help: "Requests waiting for the worker.",
		}, func() float64 {
			return float64(status.Stats().Pending)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "dispatcher_requests_processed_total",
			Help: "Requests answered by the worker.",
		}, func() float64 {
			return float64(status.Stats().Processed)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "dispatcher_requests_rejected_total",
			Help: "Requests refused after shutdown began.",
		}, func() float64 {
			return float64(status.Stats().Rejected)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "dispatcher_running",
			Help: "1 while the dispatcher accepts and processes requests.",
		}, func() float64 {
			if status.Stats().State == dispatcher.StateRunning.String() {
				return 1
			}
			return 0
		}),
	)

	return reg
}
