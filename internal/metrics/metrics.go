// Package metrics exposes Prometheus instrumentation for sync operations.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-stats-sync/internal/logger"
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "stats_sync"

// Outcome label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder holds the operation metrics on its own registry. A nil *Recorder
// records nothing.
type Recorder struct {
	registry *prometheus.Registry

	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	inflight   *prometheus.GaugeVec
}

// NewRecorder creates a Recorder and registers its collectors together with
// the Go runtime collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Resolved sync operations by operation and result.",
		}, []string{"operation", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall time from invocation to resolution of a sync operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "operations_in_flight",
			Help:      "Sync operations started but not yet resolved.",
		}, []string{"operation"}),
	}

	r.registry.MustRegister(r.operations, r.latency, r.inflight, collectors.NewGoCollector())
	return r
}

// Start marks op as in flight and returns the function that resolves it.
// The returned function must be called exactly once.
func (r *Recorder) Start(op models.Operation) func(success bool) {
	if r == nil {
		return func(bool) {}
	}

	started := time.Now()
	gauge := r.inflight.WithLabelValues(string(op))
	gauge.Inc()

	return func(success bool) {
		gauge.Dec()
		r.latency.WithLabelValues(string(op)).Observe(time.Since(started).Seconds())

		result := ResultFailure
		if success {
			result = ResultSuccess
		}
		r.operations.WithLabelValues(string(op), result).Inc()
	}
}

// Registry returns the registry the recorder's collectors live on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string, log *logger.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("func", "Recorder.Serve").Str("addr", addr).Msg("metrics endpoint listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
