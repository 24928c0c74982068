// Package metrics exposes the progress of a run as Prometheus collectors.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weasel/internal/ga"
)

// Collector holds the per-run metrics
type Collector struct {
	Generations  prometheus.Counter
	BestFitness  prometheus.Gauge
	MeanFitness  prometheus.Gauge
	TargetLength prometheus.Gauge
}

// NewCollector creates the collectors and registers them on reg
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "weasel_generations_total",
			Help: "Number of generations evolved",
		}),
		BestFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "weasel_best_fitness",
			Help: "Fitness of the best candidate of the latest generation",
		}),
		MeanFitness: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "weasel_mean_fitness",
			Help: "Mean fitness of the latest generation",
		}),
		TargetLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "weasel_target_length",
			Help: "Length of the target string, the maximum reachable fitness",
		}),
	}

	for _, col := range []prometheus.Collector{c.Generations, c.BestFitness, c.MeanFitness, c.TargetLength} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe records a generation report
func (c *Collector) Observe(r ga.Report) {
	c.Generations.Inc()
	c.BestFitness.Set(float64(r.BestFitness))
	c.MeanFitness.Set(r.MeanFitness)
}

// Serve binds addr and exposes gatherer at /metrics until ctx is done.
// A bind failure is returned before anything is served. The returned
// address is the bound one, which differs from addr for port 0.
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, logger *slog.Logger) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	logger.Info("serving metrics", "addr", ln.Addr().String())
	return ln.Addr(), nil
}
