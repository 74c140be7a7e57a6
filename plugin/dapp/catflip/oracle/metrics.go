// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catflip_oracle"

// Metrics oracle counters
type Metrics struct {
	registry *prometheus.Registry

	Polls     prometheus.Counter
	Fulfilled *prometheus.CounterVec
	Failures  *prometheus.CounterVec
	Pending   prometheus.Gauge

	lastPoll int64
}

// NewMetrics 每个实例独立的 registry，测试里可以多次创建
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Polls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Number of pending round polls.",
		}),
		Fulfilled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fulfilled_total",
			Help:      "Fulfill transactions sent, by outcome.",
		}, []string{"outcome"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failures by stage.",
		}, []string{"stage"}),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_rounds",
			Help:      "Pending rounds seen on the last poll.",
		}),
	}
	m.registry.MustRegister(m.Polls, m.Fulfilled, m.Failures, m.Pending)
	return m
}

func (m *Metrics) markPoll() {
	m.Polls.Inc()
	atomic.StoreInt64(&m.lastPoll, time.Now().Unix())
}

// Healthy 最近 maxAge 内成功轮询过
func (m *Metrics) Healthy(maxAge time.Duration) bool {
	last := atomic.LoadInt64(&m.lastPoll)
	return last > 0 && time.Since(time.Unix(last, 0)) <= maxAge
}

// Handler /metrics and /healthz
func (m *Metrics) Handler(maxAge time.Duration) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if !m.Healthy(maxAge) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("stale"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Serve 阻塞直到 ctx 取消
func (m *Metrics) Serve(ctx context.Context, addr string, maxAge time.Duration) error {
	srv := &http.Server{Addr: addr, Handler: m.Handler(maxAge), ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
