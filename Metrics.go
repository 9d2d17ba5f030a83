package main

import (
	"dependencySheet/contracts"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

type Metrics struct {
	registry           *prometheus.Registry
	cellSets           *prometheus.CounterVec
	cellSetDuration    prometheus.Histogram
	webhooksDispatched prometheus.Counter
	sequenceAppends    prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cellSets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sheet_cell_sets_total",
			Help: "Cell assignments by result (ok, cycle, parse, undefined, out_of_range, error)",
		}, []string{"result"}),
		cellSetDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sheet_cell_set_duration_seconds",
			Help:    "Time spent evaluating and propagating a cell assignment",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		webhooksDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sheet_webhooks_dispatched_total",
			Help: "Changed cells handed to the webhook dispatcher",
		}),
		sequenceAppends: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sequence_appends_total",
			Help: "Numbers appended to observed sequences",
		}),
	}

	m.registry.MustRegister(m.cellSets, m.cellSetDuration, m.webhooksDispatched, m.sequenceAppends)
	return m
}

func (m *Metrics) ObserveCellSet(started time.Time, err error) {
	m.cellSetDuration.Observe(time.Since(started).Seconds())
	m.cellSets.WithLabelValues(setResultLabel(err)).Inc()
}

func (m *Metrics) AddWebhooksDispatched(count int) {
	m.webhooksDispatched.Add(float64(count))
}

func (m *Metrics) IncSequenceAppends() {
	m.sequenceAppends.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func setResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, contracts.CycleError):
		return "cycle"
	case errors.Is(err, contracts.ParseError):
		return "parse"
	case errors.Is(err, contracts.UndefinedReferenceError):
		return "undefined"
	case errors.Is(err, contracts.OutOfRangeError):
		return "out_of_range"
	default:
		return "error"
	}
}
