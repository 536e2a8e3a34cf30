// Package metrics exposes Prometheus instrumentation for the bot processes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketbot"

// Metrics groups the collectors shared by the webhook and notifier processes.
type Metrics struct {
	registry *prometheus.Registry

	UpdatesReceived   *prometheus.CounterVec
	UpdatesDuplicated prometheus.Counter
	CommandsHandled   *prometheus.CounterVec
	EventsPublished   *prometheus.CounterVec
	EventsProcessed   *prometheus.CounterVec

	MessagesSent      *prometheus.CounterVec
	MessagesFailed    *prometheus.CounterVec
	BroadcastBatches  *prometheus.CounterVec
	BroadcastDuration *prometheus.HistogramVec
}

// New creates a registry with process and Go runtime collectors plus the
// application collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		UpdatesReceived: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "updates_received_total",
				Help:      "Total number of chat updates received by type",
			},
			[]string{"type"},
		),
		UpdatesDuplicated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "updates_duplicated_total",
				Help:      "Total number of redelivered updates that were skipped",
			},
		),
		CommandsHandled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_handled_total",
				Help:      "Total number of commands and callbacks handled",
			},
			[]string{"command"},
		),
		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Total number of marketplace events accepted for delivery",
			},
			[]string{"kind"},
		),
		EventsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_processed_total",
				Help:      "Total number of marketplace events processed by outcome",
			},
			[]string{"kind", "outcome"},
		),
		MessagesSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_sent_total",
				Help:      "Total number of chat messages delivered by audience",
			},
			[]string{"audience"},
		),
		MessagesFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_failed_total",
				Help:      "Total number of chat messages that could not be delivered",
			},
			[]string{"audience"},
		),
		BroadcastBatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "broadcast_batches_total",
				Help:      "Total number of broadcast batches dispatched",
			},
			[]string{"audience"},
		),
		BroadcastDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "broadcast_duration_seconds",
				Help:      "Wall time of a broadcast including batch cool-downs",
				Buckets:   []float64{0.1, 0.5, 1, 5, 30, 60, 300, 900, 1800},
			},
			[]string{"audience"},
		),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry lets infrastructure packages register their own collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
