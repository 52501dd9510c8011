package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/troupe-go/core/actor"
	"github.com/codewandler/troupe-go/core/metrics"
)

// systemMetrics implements actor.SystemMetrics using Prometheus.
type systemMetrics struct {
	actorsRegistered prometheus.Gauge
	waitersPending   prometheus.Gauge
	mailboxDepth     *prometheus.GaugeVec
	tasksInflight    *prometheus.GaugeVec

	messagesSent      *prometheus.CounterVec
	messagesPublished *prometheus.CounterVec
	messagesDropped   *prometheus.CounterVec
	handlerPanics     *prometheus.CounterVec

	handlerDuration *prometheus.HistogramVec
}

// NewSystemMetrics creates a Prometheus implementation of
// actor.SystemMetrics and registers all collectors with reg.
func NewSystemMetrics(reg prometheus.Registerer) actor.SystemMetrics {
	m := &systemMetrics{
		actorsRegistered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "troupe_actors_registered",
			Help: "Number of currently registered actors",
		}),

		waitersPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "troupe_waiters_pending",
			Help: "Number of unresolved one-shot waiters",
		}),

		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "troupe_mailbox_depth",
			Help: "Current mailbox queue depth",
		}, []string{"actor_id"}),

		tasksInflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "troupe_tasks_inflight",
			Help: "Number of scheduled background tasks in flight",
		}, []string{"actor_id"}),

		messagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "troupe_messages_sent_total",
			Help: "Total number of point-to-point sends",
		}, []string{"kind", "delivered"}),

		messagesPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "troupe_messages_published_total",
			Help: "Total number of broadcasts",
		}, []string{"kind"}),

		messagesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "troupe_messages_dropped_total",
			Help: "Total number of messages discarded for lack of a handler",
		}, []string{"kind"}),

		handlerPanics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "troupe_handler_panics_total",
			Help: "Total number of contained handler panics",
		}, []string{"kind"}),

		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "troupe_handler_duration_seconds",
			Help:    "Handler execution time in seconds",
			Buckets: defaultBuckets,
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.actorsRegistered,
		m.waitersPending,
		m.mailboxDepth,
		m.tasksInflight,
		m.messagesSent,
		m.messagesPublished,
		m.messagesDropped,
		m.handlerPanics,
		m.handlerDuration,
	)

	return m
}

func (m *systemMetrics) ActorsRegistered() metrics.Gauge {
	return gauge{g: m.actorsRegistered}
}

func (m *systemMetrics) WaitersPending() metrics.Gauge {
	return gauge{g: m.waitersPending}
}

func (m *systemMetrics) MailboxDepth(actorID string) metrics.Gauge {
	return gauge{g: m.mailboxDepth.WithLabelValues(actorID)}
}

func (m *systemMetrics) TasksInflight(actorID string) metrics.Gauge {
	return gauge{g: m.tasksInflight.WithLabelValues(actorID)}
}

func (m *systemMetrics) MessagesSent(kind actor.Kind, delivered bool) metrics.Counter {
	return counter{c: m.messagesSent.WithLabelValues(string(kind), boolToStr(delivered))}
}

func (m *systemMetrics) MessagesPublished(kind actor.Kind) metrics.Counter {
	return counter{c: m.messagesPublished.WithLabelValues(string(kind))}
}

func (m *systemMetrics) MessagesDropped(kind actor.Kind) metrics.Counter {
	return counter{c: m.messagesDropped.WithLabelValues(string(kind))}
}

func (m *systemMetrics) HandlerPanics(kind actor.Kind) metrics.Counter {
	return counter{c: m.handlerPanics.WithLabelValues(string(kind))}
}

func (m *systemMetrics) HandlerDuration(kind actor.Kind) metrics.Timer {
	return newTimer(m.handlerDuration.WithLabelValues(string(kind)))
}

var _ actor.SystemMetrics = (*systemMetrics)(nil)
