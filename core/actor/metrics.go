package actor

import "github.com/codewandler/troupe-go/core/metrics"

// SystemMetrics is the instrumentation hook for the actor runtime.
// All methods must be safe for concurrent use.
type SystemMetrics interface {
	// ActorsRegistered tracks the number of currently registered actors.
	ActorsRegistered() metrics.Gauge
	// WaitersPending tracks the number of unresolved waiters.
	WaitersPending() metrics.Gauge
	// MailboxDepth tracks the mailbox backlog of one actor.
	MailboxDepth(actorID string) metrics.Gauge
	// TasksInflight tracks background tasks scheduled by one actor.
	TasksInflight(actorID string) metrics.Gauge

	// MessagesSent counts point-to-point deliveries by kind and outcome.
	MessagesSent(kind Kind, delivered bool) metrics.Counter
	// MessagesPublished counts broadcasts by kind.
	MessagesPublished(kind Kind) metrics.Counter
	// MessagesDropped counts messages discarded for lack of a handler.
	MessagesDropped(kind Kind) metrics.Counter
	// HandlerPanics counts contained handler panics by kind.
	HandlerPanics(kind Kind) metrics.Counter

	// HandlerDuration times one handler invocation.
	HandlerDuration(kind Kind) metrics.Timer
}

type nopSystemMetrics struct{}

func (nopSystemMetrics) ActorsRegistered() metrics.Gauge        { return metrics.NopGauge() }
func (nopSystemMetrics) WaitersPending() metrics.Gauge          { return metrics.NopGauge() }
func (nopSystemMetrics) MailboxDepth(string) metrics.Gauge      { return metrics.NopGauge() }
func (nopSystemMetrics) TasksInflight(string) metrics.Gauge     { return metrics.NopGauge() }
func (nopSystemMetrics) MessagesSent(Kind, bool) metrics.Counter { return metrics.NopCounter() }
func (nopSystemMetrics) MessagesPublished(Kind) metrics.Counter  { return metrics.NopCounter() }
func (nopSystemMetrics) MessagesDropped(Kind) metrics.Counter    { return metrics.NopCounter() }
func (nopSystemMetrics) HandlerPanics(Kind) metrics.Counter      { return metrics.NopCounter() }
func (nopSystemMetrics) HandlerDuration(Kind) metrics.Timer      { return metrics.NopTimer() }

// NopSystemMetrics returns a no-op SystemMetrics implementation.
func NopSystemMetrics() SystemMetrics { return nopSystemMetrics{} }
