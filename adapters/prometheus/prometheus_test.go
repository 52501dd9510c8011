package prometheus

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/troupe-go/core/actor"
)

func TestNewSystemMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSystemMetrics(reg)
	require.NotNil(t, m)

	m.ActorsRegistered().Set(3)
	m.WaitersPending().Set(1)
	m.MailboxDepth("actor-1").Set(7)
	m.TasksInflight("actor-1").Inc()
	m.TasksInflight("actor-1").Dec()

	m.MessagesSent(actor.KindEvent, true).Inc()
	m.MessagesSent(actor.KindEvent, false).Inc()
	m.MessagesPublished(actor.KindEvent).Add(2)
	m.MessagesDropped(actor.KindCommand).Inc()
	m.HandlerPanics(actor.KindEvent).Inc()

	timer := m.HandlerDuration(actor.KindEvent)
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	assert.Equal(t, float64(3), testutil.ToFloat64(m.(*systemMetrics).actorsRegistered))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.(*systemMetrics).messagesPublished.WithLabelValues(string(actor.KindEvent))))
}

func TestNewSystemMetrics_wired(t *testing.T) {
	reg := prometheus.NewRegistry()
	sm := NewSystemMetrics(reg).(*systemMetrics)

	sys := actor.New(actor.Options{
		Context: context.Background(),
		Metrics: sm,
	})

	_, err := sys.ActorOf(actor.FactoryOf(
		actor.HandleEvent(func(hc actor.HandlerCtx, ev actor.Event) error {
			return nil
		}),
	))
	require.NoError(t, err)

	require.NoError(t, sys.Publish(context.Background(), actor.NewEvent("hi")))

	assert.Equal(t, float64(1), testutil.ToFloat64(sm.actorsRegistered))
	assert.Equal(t, float64(1), testutil.ToFloat64(sm.messagesPublished.WithLabelValues(string(actor.KindEvent))))

	require.NoError(t, sys.Shutdown())
	assert.Equal(t, float64(0), testutil.ToFloat64(sm.actorsRegistered))
}
