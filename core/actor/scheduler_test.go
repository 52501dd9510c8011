package actor

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestScheduler_runsTasks(t *testing.T) {
	sys := newTestSystem(t, Options{})

	done := make(chan int, 1)
	a, err := sys.ActorOf(FactoryOf(
		HandleCommand(func(hc HandlerCtx, cmd Command) error {
			hc.Schedule(func() { done <- cmd.Content().(int) })
			return nil
		}),
	))
	require.NoError(t, err)

	require.NoError(t, sys.Send(context.Background(), a.ID(), NewCommand(7)))

	select {
	case v := <-done:
		require.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("scheduled task never ran")
	}
}

func TestScheduler_boundedConcurrency(t *testing.T) {
	sys := newTestSystem(t, Options{MaxConcurrentTasks: 2})

	var (
		active  atomic.Int32
		overMax atomic.Bool
		ran     atomic.Int32
	)

	a, err := sys.ActorOf(FactoryOf(
		HandleCommand(func(hc HandlerCtx, cmd Command) error {
			for i := 0; i < 10; i++ {
				hc.Schedule(func() {
					if active.Add(1) > 2 {
						overMax.Store(true)
					}
					time.Sleep(time.Millisecond)
					active.Add(-1)
					ran.Add(1)
				})
			}
			return nil
		}),
	))
	require.NoError(t, err)

	require.NoError(t, sys.Send(context.Background(), a.ID(), NewCommand("burst")))

	require.Eventually(t, func() bool { return ran.Load() == 10 }, 5*time.Second, time.Millisecond)
	require.False(t, overMax.Load(), "scheduler exceeded MaxConcurrentTasks")
}

func TestScheduler_shutdownWaitsForTasks(t *testing.T) {
	sys := New(Options{Context: context.Background()})

	var finished atomic.Bool
	started := make(chan struct{})

	a, err := sys.ActorOf(FactoryOf(
		HandleCommand(func(hc HandlerCtx, cmd Command) error {
			hc.Schedule(func() {
				close(started)
				time.Sleep(50 * time.Millisecond)
				finished.Store(true)
			})
			return nil
		}),
	))
	require.NoError(t, err)

	require.NoError(t, sys.Send(context.Background(), a.ID(), NewCommand("slow")))
	<-started

	require.NoError(t, sys.Shutdown())
	require.True(t, finished.Load(), "shutdown returned before scheduled task finished")
}

func TestScheduler_taskPanicContained(t *testing.T) {
	sys := newTestSystem(t, Options{})

	after := make(chan struct{}, 1)
	a, err := sys.ActorOf(FactoryOf(
		HandleCommand(func(hc HandlerCtx, cmd Command) error {
			hc.Schedule(func() { panic("task blew up") })
			hc.Schedule(func() { after <- struct{}{} })
			return nil
		}),
	))
	require.NoError(t, err)

	require.NoError(t, sys.Send(context.Background(), a.ID(), NewCommand("go")))

	select {
	case <-after:
	case <-time.After(time.Second):
		t.Fatal("second task did not run after panic in first")
	}
}
