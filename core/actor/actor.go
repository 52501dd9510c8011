package actor

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/codewandler/troupe-go/core/metrics"
)

// Actor is a unit of sequential message processing owned by a System. Its
// id is unique for the lifetime of the system and never reused. An actor
// processes one message at a time: the runtime never runs two handler
// invocations for the same actor concurrently, while handlers of different
// actors interleave freely.
type Actor struct {
	id      string
	system  *System
	table   *DispatchTable
	mailbox chan Message
	log     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	sched *scheduler
	depth metrics.Gauge
}

// ID returns the actor's unique id.
func (a *Actor) ID() string { return a.id }

// Done is closed when the actor's processing loop has stopped.
func (a *Actor) Done() <-chan struct{} { return a.done }

// Handles reports whether the actor's dispatch table matches kind.
func (a *Actor) Handles(kind Kind) bool { return a.table.Handles(kind) }

// Kinds returns the message kinds the actor dispatches.
func (a *Actor) Kinds() []Kind { return a.table.Kinds() }

// enqueue delivers msg into the mailbox, blocking until enqueued, the
// caller's ctx expires, or the actor stops.
func (a *Actor) enqueue(ctx context.Context, msg Message) error {
	select {
	case <-a.ctx.Done():
		return errActorStopped
	case <-ctx.Done():
		return fmt.Errorf("enqueue failed: %w", ctx.Err())
	case a.mailbox <- msg:
		a.depth.Set(float64(len(a.mailbox)))
		return nil
	}
}

func (a *Actor) loop(hc *handlerCtx) {
	defer close(a.done)

	for {
		select {
		case <-a.ctx.Done():
			return
		case msg := <-a.mailbox:
			a.depth.Set(float64(len(a.mailbox)))
			a.handle(hc, msg)
		}
	}
}

// handle runs the matching handler with crash containment: a panicking
// handler is reported and the actor keeps processing subsequent messages.
func (a *Actor) handle(hc HandlerCtx, msg Message) {
	kind := msg.MessageKind()
	h, ok := a.table.handlers[kind]
	if !ok {
		a.system.metrics.MessagesDropped(kind).Inc()
		return
	}

	defer a.system.metrics.HandlerDuration(kind).ObserveDuration()
	defer func() {
		if r := recover(); r != nil {
			a.system.metrics.HandlerPanics(kind).Inc()
			a.log.Error("handler panicked",
				slog.Any("recovered", r),
				slog.String("kind", string(kind)),
				slog.String("stack", string(debug.Stack())),
			)
			a.system.sink.Record(Notice{
				Op:      OpHandle,
				ActorID: a.id,
				Kind:    kind,
				Text:    fmt.Sprintf("Handler for %s panicked: %v", kind, r),
			})
		}
	}()

	if err := h(hc, msg); err != nil {
		a.log.Error("handler failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

// stop cancels the actor's context and waits for the processing loop and
// all scheduled background tasks to finish.
func (a *Actor) stop() {
	a.cancel()
	<-a.done
	a.sched.Wait()
}
