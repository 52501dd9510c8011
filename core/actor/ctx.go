package actor

import (
	"context"
	"log/slog"
)

// HandlerCtx is passed to every handler invocation. It carries the actor's
// context and logger and lets handlers route further messages through the
// owning system.
type HandlerCtx interface {
	context.Context

	// Log returns the actor's logger.
	Log() *slog.Logger
	// ActorID returns the id of the actor the handler runs on.
	ActorID() string
	// Publish broadcasts msg through the owning system.
	Publish(ctx context.Context, msg Message) error
	// Send delivers msg to the actor with the given id.
	Send(ctx context.Context, id string, msg Message) error
	// Schedule runs f asynchronously on the actor's bounded task scheduler.
	// Scheduled tasks are awaited on removal and shutdown.
	Schedule(f TaskFunc)
}

type handlerCtx struct {
	context.Context
	log   *slog.Logger
	id    string
	sys   *System
	sched *scheduler
}

func (hc *handlerCtx) Log() *slog.Logger { return hc.log }
func (hc *handlerCtx) ActorID() string   { return hc.id }

func (hc *handlerCtx) Publish(ctx context.Context, msg Message) error {
	return hc.sys.Publish(ctx, msg)
}

func (hc *handlerCtx) Send(ctx context.Context, id string, msg Message) error {
	return hc.sys.Send(ctx, id, msg)
}

func (hc *handlerCtx) Schedule(f TaskFunc) { hc.sched.Schedule(f) }

var _ HandlerCtx = (*handlerCtx)(nil)
