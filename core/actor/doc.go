// Package actor provides an in-process, typed message-passing runtime:
// a System creates actors, routes point-to-point and broadcast messages to
// them, lets callers await the next message of a given kind, and tears
// everything down cleanly.
//
// Each actor:
//   - Has a unique, immutable id assigned at creation
//   - Processes messages strictly sequentially from its mailbox
//   - Declares, at construction, the message kinds it handles
//   - Can schedule bounded background tasks via [HandlerCtx.Schedule]
//
// # Messages
//
// Messages form a small hierarchy: the abstract base (never routable) and
// the concrete kinds [Event] and [Command]. Custom types embed one of the
// concrete kinds, or declare a kind of their own via [DeriveKind]:
//
//	type OrderPlaced struct{ actor.Base }
//
//	func (m OrderPlaced) MessageKind() actor.Kind { return actor.DeriveKind(m) }
//
// Routing a message of the abstract base kind fails synchronously with
// [ErrInvalidMessageKind].
//
// # Creating actors
//
// Actors are created through a System from handler registrations:
//
//	sys := actor.New(actor.Options{})
//	defer sys.Shutdown()
//
//	a, err := sys.ActorOf(actor.FactoryOf(
//	    actor.HandleEvent(func(hc actor.HandlerCtx, ev actor.Event) error {
//	        hc.Log().Info("observed", slog.Any("content", ev.Content()))
//	        return nil
//	    }),
//	))
//
// # Routing
//
// [System.Send] delivers to exactly one actor by id; a send to an id that
// is no longer registered completes normally and is reported through the
// configured [Sink]. [System.Publish] broadcasts to every actor handling
// the message's kind, with no ordering guarantee across actors.
//
// # Waiting
//
// [System.WaitFor] registers a one-shot waiter for a kind and blocks only
// its caller until a matching publish delivers the message. The caller's
// context carries the timeout; [System.Shutdown] cancels outstanding
// waiters with [ErrSystemClosed] instead of leaving them pending.
//
// # Handlers
//
// Handlers run with crash containment: a panic is counted, reported through
// the sink, and the actor keeps processing. Handlers may route further
// messages through their [HandlerCtx], including back into the publishing
// flow.
package actor
