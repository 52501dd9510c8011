package actor

import "log/slog"

// Op identifies the operation a Notice originates from.
type Op string

const (
	OpSend     Op = "send"
	OpHandle   Op = "handle"
	OpShutdown Op = "shutdown"
)

// Notice is a routing diagnostic. Notices report conditions the system
// absorbs rather than returns to the caller, such as a send to an
// unregistered actor.
type Notice struct {
	Op      Op
	ActorID string
	Kind    Kind
	Text    string
}

// Sink consumes diagnostics emitted by a System. Implementations must be
// safe for concurrent use. Tests typically substitute a capturing
// implementation; the default logs through slog.
type Sink interface {
	Record(n Notice)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(n Notice)

func (f SinkFunc) Record(n Notice) { f(n) }

// LogSink records notices through a slog logger.
type LogSink struct {
	Log *slog.Logger
}

func (s LogSink) Record(n Notice) {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}
	log.Warn(n.Text,
		slog.String("op", string(n.Op)),
		slog.String("actor", n.ActorID),
		slog.String("kind", string(n.Kind)),
	)
}
