package actor

import "fmt"

type (
	// HandlerFunc processes one message delivered to an actor.
	HandlerFunc func(hc HandlerCtx, msg Message) error

	// InitFunc runs once when the actor starts, before any message is
	// processed.
	InitFunc func(hc HandlerCtx) error

	// Registrar collects kind-to-handler bindings while a dispatch table is
	// built.
	Registrar interface {
		Register(kind Kind, handle HandlerFunc, init InitFunc)
	}

	// Registration binds handlers into a Registrar. Create registrations
	// with [HandleEvent], [HandleCommand], [HandleKind], [HandleMsg] or
	// [Init].
	Registration func(r Registrar)
)

// DispatchTable maps message kinds to handlers for one actor. It is built
// once at construction and read-only afterwards; routing consults it on
// every delivery.
type DispatchTable struct {
	handlers map[Kind]HandlerFunc
	inits    []InitFunc
}

// NewDispatchTable builds a dispatch table from the given registrations.
func NewDispatchTable(regs ...Registration) *DispatchTable {
	d := &DispatchTable{handlers: make(map[Kind]HandlerFunc)}
	for _, r := range regs {
		r(d)
	}
	return d
}

// Register adds a handler for a kind. Typically called indirectly via
// [HandleEvent], [HandleCommand] and friends.
func (d *DispatchTable) Register(kind Kind, handle HandlerFunc, init InitFunc) {
	if kind != "" && handle != nil {
		d.handlers[kind] = handle
	}
	if init != nil {
		d.inits = append(d.inits, init)
	}
}

// Handles reports whether the table has a handler for kind.
func (d *DispatchTable) Handles(kind Kind) bool {
	_, ok := d.handlers[kind]
	return ok
}

// Kinds returns the kinds the table dispatches.
func (d *DispatchTable) Kinds() []Kind {
	kinds := make([]Kind, 0, len(d.handlers))
	for k := range d.handlers {
		kinds = append(kinds, k)
	}
	return kinds
}

var _ Registrar = (*DispatchTable)(nil)

// HandleKind registers handle for exactly the given kind.
func HandleKind(kind Kind, handle HandlerFunc) Registration {
	return func(r Registrar) { r.Register(kind, handle, nil) }
}

// HandleEvent registers a handler for the Event kind. Messages of kind
// KindEvent that are not Event values (custom types embedding Event) are
// rebuilt from their content before the handler runs.
func HandleEvent(handle func(hc HandlerCtx, ev Event) error) Registration {
	return HandleKind(KindEvent, func(hc HandlerCtx, msg Message) error {
		if ev, ok := msg.(Event); ok {
			return handle(hc, ev)
		}
		return handle(hc, NewEvent(msg.Content()))
	})
}

// HandleCommand registers a handler for the Command kind.
func HandleCommand(handle func(hc HandlerCtx, cmd Command) error) Registration {
	return HandleKind(KindCommand, func(hc HandlerCtx, msg Message) error {
		if cmd, ok := msg.(Command); ok {
			return handle(hc, cmd)
		}
		return handle(hc, NewCommand(msg.Content()))
	})
}

// HandleMsg registers a typed handler for a custom message type T, keyed by
// T's kind. T must declare a kind of its own (see [DeriveKind]); a T that
// merely embeds Base would register for the abstract kind, which never
// routes.
func HandleMsg[T Message](handle func(hc HandlerCtx, msg T) error) Registration {
	return HandleKind(KindFor[T](), func(hc HandlerCtx, msg Message) error {
		m, ok := msg.(T)
		if !ok {
			return fmt.Errorf("kind %s delivered unexpected type %T", KindOf(msg), msg)
		}
		return handle(hc, m)
	})
}

// Init registers an initialization function called once when the actor
// starts. Use it to set up handler state or kick off background work via
// [HandlerCtx.Schedule].
func Init(init InitFunc) Registration {
	return func(r Registrar) { r.Register("", nil, init) }
}
