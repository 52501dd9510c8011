package actor

import "github.com/codewandler/troupe-go/core/typename"

// Kind tags a message for dispatch-table routing. Actors register handlers
// per kind; Send and Publish match messages to handlers by exact kind.
type Kind string

const (
	// KindMessage is the abstract base kind. It is never routable: passing
	// a message of this kind to Send or Publish fails with
	// ErrInvalidMessageKind.
	KindMessage Kind = "message"

	// KindEvent tags a fact broadcast to interested actors.
	KindEvent Kind = "event"

	// KindCommand tags a directive, typically addressed to a single actor.
	KindCommand Kind = "command"
)

// Message is the payload contract for everything routed through a System.
// Only concrete kinds (Event, Command, or user-declared kinds) are valid
// wire values; the abstract base is rejected at the routing boundary.
type Message interface {
	MessageKind() Kind
	Content() any
}

// Base carries the content shared by all message kinds. Embed it, directly
// or via Event/Command, in custom message types. A bare Base is of the
// abstract kind and cannot be routed.
type Base struct {
	Data any
}

func (b Base) MessageKind() Kind { return KindMessage }
func (b Base) Content() any      { return b.Data }

// Event is a fact broadcast to every actor that handles its kind.
type Event struct{ Base }

// NewEvent returns an Event carrying content.
func NewEvent(content any) Event { return Event{Base{Data: content}} }

func (Event) MessageKind() Kind { return KindEvent }

// Command is a directive, typically addressed to one actor. Delivery is
// identical to Event; the distinction is semantic.
type Command struct{ Base }

// NewCommand returns a Command carrying content.
func NewCommand(content any) Command { return Command{Base{Data: content}} }

func (Command) MessageKind() Kind { return KindCommand }

// KindOf returns the routing kind of x. Message values report their own
// kind; anything else is keyed by its cached Go type name.
func KindOf(x any) Kind {
	if m, ok := x.(Message); ok {
		return m.MessageKind()
	}
	return Kind(typename.Of(x))
}

// KindFor returns the routing kind for type T without constructing a value.
// Used by typed handler registration.
func KindFor[T any]() Kind {
	var z T
	if m, ok := any(z).(Message); ok {
		return m.MessageKind()
	}
	return Kind(typename.For[T]())
}

// DeriveKind returns a kind derived from m's Go type name. Use it to give a
// custom message type a unique kind without choosing a tag by hand:
//
//	type UserCreated struct{ actor.Base }
//
//	func (m UserCreated) MessageKind() actor.Kind { return actor.DeriveKind(m) }
func DeriveKind(m any) Kind { return Kind(typename.Of(m)) }
