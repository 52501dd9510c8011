package actor

import "errors"

var (
	// ErrInvalidMessageKind reports that a message of the abstract base kind
	// was passed to Send, Publish or WaitFor. The base kind is never
	// routable; use a concrete kind such as KindEvent or KindCommand.
	ErrInvalidMessageKind = errors.New("base message kind must not be routed directly")

	// ErrActorNotFound reports a membership lookup for an id that is not
	// currently registered.
	ErrActorNotFound = errors.New("actor not found")

	// ErrSystemClosed reports an operation attempted after Shutdown.
	ErrSystemClosed = errors.New("actor system is shut down")

	// errActorStopped is returned by enqueue when the target actor stopped
	// between registry lookup and mailbox delivery. Send absorbs it as a
	// not-found condition.
	errActorStopped = errors.New("actor stopped")
)
