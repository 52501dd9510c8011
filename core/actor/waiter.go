package actor

import "sync"

// waitResult is the single resolution of a waiter: either the matching
// message or a cancellation error, never both.
type waitResult struct {
	msg Message
	err error
}

// waiter is a one-shot completion handle for the next message of a kind.
// It is resolved at most once: by a matching publish, or by shutdown with
// ErrSystemClosed. A waiter whose caller context expires first is dropped
// from the registry unresolved.
type waiter struct {
	kind Kind
	done chan waitResult
	once sync.Once
}

func newWaiter(kind Kind) *waiter {
	return &waiter{kind: kind, done: make(chan waitResult, 1)}
}

func (w *waiter) resolve(msg Message) {
	w.once.Do(func() { w.done <- waitResult{msg: msg} })
}

func (w *waiter) cancel(err error) {
	w.once.Do(func() { w.done <- waitResult{err: err} })
}
