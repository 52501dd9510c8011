package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Factory constructs the dispatch table for one actor. It runs before the
// actor becomes reachable: a factory error leaves no registration behind.
type Factory func() (*DispatchTable, error)

// FactoryOf returns a Factory that builds its dispatch table from the given
// registrations and never fails.
func FactoryOf(regs ...Registration) Factory {
	return func() (*DispatchTable, error) {
		return NewDispatchTable(regs...), nil
	}
}

// Options configures a System. The zero value is usable; every field has a
// default.
type Options struct {
	// Context bounds the lifetime of the system and every actor it creates.
	Context context.Context
	// Logger receives structured runtime logs. Defaults to slog.Default().
	Logger *slog.Logger
	// Sink receives routing diagnostics such as sends to unknown actors.
	// Defaults to a LogSink on Logger.
	Sink Sink
	// Metrics instruments the runtime. Defaults to a no-op implementation.
	Metrics SystemMetrics
	// MailboxSize is the per-actor mailbox buffer. Defaults to 1024.
	MailboxSize int
	// MaxConcurrentTasks caps background tasks per actor scheduled through
	// HandlerCtx.Schedule. Defaults to 32.
	MaxConcurrentTasks int
}

// System is the registry, router and lifecycle owner for the actors it
// creates. It delivers messages point-to-point (Send) or by broadcast
// (Publish), resolves one-shot waiters (WaitFor), and tears everything down
// (Shutdown). A System is owned by its caller; there is no process-wide
// instance.
type System struct {
	ctx    context.Context
	cancel context.CancelFunc

	log     *slog.Logger
	sink    Sink
	metrics SystemMetrics

	mailboxSize int
	maxTasks    int

	mu      sync.RWMutex
	actors  map[string]*Actor
	waiters map[Kind][]*waiter
	closed  bool
}

// New creates a System. Call Shutdown when done with it.
func New(opts Options) *System {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sink == nil {
		opts.Sink = LogSink{Log: opts.Logger}
	}
	if opts.Metrics == nil {
		opts.Metrics = NopSystemMetrics()
	}
	if opts.MailboxSize <= 0 {
		opts.MailboxSize = 1024
	}
	if opts.MaxConcurrentTasks <= 0 {
		opts.MaxConcurrentTasks = 32
	}

	ctx, cancel := context.WithCancel(opts.Context)

	return &System{
		ctx:         ctx,
		cancel:      cancel,
		log:         opts.Logger,
		sink:        opts.Sink,
		metrics:     opts.Metrics,
		mailboxSize: opts.MailboxSize,
		maxTasks:    opts.MaxConcurrentTasks,
		actors:      make(map[string]*Actor),
		waiters:     make(map[Kind][]*waiter),
	}
}

// ActorOf constructs one actor via factory, assigns it a fresh unique id,
// registers it and returns its handle. A factory or init failure propagates
// and the id is never published to the registry.
func (s *System) ActorOf(factory Factory) (*Actor, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	table, err := factory()
	if err != nil {
		return nil, fmt.Errorf("actor factory failed: %w", err)
	}
	if table == nil {
		return nil, errors.New("actor factory returned no dispatch table")
	}

	id := "actor-" + gonanoid.Must(12)
	actx, cancel := context.WithCancel(s.ctx)
	log := s.log.With(slog.String("actor", id))

	a := &Actor{
		id:      id,
		system:  s,
		table:   table,
		mailbox: make(chan Message, s.mailboxSize),
		log:     log,
		ctx:     actx,
		cancel:  cancel,
		done:    make(chan struct{}),
		depth:   s.metrics.MailboxDepth(id),
	}
	a.sched = newScheduler(actx, log, s.maxTasks, s.metrics.TasksInflight(id))

	hc := &handlerCtx{Context: actx, log: log, id: id, sys: s, sched: a.sched}

	// Inits run before the actor becomes reachable, so an init failure
	// leaves no partial registration behind.
	for _, init := range table.inits {
		if err := init(hc); err != nil {
			cancel()
			return nil, fmt.Errorf("actor init failed: %w", err)
		}
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cancel()
		return nil, ErrSystemClosed
	}
	s.actors[id] = a
	count := len(s.actors)
	s.mu.Unlock()

	s.metrics.ActorsRegistered().Set(float64(count))
	go a.loop(hc)

	log.Debug("actor registered", slog.Any("kinds", table.Kinds()))
	return a, nil
}

// ActorsOf is the batch form of ActorOf. The returned slice preserves the
// order of factories. The call is all-or-nothing: when any factory fails,
// actors already spawned by this call are removed again and the error is
// returned.
func (s *System) ActorsOf(factories ...Factory) ([]*Actor, error) {
	actors := make([]*Actor, 0, len(factories))
	for i, factory := range factories {
		a, err := s.ActorOf(factory)
		if err != nil {
			for _, spawned := range actors {
				s.RemoveActor(spawned.ID())
			}
			return nil, fmt.Errorf("factory %d: %w", i, err)
		}
		actors = append(actors, a)
	}
	return actors, nil
}

// Send delivers msg to exactly the actor with the given id, invoking its
// matching handler if present. A send to an unregistered id is not an
// error: the call completes and the condition is recorded through the sink.
// Sending a message of the abstract base kind fails with
// ErrInvalidMessageKind.
func (s *System) Send(ctx context.Context, id string, msg Message) error {
	if err := s.check(); err != nil {
		return err
	}
	kind := msg.MessageKind()
	if kind == KindMessage {
		return fmt.Errorf("%w: cannot send %T", ErrInvalidMessageKind, msg)
	}

	s.mu.RLock()
	a, ok := s.actors[id]
	s.mu.RUnlock()
	if !ok {
		s.recordNotFound(id, kind)
		return nil
	}

	if !a.table.Handles(kind) {
		// Unrecognized kinds are a no-op for the recipient.
		s.metrics.MessagesDropped(kind).Inc()
		return nil
	}

	if err := a.enqueue(ctx, msg); err != nil {
		if errors.Is(err, errActorStopped) {
			// Removed between lookup and delivery: same as not found.
			s.recordNotFound(id, kind)
			return nil
		}
		return err
	}

	s.metrics.MessagesSent(kind, true).Inc()
	return nil
}

// Publish broadcasts msg to every registered actor whose dispatch table
// matches its kind and resolves every pending waiter for that kind. The
// kind check happens before any delivery; publishing a message of the
// abstract base kind fails with ErrInvalidMessageKind and nothing is
// delivered. Relative delivery order across actors is not guaranteed.
func (s *System) Publish(ctx context.Context, msg Message) error {
	if err := s.check(); err != nil {
		return err
	}
	kind := msg.MessageKind()
	if kind == KindMessage {
		return fmt.Errorf("%w: cannot publish %T", ErrInvalidMessageKind, msg)
	}

	s.mu.RLock()
	targets := make([]*Actor, 0, len(s.actors))
	for _, a := range s.actors {
		if a.table.Handles(kind) {
			targets = append(targets, a)
		}
	}
	s.mu.RUnlock()

	s.resolveWaiters(kind, msg)

	for _, a := range targets {
		if err := a.enqueue(ctx, msg); err != nil {
			if errors.Is(err, errActorStopped) {
				// Removed while the broadcast was in flight.
				continue
			}
			return err
		}
	}

	s.metrics.MessagesPublished(kind).Inc()
	s.log.Debug("published",
		slog.String("kind", string(kind)),
		slog.Int("actors", len(targets)),
	)
	return nil
}

// WaitFor registers a one-shot waiter for kind and blocks the calling
// goroutine until a matching Publish resolves it with that exact message,
// the caller's ctx expires (the timeout hook), or Shutdown cancels it with
// ErrSystemClosed. Other actors and waiters keep processing meanwhile.
// Every waiter pending at the instant of a matching publish resolves; the
// fan-out mirrors Publish's broadcast to actors.
func (s *System) WaitFor(ctx context.Context, kind Kind) (Message, error) {
	if kind == KindMessage {
		return nil, fmt.Errorf("%w: cannot wait for the abstract base kind", ErrInvalidMessageKind)
	}

	w := newWaiter(kind)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSystemClosed
	}
	s.waiters[kind] = append(s.waiters[kind], w)
	pending := s.pendingWaitersLocked()
	s.mu.Unlock()

	s.metrics.WaitersPending().Set(float64(pending))

	select {
	case <-ctx.Done():
		s.dropWaiter(w)
		return nil, ctx.Err()
	case res := <-w.done:
		return res.msg, res.err
	}
}

// RemoveActor deregisters and stops the actor with the given id, waiting
// for its in-flight handler and scheduled tasks to finish. Removing an id
// that is not registered is a no-op. Must not be called from the removed
// actor's own handler.
func (s *System) RemoveActor(id string) {
	s.mu.Lock()
	a, ok := s.actors[id]
	if ok {
		delete(s.actors, id)
	}
	count := len(s.actors)
	s.mu.Unlock()
	if !ok {
		return
	}

	a.stop()
	s.metrics.ActorsRegistered().Set(float64(count))
	s.log.Debug("actor removed", slog.String("actor", id))
}

// Actor returns the registered actor with the given id, or an error
// wrapping ErrActorNotFound.
func (s *System) Actor(id string) (*Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.actors[id]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrActorNotFound, id)
}

// Len returns the number of currently registered actors.
func (s *System) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actors)
}

// Shutdown cancels every pending waiter with ErrSystemClosed, stops all
// actors and waits for their loops and scheduled tasks, and makes every
// subsequent ActorOf, Send, Publish and WaitFor fail with ErrSystemClosed.
// Calling Shutdown again returns nil without further effect.
func (s *System) Shutdown() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	actors := make([]*Actor, 0, len(s.actors))
	for _, a := range s.actors {
		actors = append(actors, a)
	}
	var pending []*waiter
	for _, ws := range s.waiters {
		pending = append(pending, ws...)
	}
	clear(s.actors)
	clear(s.waiters)
	s.mu.Unlock()

	for _, w := range pending {
		w.cancel(ErrSystemClosed)
	}
	s.metrics.WaitersPending().Set(0)

	s.cancel()
	for _, a := range actors {
		<-a.done
		a.sched.Wait()
	}
	s.metrics.ActorsRegistered().Set(0)

	s.sink.Record(Notice{
		Op:   OpShutdown,
		Text: fmt.Sprintf("Actor system stopped (%d actors, %d waiters cancelled).", len(actors), len(pending)),
	})
	s.log.Info("actor system shut down",
		slog.Int("actors", len(actors)),
		slog.Int("waiters_cancelled", len(pending)),
	)
	return nil
}

// ---- internals ----

func (s *System) check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrSystemClosed
	}
	return nil
}

func (s *System) recordNotFound(id string, kind Kind) {
	s.metrics.MessagesSent(kind, false).Inc()
	s.sink.Record(Notice{
		Op:      OpSend,
		ActorID: id,
		Kind:    kind,
		Text:    fmt.Sprintf("Actor %s not found.", id),
	})
}

// resolveWaiters hands msg to every waiter pending for kind and removes
// them from the registry in one step.
func (s *System) resolveWaiters(kind Kind, msg Message) {
	s.mu.Lock()
	matched := s.waiters[kind]
	delete(s.waiters, kind)
	pending := s.pendingWaitersLocked()
	s.mu.Unlock()

	if len(matched) == 0 {
		return
	}
	for _, w := range matched {
		w.resolve(msg)
	}
	s.metrics.WaitersPending().Set(float64(pending))
}

func (s *System) dropWaiter(w *waiter) {
	s.mu.Lock()
	ws := s.waiters[w.kind]
	for i, cur := range ws {
		if cur == w {
			s.waiters[w.kind] = append(ws[:i], ws[i+1:]...)
			break
		}
	}
	if len(s.waiters[w.kind]) == 0 {
		delete(s.waiters, w.kind)
	}
	pending := s.pendingWaitersLocked()
	s.mu.Unlock()

	s.metrics.WaitersPending().Set(float64(pending))
}

func (s *System) pendingWaitersLocked() int {
	n := 0
	for _, ws := range s.waiters {
		n += len(ws)
	}
	return n
}
