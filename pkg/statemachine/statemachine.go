package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard[S, E ~string] func(ctx context.Context, from S, event E) bool

// Observer is notified after every successful transition.
// Observers run outside the machine lock, so they may read Current.
type Observer[S, E ~string] func(ctx context.Context, from, to S, event E)

type transitionKey[S, E ~string] struct {
	from  S
	event E
}

type transition[S, E ~string] struct {
	to     S
	guards []Guard[S, E]
}

// Machine is a thread-safe finite state machine over string-like states and events.
// Transitions are looked up by (from, event); the first one whose guards all
// pass wins, which allows guard-based branching in declaration order.
type Machine[S, E ~string] struct {
	mu          sync.Mutex
	initial     S
	current     S
	transitions map[transitionKey[S, E]][]transition[S, E]
	observers   []Observer[S, E]
}

// Option configures a machine during construction.
type Option[S, E ~string] func(*Machine[S, E]) error

// New creates a machine in the initial state.
func New[S, E ~string](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	if initial == "" {
		return nil, ErrEmptyState
	}

	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[transitionKey[S, E]][]transition[S, E]),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on a misconfigured transition table.
func MustNew[S, E ~string](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition registers from --event--> to, guarded by all of guards.
func WithTransition[S, E ~string](from, to S, event E, guards ...Guard[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if from == "" || to == "" || event == "" {
			return ErrInvalidTransition
		}
		clean := make([]Guard[S, E], 0, len(guards))
		for _, g := range guards {
			if g != nil {
				clean = append(clean, g)
			}
		}
		key := transitionKey[S, E]{from: from, event: event}
		m.transitions[key] = append(m.transitions[key], transition[S, E]{to: to, guards: clean})
		return nil
	}
}

// WithObserver registers a callback for completed transitions.
func WithObserver[S, E ~string](o Observer[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		if o != nil {
			m.observers = append(m.observers, o)
		}
		return nil
	}
}

func (m *Machine[S, E]) Current() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Fire applies event to the current state.
// It returns *ErrNoTransitionAvailable when nothing is registered for the
// pair and *ErrTransitionRejected when every candidate was blocked by guards.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) error {
	if event == "" {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	to, err := m.resolve(ctx, from, event)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = to
	observers := m.observers
	m.mu.Unlock()

	for _, o := range observers {
		o(ctx, from, to, event)
	}
	return nil
}

// Reset returns the machine to its initial state without notifying observers.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// resolve must be called with mu held.
func (m *Machine[S, E]) resolve(ctx context.Context, from S, event E) (S, error) {
	candidates := m.transitions[transitionKey[S, E]{from: from, event: event}]
	if len(candidates) == 0 {
		return from, NewErrNoTransitionAvailable(string(from), string(event))
	}

	for _, t := range candidates {
		if guardsPass(ctx, t.guards, from, event) {
			return t.to, nil
		}
	}
	return from, NewErrTransitionRejected(string(from), string(event))
}

func guardsPass[S, E ~string](ctx context.Context, guards []Guard[S, E], from S, event E) bool {
	for _, g := range guards {
		if !g(ctx, from, event) {
			return false
		}
	}
	return true
}
