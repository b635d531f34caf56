// Package statemachine implements a small, thread-safe finite state machine
// over string-like state and event types.
//
// Transitions are declared once at construction with WithTransition and may
// carry guards. Fire moves the machine atomically: concurrent callers racing
// on the same event see exactly one winner, and the losers get a typed
// *ErrNoTransitionAvailable they can treat as "already in progress".
//
//	type state string
//	type event string
//
//	m := statemachine.MustNew[state, event]("idle",
//	    statemachine.WithTransition[state, event]("idle", "busy", "start"),
//	    statemachine.WithTransition[state, event]("busy", "idle", "done"),
//	)
//	if err := m.Fire(ctx, "start"); statemachine.IsNoTransitionAvailableError(err) {
//	    // someone else is already busy
//	}
//
// Side effects belong to the caller, between Fire calls, so that long
// operations never run while the machine lock is held. Observers registered
// with WithObserver are invoked after each transition for logging or metrics.
package statemachine
