// Package views holds the primary screens of the client. Each view renders
// from its own local state and interprets the commands typed while it is
// mounted; none of them reads or writes the session store directly — the
// session flows down from the composer, and login/logout are the only
// mutators.
package views

import (
	"context"
	"io"
)

// View is a mounted primary screen.
type View interface {
	// Render writes the view's current state to w.
	Render(w io.Writer)
	// Handle interprets one line of input scoped to this view and reports
	// whether the view consumed it.
	Handle(input string) bool
}

// TaskRunner starts a background fetch bound to the view's mounted lifetime.
// fn runs off the UI goroutine and returns an apply callback; the runner
// executes that callback on the UI goroutine unless the task was superseded
// (view unmounted, tab switched) in the meantime, in which case the result is
// dropped and never touches visible state.
type TaskRunner func(fn func(ctx context.Context) (apply func()))
