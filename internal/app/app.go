// Package app is the root composer: it owns the session and routing state,
// renders the navigation bar plus at most one primary view, and runs the
// single-goroutine event loop that applies user input and fetch results.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ritu748888/boxcourt/internal/api"
	"github.com/ritu748888/boxcourt/internal/models"
	"github.com/ritu748888/boxcourt/internal/router"
	"github.com/ritu748888/boxcourt/internal/session"
	"github.com/ritu748888/boxcourt/internal/views"
)

// taskResult is a completed background fetch, tagged with the generation of
// the mount that started it so stale results can be dropped.
type taskResult struct {
	gen   uint64
	apply func()
}

// App wires the session store, API client and views together. All state is
// owned by the event loop goroutine; background fetches hand their results
// back through the results channel and never touch state directly.
type App struct {
	logger *slog.Logger
	client *api.Client
	store  *session.Store
	in     io.Reader
	out    io.Writer

	session *models.Session
	route   router.Route
	view    views.View

	runCtx     context.Context
	gen        uint64
	taskCancel context.CancelFunc
	results    chan taskResult
}

// New creates the composer. Run must be called to start the loop.
func New(client *api.Client, store *session.Store, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		logger:  logger,
		client:  client,
		store:   store,
		in:      in,
		out:     out,
		session: &models.Session{},
		runCtx:  context.Background(),
		results: make(chan taskResult),
	}
}

// Run loads the persisted session, mounts the home view and processes events
// until ctx is cancelled, the input stream ends, or the user quits.
func (a *App) Run(ctx context.Context) error {
	a.runCtx = ctx
	a.loadSession()
	a.navigate("#home")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := a.handleLine(line); quit {
				return nil
			}
		case res := <-a.results:
			a.handleResult(res)
		}
	}
}

// loadSession reads whatever session survived the last run. A corrupt store
// degrades to a logged-out session rather than failing startup.
func (a *App) loadSession() {
	sess, err := a.store.Load()
	if err != nil {
		a.logger.Warn("failed to load stored session", "error", err)
		a.session = &models.Session{}
		return
	}
	a.session = sess
}

// handleLine applies one line of user input and reports whether to quit.
func (a *App) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	switch line {
	case "quit", "exit":
		return true
	case "logout":
		a.handleLogout()
		return false
	}

	if strings.HasPrefix(line, "#") {
		a.navigate(line)
		return false
	}

	if a.view != nil && a.view.Handle(line) {
		a.render()
		return false
	}

	fmt.Fprintf(a.out, "Unrecognized command %q. Navigate with #home, #venues, #login, #bookings, #signup or #profile.\n", line)
	return false
}

// handleResult applies a completed fetch unless it was superseded by a later
// mount or tab switch, in which case it is dropped without touching state.
func (a *App) handleResult(res taskResult) {
	if res.gen != a.gen {
		a.logger.Debug("dropping stale fetch result", "gen", res.gen, "current", a.gen)
		return
	}
	res.apply()
	a.render()
}

// navigate derives the route from the fragment, unmounts the current view
// (cancelling its in-flight fetch) and mounts the view for the new route.
func (a *App) navigate(fragment string) {
	a.invalidateTasks()
	a.route = router.Parse(fragment)
	a.view = a.mountView(a.route)
	a.render()
}

// invalidateTasks cancels the in-flight fetch, if any, and bumps the
// generation so any result already racing toward the loop is dropped.
func (a *App) invalidateTasks() {
	if a.taskCancel != nil {
		a.taskCancel()
		a.taskCancel = nil
	}
	a.gen++
}

// mountView builds the primary view for a route, or nil when the route is
// unrecognized or gated: bookings and profile need a session, login is
// suppressed when one exists. Gated routes render nothing below the
// navigation bar; there is no redirect.
func (a *App) mountView(route router.Route) views.View {
	if !route.Known() {
		return nil
	}
	if route.RequiresSession() && !a.session.LoggedIn() {
		return nil
	}
	if route.HiddenWithSession() && a.session.LoggedIn() {
		return nil
	}

	switch route {
	case router.RouteHome:
		return views.NewHomeView(a.session)
	case router.RouteVenues:
		return views.NewVenuesView(a.client, a.runner())
	case router.RouteLogin:
		return views.NewLoginView(a.client, a.store, a.runner(), a.handleLoginSuccess)
	case router.RouteBookings:
		return views.NewBookingsView(a.client, a.runner(), a.session.AuthToken)
	case router.RouteProfile:
		return views.NewProfileView(a.session)
	case router.RouteSignup:
		return views.NewSignupView()
	}
	return nil
}

// runner hands the mounted view a way to start fetch tasks bound to its
// mounted lifetime. Each started task supersedes the previous one.
func (a *App) runner() views.TaskRunner {
	return func(fn func(ctx context.Context) func()) {
		a.startTask(fn)
	}
}

func (a *App) startTask(fn func(ctx context.Context) func()) {
	if a.taskCancel != nil {
		a.taskCancel()
	}
	ctx, cancel := context.WithCancel(a.runCtx)
	a.taskCancel = cancel
	a.gen++
	gen := a.gen

	go func() {
		apply := fn(ctx)
		select {
		case a.results <- taskResult{gen: gen, apply: apply}:
		case <-a.runCtx.Done():
		}
	}()
}

// handleLoginSuccess re-reads the session the login view just persisted and
// moves to the venues route.
func (a *App) handleLoginSuccess() {
	a.loadSession()
	a.navigate("#venues")
}

// handleLogout clears the persisted session and returns home.
func (a *App) handleLogout() {
	if !a.session.LoggedIn() {
		a.render()
		return
	}
	if err := a.store.Clear(); err != nil {
		a.logger.Error("failed to clear session", "error", err)
	}
	a.session = &models.Session{}
	a.navigate("#home")
}

// render repaints the screen: navigation always, then the mounted view.
func (a *App) render() {
	fmt.Fprintln(a.out)
	views.RenderNavigation(a.out, a.session)
	if a.view != nil {
		a.view.Render(a.out)
	}
	fmt.Fprint(a.out, "> ")
}
