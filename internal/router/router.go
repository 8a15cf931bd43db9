// Package router maps navigation fragments to the closed set of named views
// and centralizes the session guards each view needs.
package router

import "strings"

// Route is the name of a view. Unrecognized fragments still parse into a
// Route so the composer can render the navigation bar alone for them.
type Route string

const (
	RouteHome     Route = "home"
	RouteVenues   Route = "venues"
	RouteLogin    Route = "login"
	RouteBookings Route = "bookings"
	RouteSignup   Route = "signup"
	RouteProfile  Route = "profile"
)

var known = map[Route]bool{
	RouteHome:     true,
	RouteVenues:   true,
	RouteLogin:    true,
	RouteBookings: true,
	RouteSignup:   true,
	RouteProfile:  true,
}

// Parse derives a route from a fragment. A leading "#" is ignored and the
// empty fragment means home. Parsing never navigates; it only names the view.
func Parse(fragment string) Route {
	name := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if name == "" {
		return RouteHome
	}
	return Route(name)
}

// Known reports whether r is one of the recognized views.
func (r Route) Known() bool {
	return known[r]
}

// RequiresSession reports whether the view is suppressed without a session.
// There is no redirect; the gated route renders nothing below the navigation.
func (r Route) RequiresSession() bool {
	return r == RouteBookings || r == RouteProfile
}

// HiddenWithSession reports whether the view is suppressed while a session
// exists.
func (r Route) HiddenWithSession() bool {
	return r == RouteLogin
}

// Routes lists the recognized routes in navigation order.
func Routes() []Route {
	return []Route{RouteHome, RouteVenues, RouteLogin, RouteBookings, RouteSignup, RouteProfile}
}
