package views

import (
	"fmt"
	"io"

	"github.com/ritu748888/boxcourt/internal/models"
)

// RenderNavigation writes the navigation bar. It is rendered on every screen,
// before whichever primary view is mounted. Bookings, profile and logout only
// appear with a session; signup and login only without one.
func RenderNavigation(w io.Writer, sess *models.Session) {
	fmt.Fprintln(w, "== Box Cricket ==")
	if sess.LoggedIn() {
		fmt.Fprintf(w, "  #home  #venues  #bookings  #profile  |  logout (%s)\n", sess.User.Email)
	} else {
		fmt.Fprintln(w, "  #home  #venues  #signup  #login")
	}
	fmt.Fprintln(w)
}
