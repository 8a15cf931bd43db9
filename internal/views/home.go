package views

import (
	"fmt"
	"io"

	"github.com/ritu748888/boxcourt/internal/models"
)

// HomeView is the static landing screen. Its call-to-action lines differ
// depending on whether a session exists.
type HomeView struct {
	session *models.Session
}

func NewHomeView(sess *models.Session) *HomeView {
	return &HomeView{session: sess}
}

func (v *HomeView) Render(w io.Writer) {
	fmt.Fprintln(w, "Book Box Cricket Courts Quickly")
	fmt.Fprintln(w, "Find nearby venues, pick a court and time slot, and confirm your booking in seconds.")
	fmt.Fprintln(w)
	if v.session.LoggedIn() {
		fmt.Fprintln(w, "  [Book Now: #venues]  [My Bookings: #bookings]")
	} else {
		fmt.Fprintln(w, "  [Get Started: #signup]  [Login: #login]")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "How it works:")
	fmt.Fprintln(w, "  Search Venues  - browse venues and available courts near you")
	fmt.Fprintln(w, "  Select Time    - choose an available slot that fits your schedule")
	fmt.Fprintln(w, "  Confirm & Play - complete booking and turn up to play your match")
}

func (v *HomeView) Handle(string) bool { return false }
