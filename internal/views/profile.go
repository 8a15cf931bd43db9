package views

import (
	"fmt"
	"io"
	"time"

	"github.com/ritu748888/boxcourt/internal/models"
	"github.com/ritu748888/boxcourt/internal/session"
)

// ProfileView shows the signed-in user's details. Profile editing is not
// implemented; the screen is read-only.
type ProfileView struct {
	session *models.Session
}

func NewProfileView(sess *models.Session) *ProfileView {
	return &ProfileView{session: sess}
}

func (v *ProfileView) Render(w io.Writer) {
	user := v.session.User
	fmt.Fprintln(w, "User Profile")
	fmt.Fprintf(w, "  Email: %s\n", user.Email)

	phone := user.Phone
	if phone == "" {
		phone = "Not provided"
	}
	fmt.Fprintf(w, "  Phone: %s\n", phone)
	fmt.Fprintf(w, "  Member since: %s\n", memberSince(user.DateJoined))

	if claims, ok := session.ParseTokenClaims(v.session.AuthToken); ok {
		if exp := claims.ExpiresAt(); !exp.IsZero() {
			fmt.Fprintf(w, "  Session expires: %s\n", exp.Format(time.RFC1123))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "View your bookings at #bookings")
}

func (v *ProfileView) Handle(string) bool { return false }

// memberSince renders the join date, falling back to the raw value when the
// service sends a format we don't recognize.
func memberSince(dateJoined string) string {
	if dateJoined == "" {
		return "Unknown"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, dateJoined); err == nil {
			return t.Format("2 January 2006")
		}
	}
	return dateJoined
}
