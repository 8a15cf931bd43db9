package models

// BookingStatus is the server-reported lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// User is the account record returned by the login endpoint. It is held as a
// read-only snapshot; the client never mutates it.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DateJoined string `json:"date_joined,omitempty"`
}

// Venue is a bookable facility containing one or more courts. The list
// endpoint returns the summary fields only; the detail overlay is rendered
// from the same record without a second fetch.
type Venue struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating"`
	CourtsCount int     `json:"courts_count"`
}

// Booking is a reservation of a court for a date/time range.
type Booking struct {
	ID              int64         `json:"id"`
	VenueName       string        `json:"venue_name"`
	CourtName       string        `json:"court_name"`
	Date            string        `json:"date"`
	StartTime       string        `json:"start_time"`
	EndTime         string        `json:"end_time"`
	NumberOfPlayers int           `json:"number_of_players"`
	TotalPrice      string        `json:"total_price"`
	Status          BookingStatus `json:"status"`
}

// Cancellable reports whether the booking may still be cancelled by the user.
func (b Booking) Cancellable() bool {
	return b.Status != BookingCancelled
}

// Session is the client-held record of the authenticated user. User may be
// present with an empty AuthToken (the store does not enforce that the two
// exist together); authenticated endpoints simply reject the empty token.
type Session struct {
	User      *User
	UserID    int64
	AuthToken string
}

// LoggedIn reports whether a user record is present. This mirrors the
// presence check used to gate views; it deliberately ignores the token.
func (s *Session) LoggedIn() bool {
	return s != nil && s.User != nil
}
