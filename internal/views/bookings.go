package views

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ritu748888/boxcourt/internal/api"
	"github.com/ritu748888/boxcourt/internal/models"
)

// BookingsView shows the user's bookings for one of two tabs. Switching tabs
// re-fetches from the tab-specific endpoint; the displayed list always equals
// the last successful fetch (a cancellation re-fetches rather than patching
// the list in place).
type BookingsView struct {
	client *api.Client
	run    TaskRunner
	token  string

	tab           api.BookingTab
	bookings      []models.Booking
	loading       bool
	errMsg        string
	pendingCancel int64
}

func NewBookingsView(client *api.Client, run TaskRunner, token string) *BookingsView {
	v := &BookingsView{client: client, run: run, token: token, tab: api.TabUpcoming, loading: true}
	v.fetch()
	return v
}

func (v *BookingsView) fetch() {
	tab := v.tab
	v.run(func(ctx context.Context) func() {
		bookings, err := v.client.Bookings(ctx, tab, v.token)
		return func() {
			v.loading = false
			if err != nil {
				if errors.Is(err, api.ErrUnauthorized) {
					// Keep the token and the prior list; just tell the user.
					v.errMsg = "Please log in to view bookings"
					return
				}
				v.errMsg = api.UserMessage(err, "Failed to load bookings")
				return
			}
			v.errMsg = ""
			v.bookings = bookings
		}
	})
}

func (v *BookingsView) Render(w io.Writer) {
	if v.loading {
		fmt.Fprintln(w, "Loading bookings...")
		return
	}

	fmt.Fprintln(w, "My Bookings")
	fmt.Fprintf(w, "  Tabs: [%s] (tab upcoming | tab past)\n", v.tab)
	fmt.Fprintln(w)

	if v.errMsg != "" {
		fmt.Fprintf(w, "  ! %s\n", v.errMsg)
	}

	if v.pendingCancel != 0 {
		fmt.Fprintf(w, "Are you sure you want to cancel booking %d? (y/n)\n", v.pendingCancel)
		return
	}

	if len(v.bookings) == 0 {
		fmt.Fprintf(w, "  No %s bookings found\n", v.tab)
		return
	}

	for _, b := range v.bookings {
		fmt.Fprintf(w, "  #%d %s - %s\n", b.ID, b.VenueName, b.CourtName)
		fmt.Fprintf(w, "      Date: %s\n", b.Date)
		fmt.Fprintf(w, "      Time: %s - %s\n", b.StartTime, b.EndTime)
		fmt.Fprintf(w, "      Players: %d\n", b.NumberOfPlayers)
		fmt.Fprintf(w, "      Price: Rs %s\n", b.TotalPrice)
		fmt.Fprintf(w, "      Status: %s\n", strings.ToUpper(string(b.Status)))
		if v.tab == api.TabUpcoming && b.Cancellable() {
			fmt.Fprintf(w, "      (cancel %d to cancel this booking)\n", b.ID)
		}
	}
}

func (v *BookingsView) Handle(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	if v.pendingCancel != 0 {
		return v.resolveConfirmation(fields[0])
	}

	switch fields[0] {
	case "tab":
		if len(fields) < 2 {
			return false
		}
		return v.switchTab(api.BookingTab(fields[1]))
	case "cancel":
		if len(fields) < 2 {
			return false
		}
		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || id <= 0 {
			return false
		}
		v.pendingCancel = id
		return true
	}
	return false
}

func (v *BookingsView) switchTab(tab api.BookingTab) bool {
	if tab != api.TabUpcoming && tab != api.TabPast {
		return false
	}
	if tab == v.tab {
		return true
	}
	v.tab = tab
	v.loading = true
	v.fetch()
	return true
}

// resolveConfirmation handles the y/n answer to a pending cancellation. A
// declined confirmation sends no request at all.
func (v *BookingsView) resolveConfirmation(answer string) bool {
	id := v.pendingCancel
	v.pendingCancel = 0

	switch strings.ToLower(answer) {
	case "y", "yes":
		v.cancelBooking(id)
		return true
	case "n", "no":
		return true
	default:
		return true
	}
}

func (v *BookingsView) cancelBooking(id int64) {
	v.run(func(ctx context.Context) func() {
		err := v.client.CancelBooking(ctx, id, v.token)
		return func() {
			if err != nil {
				v.errMsg = api.UserMessage(err, "Failed to cancel booking")
				return
			}
			v.errMsg = ""
			// Re-fetch the active tab instead of patching the list.
			v.loading = true
			v.fetch()
		}
	})
}

// Tab exposes the active tab.
func (v *BookingsView) Tab() api.BookingTab { return v.tab }

// Bookings exposes the last successfully fetched list.
func (v *BookingsView) Bookings() []models.Booking { return v.bookings }
