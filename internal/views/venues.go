package views

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ritu748888/boxcourt/internal/api"
	"github.com/ritu748888/boxcourt/internal/models"
)

// VenuesView lists all venues and shows a detail overlay for a selected one.
// The overlay is populated entirely from the already-fetched list; selecting
// a venue never triggers a second fetch.
type VenuesView struct {
	client *api.Client
	run    TaskRunner

	venues   []models.Venue
	selected *models.Venue
	loading  bool
	errMsg   string
	notice   string
}

func NewVenuesView(client *api.Client, run TaskRunner) *VenuesView {
	v := &VenuesView{client: client, run: run, loading: true}
	v.fetch()
	return v
}

func (v *VenuesView) fetch() {
	v.run(func(ctx context.Context) func() {
		venues, err := v.client.Venues(ctx)
		return func() {
			v.loading = false
			if err != nil {
				v.errMsg = api.UserMessage(err, "Failed to load venues")
				return
			}
			v.venues = venues
		}
	})
}

func (v *VenuesView) Render(w io.Writer) {
	if v.loading {
		fmt.Fprintln(w, "Loading venues...")
		return
	}
	if v.errMsg != "" {
		fmt.Fprintf(w, "! %s\n", v.errMsg)
		return
	}

	if v.selected != nil {
		v.renderDetail(w, *v.selected)
		return
	}

	fmt.Fprintln(w, "Book Your Court")
	fmt.Fprintln(w)
	for i, venue := range v.venues {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, venue.Name)
		fmt.Fprintf(w, "      %s\n", venue.City)
		fmt.Fprintf(w, "      %.1f/5.0\n", venue.Rating)
		fmt.Fprintf(w, "      %d courts available\n", venue.CourtsCount)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Type: open <n> to view details")
}

func (v *VenuesView) renderDetail(w io.Writer, venue models.Venue) {
	fmt.Fprintln(w, venue.Name)
	fmt.Fprintf(w, "  Location:    %s\n", venue.Address)
	fmt.Fprintf(w, "  City:        %s\n", venue.City)
	fmt.Fprintf(w, "  Phone:       %s\n", venue.Phone)
	fmt.Fprintf(w, "  Description: %s\n", venue.Description)
	if v.notice != "" {
		fmt.Fprintf(w, "\n  %s\n", v.notice)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Type: book to book a court, close to go back")
}

func (v *VenuesView) Handle(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "open":
		if len(fields) < 2 {
			return false
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 || n > len(v.venues) {
			return false
		}
		v.selected = &v.venues[n-1]
		v.notice = ""
		return true
	case "close":
		if v.selected == nil {
			return false
		}
		v.selected = nil
		v.notice = ""
		return true
	case "book":
		// Placeholder: court-level booking is not wired up yet.
		if v.selected == nil {
			return false
		}
		v.notice = "Book a court from here! (coming soon)"
		return true
	}
	return false
}

// Selected exposes the overlay's venue, nil when the list is showing.
func (v *VenuesView) Selected() *models.Venue { return v.selected }
