package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"petbnb/internal/domain"
)

// FormatDate renders a booking date for list rows: "Today", "Tomorrow", or
// a short date. The year is only shown when it differs from the current one.
func FormatDate(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(now.Location())

	if sameDay(t, now) {
		return "Today"
	}
	if sameDay(t, now.AddDate(0, 0, 1)) {
		return "Tomorrow"
	}
	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}

// FormatTime renders the start time, e.g. "2:30 PM".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("3:04 PM")
}

// FormatDuration buckets a booking's length: minutes under an hour, rounded
// hours under a day, rounded days beyond that.
func FormatDuration(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return ""
	}

	d := end.Sub(start)
	if d < 0 {
		d = -d
	}

	hours := d.Hours()
	switch {
	case hours < 1:
		return fmt.Sprintf("%d minutes", int(math.Round(d.Minutes())))
	case hours < 24:
		return fmt.Sprintf("%d hours", int(math.Round(hours)))
	default:
		days := int(math.Round(hours / 24))
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
}

// FormatBooking builds the list row for one booking. The counterpart card
// is role-selected: owners see the caregiver, caregivers see the owner, and
// the other side is always nil.
func FormatBooking(b domain.Booking, viewer domain.Role, now time.Time) BookingView {
	view := BookingView{
		ID:              b.ID,
		Service:         serviceName(b),
		Date:            FormatDate(b.StartDatetime, now),
		Time:            FormatTime(b.StartDatetime),
		Status:          b.Status,
		Amount:          b.TotalAmount,
		Duration:        FormatDuration(b.StartDatetime, b.EndDatetime),
		Location:        location(b),
		Pets:            b.Pets,
		SpecialRequests: b.SpecialReqs,
		PaymentStatus:   b.PaymentStatus,
		Rating:          b.Rating,
		Review:          b.ReviewText,
	}
	if view.Pets == nil {
		view.Pets = []domain.Pet{}
	}

	switch viewer {
	case domain.RolePetOwner:
		if b.Caregiver != nil {
			view.Caregiver = &ParticipantView{Rating: b.Caregiver.Rating}
			if b.Caregiver.User != nil {
				view.Caregiver.Name = fullName(b.Caregiver.User)
				view.Caregiver.Image = b.Caregiver.User.ProfileImageURL
			}
		}
	case domain.RoleCaregiver:
		if b.Owner != nil {
			view.Owner = &ParticipantView{
				Name:  fullName(b.Owner),
				Image: b.Owner.ProfileImageURL,
			}
		}
	}

	return view
}

func formatBookings(bookings []domain.Booking, viewer domain.Role, now time.Time) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FormatBooking(b, viewer, now))
	}
	return out
}

func serviceName(b domain.Booking) string {
	if b.Service != nil && b.Service.Title != "" {
		return b.Service.Title
	}
	if b.ServiceName != "" {
		return b.ServiceName
	}
	return "Unknown Service"
}

func location(b domain.Booking) string {
	if b.Location != "" {
		return b.Location
	}
	return "Not specified"
}

func fullName(u *domain.UserRef) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
