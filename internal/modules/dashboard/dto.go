package dashboard

import "petbnb/internal/domain"

// ParticipantView is the other party's card on a booking row.
type ParticipantView struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating,omitempty"`
	Image  string  `json:"image,omitempty"`
}

// BookingView is a booking formatted for a dashboard list. Exactly one of
// Caregiver/Owner is set, depending on who is looking.
type BookingView struct {
	ID              string               `json:"id"`
	Service         string               `json:"service"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	Status          domain.BookingStatus `json:"status"`
	Amount          float64              `json:"amount"`
	Duration        string               `json:"duration"`
	Location        string               `json:"location"`
	Caregiver       *ParticipantView     `json:"caregiver"`
	Owner           *ParticipantView     `json:"owner"`
	Pets            []domain.Pet         `json:"pets"`
	SpecialRequests string               `json:"special_requests,omitempty"`
	PaymentStatus   domain.PaymentStatus `json:"payment_status,omitempty"`
	Rating          float64              `json:"rating,omitempty"`
	Review          string               `json:"review,omitempty"`
}

// OwnerDashboard is the pet-owner dashboard model. It is always
// structurally complete: failed slices come back zeroed, never missing.
type OwnerDashboard struct {
	Stats            domain.OwnerStats `json:"stats"`
	UpcomingBookings []BookingView     `json:"upcoming_bookings"`
	RecentBookings   []BookingView     `json:"recent_bookings"`
	Pets             []domain.Pet      `json:"pets"`
	Error            string            `json:"error,omitempty"`
}

// CaregiverDashboard is the caregiver dashboard model.
type CaregiverDashboard struct {
	Stats            domain.CaregiverStats `json:"stats"`
	Earnings         domain.Earnings       `json:"earnings"`
	TodayBookings    []BookingView         `json:"today_bookings"`
	UpcomingBookings []BookingView         `json:"upcoming_bookings"`
	Services         []domain.Service      `json:"services"`
	Error            string                `json:"error,omitempty"`
}
