package booking

import (
	"context"

	"petbnb/internal/domain"
	"petbnb/internal/gateway"
)

// Gateway is the slice of the upstream client the orchestrator needs.
type Gateway interface {
	GetBookingDetails(ctx context.Context, token, bookingID string) (*gateway.BookingDetails, error)
	UpdateBookingStatus(ctx context.Context, token, bookingID string, status domain.BookingStatus, reason string) (*domain.Booking, error)
}

// EventPublisher receives booking-changed notifications after a successful
// transition. Implemented by the realtime hub; a no-op is fine in tests.
type EventPublisher interface {
	BookingChanged(bookingID string, status domain.BookingStatus, userIDs ...string)
}
