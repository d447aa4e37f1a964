package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"petbnb/internal/domain"
)

// listEnvelope wraps the core API's list responses.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// BookingDetails is the payload of GET /api/bookings/{id}/details: the
// booking itself plus the caller's role in it and the chat thread id.
type BookingDetails struct {
	Booking    domain.Booking `json:"booking"`
	ViewerRole domain.Role    `json:"role"`
	ThreadID   string         `json:"thread_id,omitempty"`
}

type statusUpdateRequest struct {
	Status domain.BookingStatus `json:"status"`
	Reason string               `json:"reason,omitempty"`
}

type bookingEnvelope struct {
	Data domain.Booking `json:"data"`
}

type detailsEnvelope struct {
	Data BookingDetails `json:"data"`
}

// UpcomingBookings returns the current user's upcoming bookings.
func (c *Client) UpcomingBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var env listEnvelope[domain.Booking]
	if err := c.do(ctx, token, http.MethodGet, "/api/bookings/upcoming", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// TodayBookings returns the caregiver's bookings for today.
func (c *Client) TodayBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	var env listEnvelope[domain.Booking]
	if err := c.do(ctx, token, http.MethodGet, "/api/bookings/today", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// BookingHistory returns the most recent past bookings, newest first.
func (c *Client) BookingHistory(ctx context.Context, token string, limit int) ([]domain.Booking, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var env listEnvelope[domain.Booking]
	if err := c.do(ctx, token, http.MethodGet, "/api/bookings/history", q, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetBookingDetails returns the full booking plus the caller's role in it.
func (c *Client) GetBookingDetails(ctx context.Context, token, bookingID string) (*BookingDetails, error) {
	var env detailsEnvelope
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/details"
	if err := c.do(ctx, token, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateBookingStatus requests a status transition and returns the booking
// as the backend left it. The backend arbitrates concurrent transitions;
// callers must use the returned booking (or re-fetch) instead of assuming
// the request succeeded as asked.
func (c *Client) UpdateBookingStatus(ctx context.Context, token, bookingID string, status domain.BookingStatus, reason string) (*domain.Booking, error) {
	var env bookingEnvelope
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/status"
	body := statusUpdateRequest{Status: status, Reason: reason}
	if err := c.do(ctx, token, http.MethodPut, path, nil, body, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
