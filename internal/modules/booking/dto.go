package booking

import (
	"petbnb/internal/domain"
	"petbnb/internal/modules/dashboard"
)

// ActionRequest carries the booking status the client currently displays.
// When present, the local transition guard runs against it and stale screens
// are rejected instantly without an upstream round-trip. When absent, the
// current status is fetched before the guard runs.
type ActionRequest struct {
	CurrentStatus domain.BookingStatus `json:"current_status"`
	Reason        string               `json:"reason"`
}

// ActionError describes why an action failed, in the client taxonomy.
type ActionError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ActionResult is what every booking action resolves to. Expected failures
// land here instead of in an error return.
type ActionResult struct {
	Success bool            `json:"success"`
	Booking *domain.Booking `json:"booking,omitempty"`
	Error   *ActionError    `json:"error,omitempty"`
}

// DetailsView is the full booking detail payload, including the actions the
// viewer may take next. Screens render affordances straight from Actions.
type DetailsView struct {
	Booking    dashboard.BookingView `json:"booking"`
	Status     domain.BookingStatus  `json:"status"`
	ViewerRole domain.Role           `json:"viewer_role"`
	ThreadID   string                `json:"thread_id,omitempty"`
	Actions    []domain.Action       `json:"allowed_actions"`
}
