package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"petbnb/internal/domain"
	"petbnb/internal/gateway"
	"petbnb/internal/modules/dashboard"
)

// Service orchestrates booking status transitions. Every action runs the
// local state-machine guard first, then asks the upstream to apply the
// transition. The upstream stays the source of truth: on success callers
// re-fetch their dashboard instead of patching local state, since the other
// party may have raced them to a different transition.
type Service struct {
	gw     Gateway
	events EventPublisher
	log    *zap.Logger
}

func NewService(gw Gateway, events EventPublisher, log *zap.Logger) *Service {
	return &Service{gw: gw, events: events, log: log}
}

// Accept confirms a pending booking. Caregiver only.
func (s *Service) Accept(ctx context.Context, token string, actor domain.Role, bookingID string, current domain.BookingStatus) ActionResult {
	return s.perform(ctx, token, actor, bookingID, current, domain.ActionAccept, "")
}

// Decline rejects a pending booking. Caregiver only.
func (s *Service) Decline(ctx context.Context, token string, actor domain.Role, bookingID string, current domain.BookingStatus, reason string) ActionResult {
	return s.perform(ctx, token, actor, bookingID, current, domain.ActionDecline, reason)
}

// Start moves a confirmed booking into service. Caregiver only.
func (s *Service) Start(ctx context.Context, token string, actor domain.Role, bookingID string, current domain.BookingStatus) ActionResult {
	return s.perform(ctx, token, actor, bookingID, current, domain.ActionStart, "")
}

// Complete finishes an in-progress booking. Caregiver only.
func (s *Service) Complete(ctx context.Context, token string, actor domain.Role, bookingID string, current domain.BookingStatus) ActionResult {
	return s.perform(ctx, token, actor, bookingID, current, domain.ActionComplete, "")
}

// Cancel withdraws a pending booking. Pet owner only.
func (s *Service) Cancel(ctx context.Context, token string, actor domain.Role, bookingID string, current domain.BookingStatus, reason string) ActionResult {
	return s.perform(ctx, token, actor, bookingID, current, domain.ActionCancel, reason)
}

func (s *Service) perform(ctx context.Context, token string, actor domain.Role, bookingID string, current domain.BookingStatus, action domain.Action, reason string) ActionResult {
	// Callers that know the status they rendered pass it in; everyone else
	// gets it fetched so the guard still runs against live state.
	if current == "" {
		details, err := s.gw.GetBookingDetails(ctx, token, bookingID)
		if err != nil {
			s.log.Warn("status lookup before action failed",
				zap.String("booking_id", bookingID),
				zap.String("action", string(action)),
				zap.Error(err))
			return ActionResult{
				Success: false,
				Error: &ActionError{
					Kind:    string(gateway.KindOf(err)),
					Message: gateway.UserMessage(err),
				},
			}
		}
		current = details.Booking.Status
	}

	target, ok := domain.NextStatus(current, actor, action)
	if !ok {
		s.log.Debug("transition rejected locally",
			zap.String("booking_id", bookingID),
			zap.String("status", string(current)),
			zap.String("role", string(actor)),
			zap.String("action", string(action)))
		return ActionResult{
			Success: false,
			Error:   &ActionError{Kind: KindPrecondition, Message: preconditionMessage},
		}
	}

	updated, err := s.gw.UpdateBookingStatus(ctx, token, bookingID, target, reason)
	if err != nil {
		s.log.Warn("status update failed",
			zap.String("booking_id", bookingID),
			zap.String("action", string(action)),
			zap.Error(err))
		return ActionResult{
			Success: false,
			Error: &ActionError{
				Kind:    string(gateway.KindOf(err)),
				Message: gateway.UserMessage(err),
			},
		}
	}

	s.log.Info("booking transition applied",
		zap.String("booking_id", bookingID),
		zap.String("action", string(action)),
		zap.String("status", string(updated.Status)))
	if s.events != nil {
		s.events.BookingChanged(updated.ID, updated.Status, updated.OwnerID, updated.CaregiverID)
	}
	return ActionResult{Success: true, Booking: updated}
}

// GetDetails fetches the full booking and derives the viewer's allowed next
// actions from the transition table, so screens never offer an action the
// backend would refuse.
func (s *Service) GetDetails(ctx context.Context, token string, actor domain.Role, bookingID string) (*DetailsView, error) {
	details, err := s.gw.GetBookingDetails(ctx, token, bookingID)
	if err != nil {
		return nil, err
	}

	role := details.ViewerRole
	if role == "" {
		role = actor
	}

	return &DetailsView{
		Booking:    dashboard.FormatBooking(details.Booking, role, time.Now()),
		Status:     details.Booking.Status,
		ViewerRole: role,
		ThreadID:   details.ThreadID,
		Actions:    domain.AllowedActions(details.Booking.Status, role),
	}, nil
}
