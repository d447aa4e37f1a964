package domain

// Action is a client-initiated booking status transition.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

type transitionKey struct {
	From   BookingStatus
	Role   Role
	Action Action
}

// transitions is the full set of status changes a client may request. The
// backend enforces the same table; this copy exists so the UI never offers
// an action the backend would refuse, and invalid attempts fail before any
// network round-trip.
var transitions = map[transitionKey]BookingStatus{
	{BookingPending, RoleCaregiver, ActionAccept}:      BookingConfirmed,
	{BookingPending, RoleCaregiver, ActionDecline}:     BookingRejected,
	{BookingPending, RolePetOwner, ActionCancel}:       BookingCancelled,
	{BookingConfirmed, RoleCaregiver, ActionStart}:     BookingInProgress,
	{BookingInProgress, RoleCaregiver, ActionComplete}: BookingCompleted,
}

// actionOrder fixes the order AllowedActions reports in, so affordance
// lists render stably.
var actionOrder = []Action{ActionAccept, ActionDecline, ActionStart, ActionComplete, ActionCancel}

// NextStatus returns the status a valid (from, role, action) transition
// leads to. ok is false when the table has no such row.
func NextStatus(from BookingStatus, role Role, action Action) (BookingStatus, bool) {
	to, ok := transitions[transitionKey{from, role, action}]
	return to, ok
}

// CanTransition reports whether the role may apply the action to a booking
// in the given status.
func CanTransition(from BookingStatus, role Role, action Action) bool {
	_, ok := NextStatus(from, role, action)
	return ok
}

// AllowedActions lists every action the role may take from the given
// status. Terminal statuses always yield an empty list.
func AllowedActions(from BookingStatus, role Role) []Action {
	out := make([]Action, 0, 2)
	for _, a := range actionOrder {
		if CanTransition(from, role, a) {
			out = append(out, a)
		}
	}
	return out
}
