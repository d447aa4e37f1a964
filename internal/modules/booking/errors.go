package booking

// Failure kinds surfaced in ActionResult. All but KindPrecondition mirror
// the gateway taxonomy; precondition failures never reach the network.
const (
	KindPrecondition = "precondition"

	preconditionMessage = "This action is not available for the booking's current status."
)
