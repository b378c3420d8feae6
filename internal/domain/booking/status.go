package booking

import "github.com/BruksfildServices01/barbermatch/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPendingCustomerRequest  Status = "pending_customer_request"
	StatusPendingBarberProposal   Status = "pending_barber_proposal"
	StatusPendingCustomerApproval Status = "pending_customer_approval"
	StatusConfirmed               Status = "confirmed"
	StatusCompleted               Status = "completed"
	StatusCancelledByCustomer     Status = "cancelled_by_customer"
	StatusCancelledByBarber       Status = "cancelled_by_barber"
	StatusRejectedByBarber        Status = "rejected_by_barber"
	StatusRejectedByCustomer      Status = "rejected_by_customer"
)

// transitions lists every legal move. Terminal states have no entry.
var transitions = map[Status][]Status{
	StatusPendingCustomerRequest: {
		StatusPendingCustomerApproval,
		StatusRejectedByBarber,
		StatusCancelledByCustomer,
		StatusCancelledByBarber,
	},
	StatusPendingBarberProposal: {
		StatusConfirmed,
		StatusPendingCustomerApproval,
		StatusRejectedByBarber,
		StatusCancelledByCustomer,
		StatusCancelledByBarber,
	},
	StatusPendingCustomerApproval: {
		StatusConfirmed,
		StatusRejectedByCustomer,
		StatusPendingCustomerApproval,
		StatusCancelledByCustomer,
		StatusCancelledByBarber,
	},
	StatusConfirmed: {
		StatusCompleted,
		StatusCancelledByCustomer,
		StatusCancelledByBarber,
	},
}

var known = map[Status]bool{
	StatusPendingCustomerRequest:  true,
	StatusPendingBarberProposal:   true,
	StatusPendingCustomerApproval: true,
	StatusConfirmed:               true,
	StatusCompleted:               true,
	StatusCancelledByCustomer:     true,
	StatusCancelledByBarber:       true,
	StatusRejectedByBarber:        true,
	StatusRejectedByCustomer:      true,
}

// ParseStatus accepts only the canonical statuses. The short legacy names
// ("pending", "rejected") are rejected.
func ParseStatus(s string) (Status, error) {
	if known[Status(s)] {
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Validations
// ===============================

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

func (s Status) IsTerminal() bool {
	return known[s] && len(transitions[s]) == 0
}

// Holds reports whether a booking in s keeps its time slot taken.
func (s Status) Holds() bool {
	switch s {
	case StatusCancelledByCustomer, StatusCancelledByBarber,
		StatusRejectedByBarber, StatusRejectedByCustomer:
		return false
	}
	return known[s]
}

// InitialStatus picks the creation status. A request carrying a fixed price
// waits on the barber; an unpriced custom request waits on a barber quote.
func InitialStatus(servicePrice *float64) Status {
	if servicePrice != nil {
		return StatusPendingBarberProposal
	}
	return StatusPendingCustomerRequest
}
