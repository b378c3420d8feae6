package booking

import (
	"time"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// updateTargets are the statuses the generic status endpoint may set.
var updateTargets = map[Status]bool{
	StatusConfirmed:           true,
	StatusRejectedByBarber:    true,
	StatusCompleted:           true,
	StatusCancelledByBarber:   true,
	StatusCancelledByCustomer: true,
}

// ===============================
// Domain Actions
// ===============================

// Transition moves b to target when the table allows it.
func Transition(b *models.Booking, target Status, now time.Time) error {
	if err := CanTransition(Status(b.Status), target); err != nil {
		return err
	}

	b.Status = string(target)
	b.UpdatedAt = now
	return nil
}

// SetStatus is the generic status change used by accept/reject/complete/cancel.
func SetStatus(b *models.Booking, target Status, now time.Time) error {
	if !updateTargets[target] {
		return httperr.ErrBusiness("invalid_status")
	}
	// a quoted price is only confirmed by the customer, via AcceptProposal
	if Status(b.Status) == StatusPendingCustomerApproval && target == StatusConfirmed {
		return httperr.ErrBusiness("invalid_transition")
	}
	return Transition(b, target, now)
}

// ProposePrice records a barber quote. The quote is mirrored into the
// service price so the booking carries a single authoritative price.
func ProposePrice(b *models.Booking, price float64, now time.Time) error {
	if price <= 0 {
		return httperr.ErrBusiness("invalid_price")
	}
	if err := CanTransition(Status(b.Status), StatusPendingCustomerApproval); err != nil {
		return err
	}

	proposed, service := price, price
	b.ProposedPriceByBarber = &proposed
	b.ServicePrice = &service
	b.Status = string(StatusPendingCustomerApproval)
	b.UpdatedAt = now
	return nil
}

func AcceptProposal(b *models.Booking, now time.Time) error {
	if Status(b.Status) != StatusPendingCustomerApproval {
		return httperr.ErrBusiness("invalid_transition")
	}
	return Transition(b, StatusConfirmed, now)
}

func RejectProposal(b *models.Booking, now time.Time) error {
	if Status(b.Status) != StatusPendingCustomerApproval {
		return httperr.ErrBusiness("invalid_transition")
	}
	return Transition(b, StatusRejectedByCustomer, now)
}

// FinalPrice is the agreed price of a confirmed or completed booking, nil
// when no price was ever established.
func FinalPrice(b *models.Booking) *float64 {
	switch Status(b.Status) {
	case StatusConfirmed, StatusCompleted:
		return b.ServicePrice
	}
	return nil
}
