package booking

import (
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
)

// Actor is the authenticated user acting on a booking.
type Actor struct {
	UserID string
	Role   string
}

// barberTargets are the statuses only the booking's barber may set.
var barberTargets = map[Status]bool{
	StatusConfirmed:               true,
	StatusRejectedByBarber:        true,
	StatusCompleted:               true,
	StatusCancelledByBarber:       true,
	StatusPendingCustomerApproval: true,
}

// customerTargets are the statuses only the booking's customer may set.
// Confirming after a proposal goes through AcceptProposal, not here.
var customerTargets = map[Status]bool{
	StatusCancelledByCustomer: true,
	StatusRejectedByCustomer:  true,
}

func IsParty(a Actor, b *models.Booking) bool {
	return a.UserID == b.CustomerID || a.UserID == b.BarberID
}

func AuthorizeBarber(a Actor, b *models.Booking) error {
	if a.Role != RoleBarber || a.UserID != b.BarberID {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}

func AuthorizeCustomer(a Actor, b *models.Booking) error {
	if a.Role != RoleCustomer || a.UserID != b.CustomerID {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}

// AuthorizeTarget checks that a may move b to target.
func AuthorizeTarget(a Actor, b *models.Booking, target Status) error {
	switch {
	case barberTargets[target]:
		return AuthorizeBarber(a, b)
	case customerTargets[target]:
		return AuthorizeCustomer(a, b)
	}
	return httperr.ErrBusiness("forbidden")
}
