package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// GetBooking returns a booking to one of its two parties.
type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !domain.IsParty(actor, b) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	return b, nil
}

// ListBookings lists the caller's bookings: a customer's own requests, or a
// barber's incoming ones optionally filtered by status.
type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	actor domain.Actor,
	rawStatus string,
) ([]models.Booking, error) {

	var status domain.Status
	if rawStatus != "" {
		s, err := domain.ParseStatus(rawStatus)
		if err != nil {
			return nil, err
		}
		status = s
	}

	switch actor.Role {
	case domain.RoleBarber:
		return uc.repo.ListForBarber(ctx, actor.UserID, status)
	case domain.RoleCustomer:
		list, err := uc.repo.ListForCustomer(ctx, actor.UserID)
		if err != nil || status == "" {
			return list, err
		}
		filtered := list[:0]
		for _, b := range list {
			if domain.Status(b.Status) == status {
				filtered = append(filtered, b)
			}
		}
		return filtered, nil
	}
	return nil, httperr.ErrBusiness("forbidden")
}
