package dto

import (
	"time"

	"github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// BookingListDTO is the compact row shown in booking lists.
type BookingListDTO struct {
	ID            string    `json:"id"`
	AppointmentAt time.Time `json:"appointment_at"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	BarberName    string    `json:"barber_name"`
	Title         string    `json:"title"`
	Price         *float64  `json:"price"`
	AwaitingYou   bool      `json:"awaiting_you"`
}

// BookingList maps bookings to rows as seen by actor. Title is the service
// name, or the requested style for custom requests. Price is the proposal
// while one is pending and the agreed price afterwards.
func BookingList(actor booking.Actor, list []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(list))
	for i := range list {
		b := &list[i]

		title := b.ServiceName
		if title == "" {
			title = b.Style
		}

		price := booking.FinalPrice(b)
		if booking.Status(b.Status) == booking.StatusPendingCustomerApproval {
			price = b.ProposedPriceByBarber
		}

		out = append(out, BookingListDTO{
			ID:            b.ID,
			AppointmentAt: b.AppointmentAt,
			Time:          b.Time,
			Status:        b.Status,
			CustomerName:  b.CustomerName,
			BarberName:    b.BarberName,
			Title:         title,
			Price:         price,
			AwaitingYou:   awaiting(actor, booking.Status(b.Status)),
		})
	}
	return out
}

func awaiting(actor booking.Actor, s booking.Status) bool {
	switch s {
	case booking.StatusPendingCustomerRequest, booking.StatusPendingBarberProposal:
		return actor.Role == booking.RoleBarber
	case booking.StatusPendingCustomerApproval:
		return actor.Role == booking.RoleCustomer
	}
	return false
}
