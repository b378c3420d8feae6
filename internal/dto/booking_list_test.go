package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

func TestBookingList(t *testing.T) {
	fifty, forty := 50.0, 40.0

	list := []models.Booking{
		{ID: "a", Style: "mullet", Status: string(booking.StatusPendingCustomerApproval), ServicePrice: &fifty, ProposedPriceByBarber: &fifty},
		{ID: "b", ServiceName: "Haircut", Status: string(booking.StatusConfirmed), ServicePrice: &forty},
		{ID: "c", ServiceName: "Beard", Status: string(booking.StatusPendingBarberProposal), ServicePrice: &forty},
	}

	rows := BookingList(booking.Actor{UserID: "cust-1", Role: booking.RoleCustomer}, list)
	require.Len(t, rows, 3)

	assert.Equal(t, "mullet", rows[0].Title)
	assert.Equal(t, 50.0, *rows[0].Price)
	assert.True(t, rows[0].AwaitingYou)

	assert.Equal(t, "Haircut", rows[1].Title)
	assert.Equal(t, 40.0, *rows[1].Price)
	assert.False(t, rows[1].AwaitingYou)

	assert.Nil(t, rows[2].Price)
	assert.False(t, rows[2].AwaitingYou)

	barberRows := BookingList(booking.Actor{UserID: "barber-1", Role: booking.RoleBarber}, list)
	assert.True(t, barberRows[2].AwaitingYou)
}
