package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

var now = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func price(v float64) *float64 { return &v }

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPendingBarberProposal, InitialStatus(price(25)))
	assert.Equal(t, StatusPendingCustomerRequest, InitialStatus(nil))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("cancelled_by_customer")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelledByCustomer, s)

	for _, legacy := range []string{"pending", "rejected", ""} {
		_, err := ParseStatus(legacy)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"), legacy)
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []Status{
		StatusCompleted,
		StatusCancelledByBarber,
		StatusCancelledByCustomer,
		StatusRejectedByBarber,
		StatusRejectedByCustomer,
	} {
		assert.True(t, s.IsTerminal(), s)
		assert.Error(t, CanTransition(s, StatusConfirmed))
	}
	assert.False(t, StatusConfirmed.IsTerminal())
}

func TestProposePrice(t *testing.T) {
	t.Run("non positive price", func(t *testing.T) {
		for _, p := range []float64{0, -10} {
			b := &models.Booking{Status: string(StatusPendingCustomerRequest)}
			err := ProposePrice(b, p, now)

			assert.True(t, httperr.IsBusiness(err, "invalid_price"))
			assert.Nil(t, b.ProposedPriceByBarber)
			assert.Nil(t, b.ServicePrice)
			assert.Equal(t, string(StatusPendingCustomerRequest), b.Status)
		}
	})

	t.Run("mirrors into service price", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPendingCustomerRequest)}
		require.NoError(t, ProposePrice(b, 50, now))

		assert.Equal(t, 50.0, *b.ProposedPriceByBarber)
		assert.Equal(t, 50.0, *b.ServicePrice)
		assert.Equal(t, string(StatusPendingCustomerApproval), b.Status)
		assert.Equal(t, now, b.UpdatedAt)
	})

	t.Run("not after confirmation", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusConfirmed)}
		err := ProposePrice(b, 40, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	})
}

func TestAcceptProposalRequiresPendingApproval(t *testing.T) {
	b := &models.Booking{Status: string(StatusPendingCustomerRequest)}
	assert.True(t, httperr.IsBusiness(AcceptProposal(b, now), "invalid_transition"))

	b.Status = string(StatusPendingBarberProposal)
	assert.True(t, httperr.IsBusiness(AcceptProposal(b, now), "invalid_transition"))

	b.Status = string(StatusPendingCustomerApproval)
	require.NoError(t, AcceptProposal(b, now))
	assert.Equal(t, string(StatusConfirmed), b.Status)
}

func TestRejectProposal(t *testing.T) {
	b := &models.Booking{Status: string(StatusPendingCustomerApproval)}
	require.NoError(t, RejectProposal(b, now))
	assert.Equal(t, string(StatusRejectedByCustomer), b.Status)
}

func TestSetStatus(t *testing.T) {
	b := &models.Booking{Status: string(StatusPendingBarberProposal)}
	require.NoError(t, SetStatus(b, StatusConfirmed, now))
	require.NoError(t, SetStatus(b, StatusCompleted, now))

	err := SetStatus(b, StatusCancelledByBarber, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	err = SetStatus(b, StatusPendingCustomerApproval, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"), "proposal status is not settable directly")
}

func TestSetStatusCannotConfirmOwnQuote(t *testing.T) {
	b := &models.Booking{Status: string(StatusPendingCustomerRequest)}
	require.NoError(t, ProposePrice(b, 500, now))

	barber := Actor{UserID: "barber-1", Role: RoleBarber}
	b.BarberID = "barber-1"
	require.NoError(t, AuthorizeTarget(barber, b, StatusConfirmed))

	err := SetStatus(b, StatusConfirmed, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Equal(t, string(StatusPendingCustomerApproval), b.Status)

	require.NoError(t, SetStatus(b, StatusCancelledByBarber, now))
}

func TestFinalPrice(t *testing.T) {
	b := &models.Booking{Status: string(StatusPendingCustomerApproval), ServicePrice: price(30)}
	assert.Nil(t, FinalPrice(b))

	b.Status = string(StatusConfirmed)
	assert.Equal(t, 30.0, *FinalPrice(b))

	b.ServicePrice = nil
	assert.Nil(t, FinalPrice(b))
}

func TestAuthorizeTarget(t *testing.T) {
	b := &models.Booking{CustomerID: "cust-1", BarberID: "barber-1"}
	barber := Actor{UserID: "barber-1", Role: RoleBarber}
	customer := Actor{UserID: "cust-1", Role: RoleCustomer}
	stranger := Actor{UserID: "barber-2", Role: RoleBarber}

	assert.NoError(t, AuthorizeTarget(barber, b, StatusConfirmed))
	assert.NoError(t, AuthorizeTarget(customer, b, StatusCancelledByCustomer))
	assert.Error(t, AuthorizeTarget(customer, b, StatusCompleted))
	assert.Error(t, AuthorizeTarget(barber, b, StatusCancelledByCustomer))
	assert.Error(t, AuthorizeTarget(stranger, b, StatusConfirmed))

	assert.True(t, IsParty(customer, b))
	assert.False(t, IsParty(stranger, b))
}
