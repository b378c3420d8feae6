package firestore

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// These tests need the Firestore emulator (FIRESTORE_EMULATOR_HOST).
func newClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "barbermatch-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestBookingStoreCompareAndSwap(t *testing.T) {
	store := NewBookingStore(newClient(t))
	ctx := context.Background()

	barberID := uuid.NewString()
	created := &models.Booking{
		CustomerID:    "cust-1",
		BarberID:      barberID,
		AppointmentAt: time.Now().Add(24 * time.Hour),
		Time:          "14:30",
		Style:         "fade",
		Status:        string(domain.StatusPendingCustomerRequest),
	}
	id, err := store.Create(ctx, created)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := store.FindByID(ctx, id)
	require.NoError(t, err)
	assert.WithinDuration(t, created.CreatedAt, stored.CreatedAt, time.Second)

	require.NoError(t, store.UpdateProposedPrice(ctx, id, 1, 50, domain.StatusPendingCustomerApproval))

	got, err := store.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 50.0, *got.ProposedPriceByBarber)
	assert.Equal(t, 50.0, *got.ServicePrice)
	assert.EqualValues(t, 2, got.Version)

	err = store.UpdateStatus(ctx, id, 1, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "booking_conflict"))

	err = store.UpdateStatus(ctx, uuid.NewString(), 1, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))

	list, err := store.ListForBarber(ctx, barberID, domain.StatusPendingCustomerApproval)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReviewStoreOnePerBooking(t *testing.T) {
	store := NewReviewStore(newClient(t))
	ctx := context.Background()

	bookingID := uuid.NewString()
	require.NoError(t, store.Create(ctx, &models.Review{BookingID: bookingID, BarberID: "b", Rating: 5}))

	err := store.Create(ctx, &models.Review{BookingID: bookingID, BarberID: "b", Rating: 1})
	assert.True(t, httperr.IsBusiness(err, "review_already_exists"))

	exists, err := store.ExistsForBooking(ctx, bookingID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserStore(t *testing.T) {
	store := NewUserStore(newClient(t))
	ctx := context.Background()

	email := uuid.NewString() + "@example.com"
	u := &models.User{Email: email, Name: "Ali", Role: "barber", Availability: "{}"}
	require.NoError(t, store.Create(ctx, u))

	err := store.Create(ctx, &models.User{Email: email, Name: "Other", Role: "customer"})
	assert.True(t, httperr.IsBusiness(err, "email_already_exists"))

	subID := uuid.NewString()
	require.NoError(t, store.SetSubscription(ctx, u.ID, subID, true))

	got, err := store.FindBySubscriptionID(ctx, subID)
	require.NoError(t, err)
	assert.True(t, got.SubscriptionActive)
	assert.Equal(t, u.ID, got.ID)

	_, err = store.FindByID(ctx, uuid.NewString())
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestAuditStore(t *testing.T) {
	store := NewAuditStore(newClient(t))
	ctx := context.Background()

	userID := uuid.NewString()
	logger := audit.New(store)
	require.NoError(t, logger.Log(ctx, audit.Event{UserID: userID, Action: "booking_created", Entity: "booking", EntityID: "b-1"}))
	require.NoError(t, logger.Log(ctx, audit.Event{UserID: userID, Action: "review_submitted", Entity: "review", EntityID: "r-1"}))

	logs, total, err := store.List(ctx, audit.Filter{UserID: userID, Entity: "booking", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, logs, 1)
	assert.Equal(t, "booking_created", logs[0].Action)
}
