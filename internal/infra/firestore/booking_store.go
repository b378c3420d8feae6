package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// BookingStore keeps bookings as documents of the "bookings" collection.
// Updates run in a transaction that compares the stored version first.
type BookingStore struct {
	client *firestore.Client
	now    func() time.Time
}

var _ domain.Repository = (*BookingStore)(nil)

func NewBookingStore(client *firestore.Client) *BookingStore {
	return &BookingStore{client: client, now: time.Now}
}

func (s *BookingStore) col() *firestore.CollectionRef {
	return s.client.Collection(bookingsCollection)
}

func (s *BookingStore) Create(ctx context.Context, b *models.Booking) (string, error) {
	ref := s.col().NewDoc()

	b.Version = 1
	b.UpdatedAt = s.now()
	wr, err := ref.Create(ctx, b)
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}

	// createdAt is a server timestamp; mirror it onto the caller's copy
	b.CreatedAt = wr.UpdateTime
	b.ID = ref.ID
	return ref.ID, nil
}

func (s *BookingStore) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	snap, err := s.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return decodeBooking(snap)
}

func (s *BookingStore) UpdateStatus(
	ctx context.Context,
	id string,
	expectedVersion int64,
	status domain.Status,
) error {
	return s.swap(ctx, id, expectedVersion, []firestore.Update{
		{Path: "status", Value: string(status)},
	})
}

func (s *BookingStore) UpdateProposedPrice(
	ctx context.Context,
	id string,
	expectedVersion int64,
	price float64,
	status domain.Status,
) error {
	return s.swap(ctx, id, expectedVersion, []firestore.Update{
		{Path: "proposedPriceByBarber", Value: price},
		{Path: "servicePrice", Value: price},
		{Path: "status", Value: string(status)},
	})
}

var errStale = httperr.ErrBusiness("booking_conflict")

func (s *BookingStore) swap(
	ctx context.Context,
	id string,
	expectedVersion int64,
	fields []firestore.Update,
) error {
	ref := s.col().Doc(id)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}

		var current models.Booking
		if err := snap.DataTo(&current); err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return errStale
		}

		updates := append(fields,
			firestore.Update{Path: "version", Value: expectedVersion + 1},
			firestore.Update{Path: "updatedAt", Value: s.now()},
		)
		return tx.Update(ref, updates)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errStale):
		return errStale
	case isNotFound(err):
		return httperr.ErrBusiness("booking_not_found")
	}
	return fmt.Errorf("update booking: %w", err)
}

func (s *BookingStore) ListForCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	q := s.col().
		Where("customerId", "==", customerID).
		OrderBy("appointmentAt", firestore.Desc)
	return s.list(ctx, q)
}

func (s *BookingStore) ListForBarber(ctx context.Context, barberID string, status domain.Status) ([]models.Booking, error) {
	q := s.col().Where("barberId", "==", barberID)
	if status != "" {
		q = q.Where("status", "==", string(status))
	}
	return s.list(ctx, q.OrderBy("appointmentAt", firestore.Asc))
}

func (s *BookingStore) list(ctx context.Context, q firestore.Query) ([]models.Booking, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]models.Booking, 0, len(snaps))
	for _, snap := range snaps {
		b, err := decodeBooking(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, nil
}

func decodeBooking(snap *firestore.DocumentSnapshot) (*models.Booking, error) {
	var b models.Booking
	if err := snap.DataTo(&b); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", snap.Ref.ID, err)
	}
	b.ID = snap.Ref.ID
	return &b, nil
}
