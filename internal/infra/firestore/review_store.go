package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/review"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// ReviewStore keys each review document by its booking id, so a second
// review of the same booking fails the create.
type ReviewStore struct {
	client *firestore.Client
}

var _ domain.Repository = (*ReviewStore)(nil)

func NewReviewStore(client *firestore.Client) *ReviewStore {
	return &ReviewStore{client: client}
}

func (s *ReviewStore) col() *firestore.CollectionRef {
	return s.client.Collection(reviewsCollection)
}

func (s *ReviewStore) Create(ctx context.Context, rv *models.Review) error {
	ref := s.col().Doc(rv.BookingID)
	if _, err := ref.Create(ctx, rv); err != nil {
		if isAlreadyExists(err) {
			return httperr.ErrBusiness("review_already_exists")
		}
		return fmt.Errorf("create review: %w", err)
	}
	rv.ID = ref.ID
	return nil
}

func (s *ReviewStore) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	_, err := s.col().Doc(bookingID).Get(ctx)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("get review: %w", err)
}

func (s *ReviewStore) ListForBarber(ctx context.Context, barberID string) ([]models.Review, error) {
	snaps, err := s.col().
		Where("barberId", "==", barberID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]models.Review, 0, len(snaps))
	for _, snap := range snaps {
		var rv models.Review
		if err := snap.DataTo(&rv); err != nil {
			return nil, fmt.Errorf("decode review %s: %w", snap.Ref.ID, err)
		}
		rv.ID = snap.Ref.ID
		out = append(out, rv)
	}
	return out, nil
}
