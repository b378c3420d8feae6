package review

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	"github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/review"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type SubmitReviewInput struct {
	Actor     booking.Actor
	BookingID string
	Rating    int
	Comment   string
}

type SubmitReview struct {
	reviews  domain.Repository
	bookings booking.Repository
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewSubmitReview(
	reviews domain.Repository,
	bookings booking.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *SubmitReview {
	return &SubmitReview{
		reviews:  reviews,
		bookings: bookings,
		audit:    audit,
		log:      log,
	}
}

func (uc *SubmitReview) Execute(
	ctx context.Context,
	in SubmitReviewInput,
) (*models.Review, error) {

	if in.Actor.Role != booking.RoleCustomer {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	b, err := uc.bookings.FindByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanReview(in.Actor.UserID, b); err != nil {
		return nil, err
	}

	// The unique index on booking_id still catches a concurrent duplicate.
	exists, err := uc.reviews.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("review_already_exists")
	}

	rv := &models.Review{
		BookingID:    b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		BarberID:     b.BarberID,
		Rating:       in.Rating,
		Comment:      strings.TrimSpace(in.Comment),
	}
	if err := uc.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.Actor.UserID,
		Action:   "review_submitted",
		Entity:   "review",
		EntityID: rv.ID,
		Metadata: map[string]any{
			"booking_id": b.ID,
			"rating":     in.Rating,
		},
	})

	uc.log.Info("review submitted",
		zap.String("booking_id", b.ID),
		zap.String("barber_id", b.BarberID),
		zap.Int("rating", in.Rating),
	)

	return rv, nil
}
