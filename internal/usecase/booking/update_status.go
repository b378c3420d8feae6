package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
	rawStatus string,
) (*models.Booking, error) {

	target, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeTarget(actor, b, target); err != nil {
		return nil, err
	}

	from := b.Status
	expected := b.Version
	if err := domain.SetStatus(b, target, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, b.ID, expected, target); err != nil {
		return nil, err
	}
	b.Version = expected + 1

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.UserID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   b.Status,
		},
	})

	uc.log.Info("booking status updated",
		zap.String("booking_id", b.ID),
		zap.String("from", from),
		zap.String("to", b.Status),
	)

	return b, nil
}
