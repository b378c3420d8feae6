package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type ProposePrice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewProposePrice(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ProposePrice {
	return &ProposePrice{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

// Execute records the barber's quote. A non-positive price fails before the
// booking is read, so nothing is written.
func (uc *ProposePrice) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
	price float64,
) (*models.Booking, error) {

	if price <= 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	b, err := uc.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeBarber(actor, b); err != nil {
		return nil, err
	}

	expected := b.Version
	if err := domain.ProposePrice(b, price, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateProposedPrice(
		ctx,
		b.ID,
		expected,
		price,
		domain.Status(b.Status),
	); err != nil {
		return nil, err
	}
	b.Version = expected + 1

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.UserID,
		Action:   "booking_price_proposed",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"price": price},
	})

	uc.log.Info("price proposed",
		zap.String("booking_id", b.ID),
		zap.Float64("price", price),
	)

	return b, nil
}
