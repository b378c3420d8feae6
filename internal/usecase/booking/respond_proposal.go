package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type RespondToProposal struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
	now   func() time.Time
}

func NewRespondToProposal(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *RespondToProposal {
	return &RespondToProposal{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   time.Now,
	}
}

// Execute accepts (confirmed) or rejects (rejected_by_customer) the barber's
// proposal. Only a booking awaiting the customer's approval can be answered.
func (uc *RespondToProposal) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID string,
	accept bool,
) (*models.Booking, error) {

	b, err := uc.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.AuthorizeCustomer(actor, b); err != nil {
		return nil, err
	}

	expected := b.Version
	action := "booking_proposal_accepted"
	if accept {
		err = domain.AcceptProposal(b, uc.now())
	} else {
		action = "booking_proposal_rejected"
		err = domain.RejectProposal(b, uc.now())
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, b.ID, expected, domain.Status(b.Status)); err != nil {
		return nil, err
	}
	b.Version = expected + 1

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.UserID,
		Action:   action,
		Entity:   "booking",
		EntityID: b.ID,
	})

	uc.log.Info("proposal answered",
		zap.String("booking_id", b.ID),
		zap.String("status", b.Status),
	)

	return b, nil
}
