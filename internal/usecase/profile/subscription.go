package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	domain "github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
)

// ======================================================
// START
// ======================================================

type StartSubscription struct {
	users   domain.Repository
	billing domain.Billing
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewStartSubscription(
	users domain.Repository,
	billing domain.Billing,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *StartSubscription {
	return &StartSubscription{
		users:   users,
		billing: billing,
		audit:   audit,
		log:     log,
	}
}

// Execute opens a checkout for the barber's directory listing. The stored
// subscription stays inactive until the provider authorizes it.
func (uc *StartSubscription) Execute(ctx context.Context, userID string) (*domain.Checkout, error) {
	if uc.billing == nil {
		return nil, httperr.ErrBusiness("payments_unavailable")
	}

	u, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.Role != domain.RoleBarber {
		return nil, httperr.ErrBusiness("not_a_barber")
	}

	checkout, err := uc.billing.StartSubscription(ctx, domain.SubscriptionRequest{
		UserID: u.ID,
		Email:  u.Email,
		Reason: "Barbermatch directory listing",
	})
	if err != nil {
		return nil, err
	}

	active := checkout.Status == domain.SubscriptionAuthorized
	if err := uc.users.SetSubscription(ctx, u.ID, checkout.SubscriptionID, active); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "subscription_started",
		Entity:   "subscription",
		EntityID: checkout.SubscriptionID,
	})
	uc.log.Info("subscription started",
		zap.String("user_id", u.ID),
		zap.String("subscription_id", checkout.SubscriptionID),
	)

	return checkout, nil
}

// ======================================================
// SYNC (webhook)
// ======================================================

type SyncSubscription struct {
	users   domain.Repository
	billing domain.Billing
	cache   domain.DirectoryCache
	audit   *audit.Dispatcher
	log     *zap.Logger
}

func NewSyncSubscription(
	users domain.Repository,
	billing domain.Billing,
	cache domain.DirectoryCache,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *SyncSubscription {
	return &SyncSubscription{
		users:   users,
		billing: billing,
		cache:   cache,
		audit:   audit,
		log:     log,
	}
}

// Execute re-reads the subscription from the provider; notification bodies
// are never trusted for the status itself.
func (uc *SyncSubscription) Execute(ctx context.Context, subscriptionID string) error {
	if uc.billing == nil {
		return httperr.ErrBusiness("payments_unavailable")
	}
	if subscriptionID == "" {
		return httperr.ErrBusiness("invalid_request")
	}

	status, err := uc.billing.SubscriptionStatus(ctx, subscriptionID)
	if err != nil {
		return err
	}

	u, err := uc.users.FindBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		if httperr.IsBusiness(err, "user_not_found") {
			return httperr.ErrBusiness("subscription_not_found")
		}
		return err
	}

	active := status == domain.SubscriptionAuthorized
	if u.SubscriptionActive == active {
		return nil
	}

	if err := uc.users.SetSubscription(ctx, u.ID, subscriptionID, active); err != nil {
		return err
	}
	invalidate(ctx, uc.cache, uc.log)

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "subscription_synced",
		Entity:   "subscription",
		EntityID: subscriptionID,
		Metadata: map[string]any{"status": status, "active": active},
	})
	uc.log.Info("subscription synced",
		zap.String("user_id", u.ID),
		zap.String("status", status),
	)

	return nil
}
