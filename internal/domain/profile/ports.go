package profile

import (
	"context"

	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// DirectoryCache holds the last barber listing read from the store.
type DirectoryCache interface {
	Get(ctx context.Context) ([]models.User, bool, error)
	Set(ctx context.Context, barbers []models.User) error
	Invalidate(ctx context.Context) error
}

// PhotoStore keeps uploaded profile photos and returns their public URL.
type PhotoStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Checkout is a started listing subscription awaiting payment.
type Checkout struct {
	SubscriptionID string
	URL            string
	Status         string
}

type SubscriptionRequest struct {
	UserID string
	Email  string
	Reason string
}

// Billing starts and reads recurring listing subscriptions.
type Billing interface {
	StartSubscription(ctx context.Context, req SubscriptionRequest) (*Checkout, error)
	SubscriptionStatus(ctx context.Context, subscriptionID string) (string, error)
}

// SubscriptionAuthorized is the provider status of a paying subscription.
const SubscriptionAuthorized = "authorized"

// PhotoEncoder normalizes an uploaded photo before it is stored.
type PhotoEncoder interface {
	Encode(data []byte) (out []byte, contentType string, err error)
}
