package profile

import (
	"context"

	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	ListBarbers(ctx context.Context) ([]models.User, error)

	SetSubscription(ctx context.Context, userID, subscriptionID string, active bool) error
	FindBySubscriptionID(ctx context.Context, subscriptionID string) (*models.User, error)
}
