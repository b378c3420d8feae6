package booking

import (
	"context"

	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// Repository persists booking documents. Update methods are compare-and-swap
// on Version: they fail with booking_conflict when the stored version is not
// expectedVersion, and with booking_not_found when the id is unknown.
type Repository interface {
	Create(
		ctx context.Context,
		b *models.Booking,
	) (string, error)

	FindByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateStatus(
		ctx context.Context,
		id string,
		expectedVersion int64,
		status Status,
	) error

	UpdateProposedPrice(
		ctx context.Context,
		id string,
		expectedVersion int64,
		price float64,
		status Status,
	) error

	ListForCustomer(
		ctx context.Context,
		customerID string,
	) ([]models.Booking, error)

	ListForBarber(
		ctx context.Context,
		barberID string,
		status Status,
	) ([]models.Booking, error)
}
