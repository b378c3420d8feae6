package review

import (
	"context"

	"github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Review) error
	ExistsForBooking(ctx context.Context, bookingID string) (bool, error)
	ListForBarber(ctx context.Context, barberID string) ([]models.Review, error)
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}

// CanReview checks the booking side of the rules: the reviewer is the
// booking's customer and the appointment is completed.
func CanReview(customerID string, b *models.Booking) error {
	if b.CustomerID != customerID {
		return httperr.ErrBusiness("forbidden")
	}
	if booking.Status(b.Status) != booking.StatusCompleted {
		return httperr.ErrBusiness("booking_not_completed")
	}
	return nil
}

// Average returns the mean rating, 0 for no reviews.
func Average(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
