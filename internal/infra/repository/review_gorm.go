package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbermatch/internal/domain/review"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

// Create relies on the unique booking_id index to close the race left open
// by the existence check.
func (r *ReviewGormRepository) Create(ctx context.Context, rv *models.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("review_already_exists")
		}
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *ReviewGormRepository) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check review: %w", err)
	}
	return count > 0, nil
}

func (r *ReviewGormRepository) ListForBarber(ctx context.Context, barberID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

var _ domain.Repository = (*ReviewGormRepository)(nil)
