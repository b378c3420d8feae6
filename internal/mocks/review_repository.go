package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barbermatch/internal/domain/review"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// ReviewRepository is a mock of review.Repository.
type ReviewRepository struct {
	mock.Mock
}

var _ review.Repository = (*ReviewRepository)(nil)

func (m *ReviewRepository) Create(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	ret := m.Called(ctx, bookingID)
	return ret.Bool(0), ret.Error(1)
}

func (m *ReviewRepository) ListForBarber(ctx context.Context, barberID string) ([]models.Review, error) {
	ret := m.Called(ctx, barberID)

	var list []models.Review
	if v := ret.Get(0); v != nil {
		list = v.([]models.Review)
	}
	return list, ret.Error(1)
}
