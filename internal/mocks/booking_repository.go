package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barbermatch/internal/domain/booking"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// BookingRepository is a mock of booking.Repository.
type BookingRepository struct {
	mock.Mock
}

var _ booking.Repository = (*BookingRepository)(nil)

func (m *BookingRepository) Create(ctx context.Context, b *models.Booking) (string, error) {
	ret := m.Called(ctx, b)
	return ret.String(0), ret.Error(1)
}

func (m *BookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	ret := m.Called(ctx, id)

	var b *models.Booking
	if v := ret.Get(0); v != nil {
		b = v.(*models.Booking)
	}
	return b, ret.Error(1)
}

func (m *BookingRepository) UpdateStatus(ctx context.Context, id string, expectedVersion int64, status booking.Status) error {
	ret := m.Called(ctx, id, expectedVersion, status)
	return ret.Error(0)
}

func (m *BookingRepository) UpdateProposedPrice(ctx context.Context, id string, expectedVersion int64, price float64, status booking.Status) error {
	ret := m.Called(ctx, id, expectedVersion, price, status)
	return ret.Error(0)
}

func (m *BookingRepository) ListForCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	ret := m.Called(ctx, customerID)

	var list []models.Booking
	if v := ret.Get(0); v != nil {
		list = v.([]models.Booking)
	}
	return list, ret.Error(1)
}

func (m *BookingRepository) ListForBarber(ctx context.Context, barberID string, status booking.Status) ([]models.Booking, error) {
	ret := m.Called(ctx, barberID, status)

	var list []models.Booking
	if v := ret.Get(0); v != nil {
		list = v.([]models.Booking)
	}
	return list, ret.Error(1)
}
