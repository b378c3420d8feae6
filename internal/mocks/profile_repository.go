package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// ProfileRepository is a mock of profile.Repository.
type ProfileRepository struct {
	mock.Mock
}

var _ profile.Repository = (*ProfileRepository)(nil)

func (m *ProfileRepository) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *ProfileRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	ret := m.Called(ctx, id)
	return userOrNil(ret.Get(0)), ret.Error(1)
}

func (m *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ret := m.Called(ctx, email)
	return userOrNil(ret.Get(0)), ret.Error(1)
}

func (m *ProfileRepository) Update(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *ProfileRepository) ListBarbers(ctx context.Context) ([]models.User, error) {
	ret := m.Called(ctx)

	var list []models.User
	if v := ret.Get(0); v != nil {
		list = v.([]models.User)
	}
	return list, ret.Error(1)
}

func (m *ProfileRepository) SetSubscription(ctx context.Context, userID, subscriptionID string, active bool) error {
	return m.Called(ctx, userID, subscriptionID, active).Error(0)
}

func (m *ProfileRepository) FindBySubscriptionID(ctx context.Context, subscriptionID string) (*models.User, error) {
	ret := m.Called(ctx, subscriptionID)
	return userOrNil(ret.Get(0)), ret.Error(1)
}

func userOrNil(v any) *models.User {
	if v == nil {
		return nil
	}
	return v.(*models.User)
}
