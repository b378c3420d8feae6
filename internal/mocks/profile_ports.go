package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type DirectoryCache struct {
	mock.Mock
}

var _ profile.DirectoryCache = (*DirectoryCache)(nil)

func (m *DirectoryCache) Get(ctx context.Context) ([]models.User, bool, error) {
	ret := m.Called(ctx)

	var list []models.User
	if v := ret.Get(0); v != nil {
		list = v.([]models.User)
	}
	return list, ret.Bool(1), ret.Error(2)
}

func (m *DirectoryCache) Set(ctx context.Context, barbers []models.User) error {
	return m.Called(ctx, barbers).Error(0)
}

func (m *DirectoryCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type PhotoStore struct {
	mock.Mock
}

var _ profile.PhotoStore = (*PhotoStore)(nil)

func (m *PhotoStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	ret := m.Called(ctx, key, contentType, data)
	return ret.String(0), ret.Error(1)
}

type PhotoEncoder struct {
	mock.Mock
}

var _ profile.PhotoEncoder = (*PhotoEncoder)(nil)

func (m *PhotoEncoder) Encode(data []byte) ([]byte, string, error) {
	ret := m.Called(data)

	var out []byte
	if v := ret.Get(0); v != nil {
		out = v.([]byte)
	}
	return out, ret.String(1), ret.Error(2)
}

type Billing struct {
	mock.Mock
}

var _ profile.Billing = (*Billing)(nil)

func (m *Billing) StartSubscription(ctx context.Context, req profile.SubscriptionRequest) (*profile.Checkout, error) {
	ret := m.Called(ctx, req)

	var c *profile.Checkout
	if v := ret.Get(0); v != nil {
		c = v.(*profile.Checkout)
	}
	return c, ret.Error(1)
}

func (m *Billing) SubscriptionStatus(ctx context.Context, subscriptionID string) (string, error) {
	ret := m.Called(ctx, subscriptionID)
	return ret.String(0), ret.Error(1)
}

type TokenIssuer struct {
	mock.Mock
}

func (m *TokenIssuer) Issue(u *models.User) (string, error) {
	ret := m.Called(u)
	return ret.String(0), ret.Error(1)
}
