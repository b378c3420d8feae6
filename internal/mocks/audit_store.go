package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// AuditStore is a mock of audit.Store.
type AuditStore struct {
	mock.Mock
}

var _ audit.Store = (*AuditStore)(nil)

func (m *AuditStore) Save(ctx context.Context, entry *models.AuditLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *AuditStore) List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	ret := m.Called(ctx, f)

	var list []models.AuditLog
	if v := ret.Get(0); v != nil {
		list = v.([]models.AuditLog)
	}
	return list, ret.Get(1).(int64), ret.Error(2)
}
