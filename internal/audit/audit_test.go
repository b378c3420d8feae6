package audit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbermatch/internal/models"
)

func newStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	return NewGormStore(db)
}

func TestDispatcherWritesQueuedEventsOnClose(t *testing.T) {
	store := newStore(t)
	d := NewDispatcher(New(store), zap.NewNop())

	d.Dispatch(Event{UserID: "barber-1", Action: "booking_confirmed", Entity: "booking", EntityID: "b-1"})
	d.Dispatch(Event{
		UserID:   "barber-1",
		Action:   "price_proposed",
		Entity:   "booking",
		EntityID: "b-2",
		Metadata: map[string]any{"price": 50},
	})
	d.Close()

	logs, total, err := store.List(context.Background(), Filter{UserID: "barber-1", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, logs, 2)

	var proposed models.AuditLog
	for _, l := range logs {
		if l.Action == "price_proposed" {
			proposed = l
		}
	}
	assert.JSONEq(t, `{"price":50}`, proposed.Metadata)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	store := newStore(t)
	d := NewDispatcher(New(store), zap.NewNop())
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{UserID: "cust-1", Action: "booking_cancelled", Entity: "booking", EntityID: "b-9"})
	})
	d.Close()

	_, total, err := store.List(context.Background(), Filter{UserID: "cust-1"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGormStoreFilters(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	l := New(store)

	require.NoError(t, l.Log(ctx, Event{UserID: "u1", Action: "booking_created", Entity: "booking"}))
	require.NoError(t, l.Log(ctx, Event{UserID: "u1", Action: "review_submitted", Entity: "review"}))
	require.NoError(t, l.Log(ctx, Event{UserID: "u2", Action: "booking_created", Entity: "booking"}))

	logs, total, err := store.List(ctx, Filter{UserID: "u1", Entity: "review", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "review_submitted", logs[0].Action)

	_, total, err = store.List(ctx, Filter{From: time.Now().Add(time.Hour), Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
}
