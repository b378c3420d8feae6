package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/barbermatch/internal/models"
)

// Filter narrows an audit listing. Zero values are ignored.
type Filter struct {
	UserID string
	Action string
	Entity string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

type Store interface {
	Save(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.store.Save(ctx, &entry)
}
