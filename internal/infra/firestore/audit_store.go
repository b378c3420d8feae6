package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"github.com/BruksfildServices01/barbermatch/internal/audit"
	"github.com/BruksfildServices01/barbermatch/internal/models"
)

type AuditStore struct {
	client *firestore.Client
	now    func() time.Time
}

var _ audit.Store = (*AuditStore)(nil)

func NewAuditStore(client *firestore.Client) *AuditStore {
	return &AuditStore{client: client, now: time.Now}
}

func (s *AuditStore) Save(ctx context.Context, entry *models.AuditLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	if _, err := s.client.Collection(auditCollection).NewDoc().Create(ctx, entry); err != nil {
		return fmt.Errorf("save audit log: %w", err)
	}
	return nil
}

func (s *AuditStore) List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	q := s.client.Collection(auditCollection).Query

	if f.UserID != "" {
		q = q.Where("userId", "==", f.UserID)
	}
	if f.Action != "" {
		q = q.Where("action", "==", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity", "==", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("createdAt", ">=", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("createdAt", "<", f.To)
	}

	counted, err := q.NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}
	var total int64
	if v, ok := counted["total"].(*firestorepb.Value); ok {
		total = v.GetIntegerValue()
	}

	page := q.OrderBy("createdAt", firestore.Desc).Offset(f.Offset)
	if f.Limit > 0 {
		page = page.Limit(f.Limit)
	}

	snaps, err := page.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}

	logs := make([]models.AuditLog, 0, len(snaps))
	for _, snap := range snaps {
		var entry models.AuditLog
		if err := snap.DataTo(&entry); err != nil {
			return nil, 0, fmt.Errorf("decode audit log: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, total, nil
}
