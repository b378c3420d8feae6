package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id" firestore:"-"`

	UserID   string `gorm:"size:128;index" json:"user_id" firestore:"userId"`
	Action   string `gorm:"size:50;not null" json:"action" firestore:"action"`
	Entity   string `gorm:"size:50" json:"entity" firestore:"entity"`
	EntityID string `gorm:"size:64" json:"entity_id" firestore:"entityId"`
	Metadata string `gorm:"type:text" json:"metadata" firestore:"metadata"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
