package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KVEntry is one key of the persistent key-value store.
type KVEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Key       string    `gorm:"size:320;not null;uniqueIndex:idx_kv_entries_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate ensures UUID is set before creation
func (e *KVEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
