package models

import (
	"time"

	"gorm.io/gorm"
)

// BrowserStorage is one persisted key of a browser's session storage.
// Keys are namespaced by browser id, e.g. "<sid>:token".
type BrowserStorage struct {
	StorageKey string    `gorm:"primaryKey;size:128" json:"storage_key"`
	Value      string    `gorm:"type:text;not null" json:"-"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index" json:"updated_at"`
}

func (BrowserStorage) TableName() string {
	return "browser_storage"
}

// AutoMigrate runs auto migration for the session storage table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BrowserStorage{},
	)
}
