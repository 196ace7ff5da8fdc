package model

import "time"

// StorageSlot is a single named blob, used when the question store is kept in the database.
type StorageSlot struct {
	Key       string    `gorm:"primaryKey;type:varchar(128)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
