package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionRecord is the question bank's copy of a question submitted under a domain.
type QuestionRecord struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClientID    string         `gorm:"index" json:"client_id"` // Question.ID as generated by the composer
	DomainID    string         `gorm:"not null;index" json:"domain_id"`
	SubjectID   string         `gorm:"not null;index" json:"subject_id"`
	Type        string         `gorm:"not null" json:"type"`
	Text        string         `gorm:"type:text;not null" json:"text"`
	Options     datatypes.JSON `json:"options"`
	Explanation string         `gorm:"type:text" json:"explanation"`
	MinValue    float64        `json:"min_value"`
	MaxValue    float64        `json:"max_value"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
