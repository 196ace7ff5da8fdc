package model

import (
	"time"

	"gorm.io/gorm"
)

type Domain struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string         `gorm:"not null;uniqueIndex" json:"name"`
	Subjects  []Subject      `gorm:"foreignKey:DomainID" json:"-"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type Subject struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	DomainID  string         `gorm:"not null;index;uniqueIndex:idx_subject_domain_name" json:"domain_id"`
	Name      string         `gorm:"not null;uniqueIndex:idx_subject_domain_name" json:"name"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
