package repository

import (
	"context"

	"github.com/lshigami/QuizDraft/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlotRepository interface {
	Get(ctx context.Context, key string) (*model.StorageSlot, error)
	Put(ctx context.Context, key, value string) error
}

type slotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) Get(ctx context.Context, key string) (*model.StorageSlot, error) {
	var slot model.StorageSlot
	if err := r.db.WithContext(ctx).Where(&model.StorageSlot{Key: key}).First(&slot).Error; err != nil {
		return nil, translate(err)
	}
	return &slot, nil
}

// Put inserts or overwrites the slot's value.
func (r *slotRepository) Put(ctx context.Context, key, value string) error {
	slot := model.StorageSlot{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}
