package repository

import (
	"context"

	"github.com/lshigami/QuizDraft/internal/model"
	"gorm.io/gorm"
)

type QuestionRecordRepository interface {
	Create(ctx context.Context, record *model.QuestionRecord) error
	FindByID(ctx context.Context, id string) (*model.QuestionRecord, error)
	FindByDomainID(ctx context.Context, domainID string) ([]model.QuestionRecord, error)
	FindBySubjectID(ctx context.Context, subjectID string) ([]model.QuestionRecord, error)
}

type questionRecordRepository struct {
	db *gorm.DB
}

func NewQuestionRecordRepository(db *gorm.DB) QuestionRecordRepository {
	return &questionRecordRepository{db: db}
}

func (r *questionRecordRepository) Create(ctx context.Context, record *model.QuestionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *questionRecordRepository) FindByID(ctx context.Context, id string) (*model.QuestionRecord, error) {
	var record model.QuestionRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func (r *questionRecordRepository) FindByDomainID(ctx context.Context, domainID string) ([]model.QuestionRecord, error) {
	var records []model.QuestionRecord
	if err := r.db.WithContext(ctx).Where("domain_id = ?", domainID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *questionRecordRepository) FindBySubjectID(ctx context.Context, subjectID string) ([]model.QuestionRecord, error) {
	var records []model.QuestionRecord
	if err := r.db.WithContext(ctx).Where("subject_id = ?", subjectID).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
