package repository

import (
	"context"

	"github.com/lshigami/QuizDraft/internal/model"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	FindByID(ctx context.Context, id string) (*model.Subject, error)
	FindByDomainAndName(ctx context.Context, domainID, name string) (*model.Subject, error)
	FindByDomainID(ctx context.Context, domainID string) ([]model.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) FindByID(ctx context.Context, id string) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.WithContext(ctx).First(&subject, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &subject, nil
}

func (r *subjectRepository) FindByDomainAndName(ctx context.Context, domainID, name string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).Where("domain_id = ? AND name = ?", domainID, name).First(&subject).Error
	if err != nil {
		return nil, translate(err)
	}
	return &subject, nil
}

func (r *subjectRepository) FindByDomainID(ctx context.Context, domainID string) ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.db.WithContext(ctx).Where("domain_id = ?", domainID).Order("name ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}
