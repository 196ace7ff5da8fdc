package repository

import (
	"context"

	"github.com/lshigami/QuizDraft/internal/model"
	"gorm.io/gorm"
)

type DomainRepository interface {
	Create(ctx context.Context, domain *model.Domain) error
	FindByID(ctx context.Context, id string) (*model.Domain, error)
	FindByName(ctx context.Context, name string) (*model.Domain, error)
	FindAll(ctx context.Context) ([]model.Domain, error)
}

type domainRepository struct {
	db *gorm.DB
}

func NewDomainRepository(db *gorm.DB) DomainRepository {
	return &domainRepository{db: db}
}

func (r *domainRepository) Create(ctx context.Context, domain *model.Domain) error {
	return r.db.WithContext(ctx).Create(domain).Error
}

func (r *domainRepository) FindByID(ctx context.Context, id string) (*model.Domain, error) {
	var domain model.Domain
	if err := r.db.WithContext(ctx).First(&domain, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &domain, nil
}

func (r *domainRepository) FindByName(ctx context.Context, name string) (*model.Domain, error) {
	var domain model.Domain
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&domain).Error; err != nil {
		return nil, translate(err)
	}
	return &domain, nil
}

func (r *domainRepository) FindAll(ctx context.Context) ([]model.Domain, error) {
	var domains []model.Domain
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&domains).Error; err != nil {
		return nil, err
	}
	return domains, nil
}
