package service

import (
	"context"

	"github.com/lshigami/QuizDraft/internal/model"
)

// QuestionStore is the ordered question sequence backing the author API.
type QuestionStore interface {
	List() []model.Question
	Append(ctx context.Context, q model.Question) (int, error)
	Delete(ctx context.Context, index int) (model.Question, error)
}

// ContentRenderer turns editor markup into display HTML.
type ContentRenderer interface {
	Render(payload string) (string, error)
	Preview(expr string) (html string, errMessage string)
}

// QuestionSyncer forwards a saved question to the question bank without
// blocking the caller.
type QuestionSyncer interface {
	Submit(domainID string, q model.Question)
}

// CatalogClient reads the question bank's taxonomy.
type CatalogClient interface {
	ListDomains(ctx context.Context) ([]model.Domain, error)
	ListSubjects(ctx context.Context, domainID string) ([]model.Subject, error)
}
