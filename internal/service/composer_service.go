package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizDraft/internal/composer"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/rs/zerolog/log"
)

type ComposerService interface {
	// Compose validates the request, appends the question to the store and,
	// when sync is on, hands it to the bank syncer. Validation failures are
	// returned as *composer.ValidationError.
	Compose(ctx context.Context, req dto.ComposeQuestionRequest) (*dto.ComposeQuestionResponse, error)
	NewDraft() dto.DraftResponse
}

type composerService struct {
	composer *composer.Composer
	store    QuestionStore
	syncer   QuestionSyncer // nil when sync is disabled
}

func NewComposerService(c *composer.Composer, store QuestionStore, syncer QuestionSyncer) ComposerService {
	return &composerService{composer: c, store: store, syncer: syncer}
}

func (s *composerService) Compose(ctx context.Context, req dto.ComposeQuestionRequest) (*dto.ComposeQuestionResponse, error) {
	var draft composer.Draft
	if err := copier.Copy(&draft, &req); err != nil {
		return nil, fmt.Errorf("map compose request: %w", err)
	}

	question, err := s.composer.Build(draft)
	if err != nil {
		log.Info().Str("reason", err.Error()).Msg("Compose rejected draft")
		return nil, err
	}

	index, err := s.store.Append(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	log.Info().Str("question_id", question.ID).Int("index", index).Str("type", string(question.Type)).Msg("Question saved")

	resp := dto.ComposeQuestionResponse{Index: index, NextDraft: s.NewDraft()}
	if err := copier.Copy(&resp.Question, &question); err != nil {
		return nil, fmt.Errorf("map saved question: %w", err)
	}
	if s.syncer != nil {
		s.syncer.Submit(draft.DomainID, question)
		resp.Synced = true
	}
	return &resp, nil
}

func (s *composerService) NewDraft() dto.DraftResponse {
	var resp dto.DraftResponse
	draft := composer.NewDraft()
	if err := copier.Copy(&resp, &draft); err != nil {
		log.Error().Err(err).Msg("Failed to map blank draft")
	}
	return resp
}

// SeededIDGenerator returns an id generator that continues after every id
// already held by store. A nil now uses the wall clock.
func SeededIDGenerator(store QuestionStore, now func() time.Time) *composer.IDGenerator {
	ids := composer.NewIDGenerator(now)
	for _, q := range store.List() {
		ids.Observe(q.ID)
	}
	return ids
}
