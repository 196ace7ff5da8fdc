// Package store holds the ordered sequence of authored questions and mirrors
// it to a single persistent slot.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/rs/zerolog/log"
)

var ErrIndexOutOfRange = errors.New("question index out of range")

type QuestionStore struct {
	mu        sync.Mutex
	slot      Slot
	questions []model.Question
}

// NewQuestionStore rehydrates the sequence from slot. An empty slot, an
// unreadable slot and a corrupt payload all start an empty sequence.
func NewQuestionStore(ctx context.Context, slot Slot) *QuestionStore {
	s := &QuestionStore{slot: slot}

	data, err := slot.Load(ctx)
	switch {
	case errors.Is(err, ErrSlotEmpty):
		log.Info().Msg("Question slot is empty, starting with no questions")
		return s
	case err != nil:
		log.Error().Err(err).Msg("Failed to read question slot, starting with no questions")
		return s
	}

	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		log.Error().Err(err).Int("bytes", len(data)).Msg("Question slot holds invalid JSON, starting with no questions")
		return s
	}
	s.questions = questions
	log.Info().Int("count", len(questions)).Msg("Questions loaded from slot")
	return s
}

// List returns a copy of the sequence in insertion order.
func (s *QuestionStore) List() []model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

func (s *QuestionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

// Append adds q at the end, persists the whole sequence and returns q's
// index. Nothing changes if the slot write fails.
func (s *QuestionStore) Append(ctx context.Context, q model.Question) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Question, len(s.questions), len(s.questions)+1)
	copy(next, s.questions)
	next = append(next, q)
	if err := s.persist(ctx, next); err != nil {
		return -1, err
	}
	s.questions = next
	return len(next) - 1, nil
}

// Delete removes the question at index and persists the remainder.
func (s *QuestionStore) Delete(ctx context.Context, index int) (model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.questions) {
		return model.Question{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.questions))
	}
	removed := s.questions[index]
	next := make([]model.Question, 0, len(s.questions)-1)
	next = append(next, s.questions[:index]...)
	next = append(next, s.questions[index+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return model.Question{}, err
	}
	s.questions = next
	return removed, nil
}

func (s *QuestionStore) persist(ctx context.Context, questions []model.Question) error {
	if questions == nil {
		questions = []model.Question{}
	}
	data, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		log.Error().Err(err).Int("count", len(questions)).Msg("Failed to persist questions")
		return fmt.Errorf("persist questions: %w", err)
	}
	return nil
}
