package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	GetAllQuestions() ([]dto.QuestionResponse, error)
	GetRenderedQuestions() ([]dto.RenderedQuestionResponse, error)
	DeleteQuestion(ctx context.Context, index int) (*dto.QuestionResponse, error)
}

type questionService struct {
	store    QuestionStore
	renderer ContentRenderer
}

func NewQuestionService(store QuestionStore, renderer ContentRenderer) QuestionService {
	return &questionService{store: store, renderer: renderer}
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions := s.store.List()
	resp := make([]dto.QuestionResponse, 0, len(questions))
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, fmt.Errorf("map questions: %w", err)
	}
	return resp, nil
}

func (s *questionService) GetRenderedQuestions() ([]dto.RenderedQuestionResponse, error) {
	questions := s.store.List()
	resp := make([]dto.RenderedQuestionResponse, 0, len(questions))
	for i, q := range questions {
		rendered, err := s.renderQuestion(q)
		if err != nil {
			log.Error().Err(err).Str("question_id", q.ID).Msg("Failed to render question")
			return nil, err
		}
		rendered.Index = i
		resp = append(resp, *rendered)
	}
	return resp, nil
}

func (s *questionService) renderQuestion(q model.Question) (*dto.RenderedQuestionResponse, error) {
	text, err := s.renderer.Render(q.Text)
	if err != nil {
		return nil, fmt.Errorf("render question %s text: %w", q.ID, err)
	}
	explanation, err := s.renderer.Render(q.Explanation)
	if err != nil {
		return nil, fmt.Errorf("render question %s explanation: %w", q.ID, err)
	}
	options := make([]dto.RenderedOption, 0, len(q.Options))
	for i, o := range q.Options {
		optionHTML, err := s.renderer.Render(o.Text)
		if err != nil {
			return nil, fmt.Errorf("render question %s option %d: %w", q.ID, i+1, err)
		}
		options = append(options, dto.RenderedOption{HTML: optionHTML, IsCorrect: o.IsCorrect})
	}
	return &dto.RenderedQuestionResponse{
		ID:          q.ID,
		Type:        string(q.Type),
		Text:        text,
		Options:     options,
		Explanation: explanation,
		MinValue:    q.MinValue,
		MaxValue:    q.MaxValue,
		SubjectID:   q.SubjectID,
	}, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, index int) (*dto.QuestionResponse, error) {
	removed, err := s.store.Delete(ctx, index)
	if err != nil {
		return nil, err
	}
	log.Info().Str("question_id", removed.ID).Int("index", index).Msg("Question deleted")
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &removed); err != nil {
		return nil, fmt.Errorf("map deleted question: %w", err)
	}
	return &resp, nil
}
