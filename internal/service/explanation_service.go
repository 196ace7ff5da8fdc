package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/QuizDraft/config"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/lshigami/QuizDraft/internal/richtext"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// ErrAssistantDisabled is returned when no language model is configured.
var ErrAssistantDisabled = errors.New("explanation assistant is not configured")

// TextGenerator produces a completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator returns nil without error when GEMINI_API_KEY is unset,
// which leaves the assistant disabled.
func NewGeminiGenerator(cfg *config.Config) (TextGenerator, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Explanation assistant will be disabled.")
		return nil, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.Gemini.Model)
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) Close() error {
	return g.client.Close()
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return b.String(), nil
}

type ExplanationService interface {
	DraftExplanation(ctx context.Context, req dto.ExplanationDraftRequest) (*dto.ExplanationDraftResponse, error)
}

type explanationService struct {
	generator TextGenerator
}

func NewExplanationService(generator TextGenerator) ExplanationService {
	return &explanationService{generator: generator}
}

func (s *explanationService) DraftExplanation(ctx context.Context, req dto.ExplanationDraftRequest) (*dto.ExplanationDraftResponse, error) {
	if s.generator == nil {
		return nil, ErrAssistantDisabled
	}
	raw, err := s.generator.GenerateText(ctx, buildExplanationPrompt(req))
	if err != nil {
		log.Error().Err(err).Str("type", req.Type).Msg("Explanation draft failed")
		return nil, err
	}
	text := strings.TrimSpace(raw)
	markup, err := richtext.FromPlainText(text)
	if err != nil {
		return nil, fmt.Errorf("convert explanation: %w", err)
	}
	return &dto.ExplanationDraftResponse{Explanation: markup, PlainText: text}, nil
}

func buildExplanationPrompt(req dto.ExplanationDraftRequest) string {
	var b strings.Builder
	b.WriteString("You are helping a quiz author write the explanation for a quiz question.\n")
	b.WriteString("Write a short explanation (at most 5 sentences) of why the correct answer is correct.\n")
	b.WriteString("Answer in plain text. Write any mathematics as LaTeX between single dollar signs, for example $x^2$.\n\n")

	b.WriteString("Question:\n---\n")
	b.WriteString(richtext.PlainText(req.Text))
	b.WriteString("\n---\n\n")

	switch model.QuestionType(req.Type) {
	case model.QuestionTypeNAT:
		fmt.Fprintf(&b, "The answer is a number between %g and %g.\n", req.MinValue, req.MaxValue)
	default:
		b.WriteString("Options:\n")
		for i, o := range req.Options {
			mark := ""
			if o.IsCorrect {
				mark = " (correct)"
			}
			fmt.Fprintf(&b, "%d. %s%s\n", i+1, richtext.PlainText(o.Text), mark)
		}
	}
	return b.String()
}
