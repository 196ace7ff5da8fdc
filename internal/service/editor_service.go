package service

import (
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/lshigami/QuizDraft/internal/richtext"
)

type EditorService interface {
	Render(payload string) (*dto.RenderResponse, error)
	PreviewFormula(expression string) dto.FormulaPreviewResponse
	InsertFormula(req dto.EditorInsertRequest) (*dto.EditorResponse, error)
	InsertImage(req dto.EditorInsertRequest) (*dto.EditorResponse, error)
}

type editorService struct {
	renderer ContentRenderer
}

func NewEditorService(renderer ContentRenderer) EditorService {
	return &editorService{renderer: renderer}
}

func (s *editorService) Render(payload string) (*dto.RenderResponse, error) {
	out, err := s.renderer.Render(payload)
	if err != nil {
		return nil, err
	}
	return &dto.RenderResponse{HTML: out}, nil
}

func (s *editorService) PreviewFormula(expression string) dto.FormulaPreviewResponse {
	out, msg := s.renderer.Preview(expression)
	return dto.FormulaPreviewResponse{HTML: out, Error: msg}
}

func (s *editorService) InsertFormula(req dto.EditorInsertRequest) (*dto.EditorResponse, error) {
	payload, err := richtext.InsertFormula(req.Payload, cursor(req), req.Value)
	if err != nil {
		return nil, err
	}
	return &dto.EditorResponse{Payload: payload}, nil
}

func (s *editorService) InsertImage(req dto.EditorInsertRequest) (*dto.EditorResponse, error) {
	payload, err := richtext.InsertImage(req.Payload, cursor(req), req.Value)
	if err != nil {
		return nil, err
	}
	return &dto.EditorResponse{Payload: payload}, nil
}

func cursor(req dto.EditorInsertRequest) int {
	if req.Index == nil {
		return 0
	}
	return *req.Index
}
