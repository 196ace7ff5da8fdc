package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/QuizDraft/internal/composer"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/lshigami/QuizDraft/internal/model"
	"github.com/lshigami/QuizDraft/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// ErrSubjectNotInDomain is returned when a question names a subject that
// does not belong to the target domain.
var ErrSubjectNotInDomain = errors.New("subject does not belong to domain")

// BankService serves the question bank: the taxonomy and the questions
// submitted under it.
type BankService interface {
	ListDomains(ctx context.Context) ([]dto.DomainResponse, error)
	ListSubjects(ctx context.Context, domainID string) ([]dto.SubjectResponse, error)
	AddQuestion(ctx context.Context, domainID string, req dto.BankQuestionRequest) (*dto.QuestionRecordResponse, error)
	ListQuestions(ctx context.Context, domainID string) ([]dto.QuestionRecordResponse, error)
}

type bankService struct {
	domainRepo   repository.DomainRepository
	subjectRepo  repository.SubjectRepository
	questionRepo repository.QuestionRecordRepository
	validator    *composer.Composer
}

func NewBankService(
	domainRepo repository.DomainRepository,
	subjectRepo repository.SubjectRepository,
	questionRepo repository.QuestionRecordRepository,
) BankService {
	return &bankService{
		domainRepo:   domainRepo,
		subjectRepo:  subjectRepo,
		questionRepo: questionRepo,
		validator:    composer.New(false, nil),
	}
}

func (s *bankService) ListDomains(ctx context.Context) ([]dto.DomainResponse, error) {
	domains, err := s.domainRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	resp := []dto.DomainResponse{}
	if err := copier.Copy(&resp, &domains); err != nil {
		return nil, fmt.Errorf("map domains: %w", err)
	}
	return resp, nil
}

func (s *bankService) ListSubjects(ctx context.Context, domainID string) ([]dto.SubjectResponse, error) {
	if _, err := s.domainRepo.FindByID(ctx, domainID); err != nil {
		return nil, fmt.Errorf("domain %s: %w", domainID, err)
	}
	subjects, err := s.subjectRepo.FindByDomainID(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	resp := []dto.SubjectResponse{}
	if err := copier.Copy(&resp, &subjects); err != nil {
		return nil, fmt.Errorf("map subjects: %w", err)
	}
	return resp, nil
}

func (s *bankService) AddQuestion(ctx context.Context, domainID string, req dto.BankQuestionRequest) (*dto.QuestionRecordResponse, error) {
	if _, err := s.domainRepo.FindByID(ctx, domainID); err != nil {
		return nil, fmt.Errorf("domain %s: %w", domainID, err)
	}
	subject, err := s.subjectRepo.FindByID(ctx, req.SubjectID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && subject.DomainID != domainID) {
		log.Warn().Str("domain_id", domainID).Str("subject_id", req.SubjectID).Msg("Rejected question for subject outside domain")
		return nil, fmt.Errorf("subject %s: %w", req.SubjectID, ErrSubjectNotInDomain)
	}
	if err != nil {
		return nil, fmt.Errorf("find subject: %w", err)
	}

	var draft composer.Draft
	if err := copier.Copy(&draft, &req); err != nil {
		return nil, fmt.Errorf("map bank question: %w", err)
	}
	if err := s.validator.Validate(&draft); err != nil {
		return nil, err
	}

	options, err := json.Marshal(draft.Options)
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	if draft.Options == nil {
		options = []byte("[]")
	}
	record := model.QuestionRecord{
		ID:          uuid.NewString(),
		ClientID:    req.ID,
		DomainID:    domainID,
		SubjectID:   subject.ID,
		Type:        string(draft.Type),
		Text:        draft.Text,
		Options:     datatypes.JSON(options),
		Explanation: draft.Explanation,
		MinValue:    draft.MinValue,
		MaxValue:    draft.MaxValue,
	}
	if err := s.questionRepo.Create(ctx, &record); err != nil {
		log.Error().Err(err).Str("domain_id", domainID).Msg("Failed to store bank question")
		return nil, fmt.Errorf("store question: %w", err)
	}
	log.Info().Str("record_id", record.ID).Str("client_id", record.ClientID).Str("domain_id", domainID).Msg("Bank question added")
	return toRecordResponse(record)
}

func (s *bankService) ListQuestions(ctx context.Context, domainID string) ([]dto.QuestionRecordResponse, error) {
	if _, err := s.domainRepo.FindByID(ctx, domainID); err != nil {
		return nil, fmt.Errorf("domain %s: %w", domainID, err)
	}
	records, err := s.questionRepo.FindByDomainID(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	resp := make([]dto.QuestionRecordResponse, 0, len(records))
	for _, r := range records {
		item, err := toRecordResponse(r)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *item)
	}
	return resp, nil
}

func toRecordResponse(r model.QuestionRecord) (*dto.QuestionRecordResponse, error) {
	resp := dto.QuestionRecordResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		DomainID:    r.DomainID,
		SubjectID:   r.SubjectID,
		Type:        r.Type,
		Text:        r.Text,
		Options:     []dto.OptionDTO{},
		Explanation: r.Explanation,
		MinValue:    r.MinValue,
		MaxValue:    r.MaxValue,
		CreatedAt:   r.CreatedAt,
	}
	if len(r.Options) > 0 {
		if err := json.Unmarshal(r.Options, &resp.Options); err != nil {
			return nil, fmt.Errorf("decode options of %s: %w", r.ID, err)
		}
	}
	return &resp, nil
}
