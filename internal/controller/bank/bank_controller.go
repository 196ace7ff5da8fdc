// Package bank serves the question bank API the authoring client syncs
// against: a catalog of domains and subjects plus accepted questions.
package bank

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizDraft/internal/composer"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/lshigami/QuizDraft/internal/repository"
	"github.com/lshigami/QuizDraft/internal/service"
	"github.com/rs/zerolog/log"
)

type BankController struct {
	bankService service.BankService
}

func NewBankController(bankService service.BankService) *BankController {
	return &BankController{bankService: bankService}
}

// RegisterRoutes mounts the bank API on group, normally /api/v1/bank.
func (c *BankController) RegisterRoutes(group *gin.RouterGroup) {
	domains := group.Group("/domains")
	{
		domains.GET("", c.ListDomains)
		domains.GET("/:domain_id/subjects", c.ListSubjects)
		domains.GET("/:domain_id/questions", c.ListQuestions)
		domains.POST("/:domain_id/questions/add", c.AddQuestion)
	}
}

// ListDomains godoc
// @Summary (Bank) List domains
// @Tags Bank
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]dto.DomainResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bank/domains [get]
func (c *BankController) ListDomains(ctx *gin.Context) {
	domains, err := c.bankService.ListDomains(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("ListDomains: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve domains", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: domains})
}

// ListSubjects godoc
// @Summary (Bank) List subjects of a domain
// @Tags Bank
// @Produce json
// @Param domain_id path string true "Domain ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.SubjectResponse}
// @Failure 404 {object} dto.ErrorResponse "Domain not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bank/domains/{domain_id}/subjects [get]
func (c *BankController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.bankService.ListSubjects(ctx.Request.Context(), ctx.Param("domain_id"))
	if err != nil {
		c.fail(ctx, "ListSubjects", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: subjects})
}

// ListQuestions godoc
// @Summary (Bank) List questions accepted into a domain
// @Tags Bank
// @Produce json
// @Param domain_id path string true "Domain ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.QuestionRecordResponse}
// @Failure 404 {object} dto.ErrorResponse "Domain not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bank/domains/{domain_id}/questions [get]
func (c *BankController) ListQuestions(ctx *gin.Context) {
	questions, err := c.bankService.ListQuestions(ctx.Request.Context(), ctx.Param("domain_id"))
	if err != nil {
		c.fail(ctx, "ListQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Data: questions})
}

// AddQuestion godoc
// @Summary (Bank) Add a question to a domain
// @Description Accepts a question in the canonical schema. The subject must belong to the domain in the path.
// @Tags Bank
// @Accept json
// @Produce json
// @Param domain_id path string true "Domain ID"
// @Param question body dto.BankQuestionRequest true "Canonical question"
// @Success 201 {object} dto.DataResponse{data=dto.QuestionRecordResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed body or subject outside the domain"
// @Failure 404 {object} dto.ErrorResponse "Domain not found"
// @Failure 422 {object} dto.ErrorResponse "Question failed validation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bank/domains/{domain_id}/questions/add [post]
func (c *BankController) AddQuestion(ctx *gin.Context) {
	var req dto.BankQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AddQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	record, err := c.bankService.AddQuestion(ctx.Request.Context(), ctx.Param("domain_id"), req)
	if err != nil {
		c.fail(ctx, "AddQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.DataResponse{Data: record})
}

func (c *BankController) fail(ctx *gin.Context, op string, err error) {
	var verr *composer.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Domain not found", Details: []string{err.Error()}})
	case errors.Is(err, service.ErrSubjectNotInDomain):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Subject does not belong to this domain", Details: []string{err.Error()}})
	case errors.As(err, &verr):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: verr.Message, Details: []string{verr.Field}})
	default:
		log.Error().Err(err).Msg(op + ": Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error", Details: []string{err.Error()}})
	}
}
