package author

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizDraft/internal/composer"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/lshigami/QuizDraft/internal/service"
	"github.com/lshigami/QuizDraft/internal/store"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	composerService    service.ComposerService
	questionService    service.QuestionService
	explanationService service.ExplanationService
}

func NewQuestionController(cs service.ComposerService, qs service.QuestionService, es service.ExplanationService) *QuestionController {
	return &QuestionController{composerService: cs, questionService: qs, explanationService: es}
}

// ComposeQuestion godoc
// @Summary Save a composed question
// @Description Validates the draft (text, type, options or NAT range, correct answers, explanation, taxonomy when sync is on), appends it to the question list and, when sync is enabled, forwards it to the question bank in the background.
// @Tags Questions
// @Accept json
// @Produce json
// @Param draft body dto.ComposeQuestionRequest true "Composer form"
// @Success 201 {object} dto.ComposeQuestionResponse "Saved question and a blank draft to reset the form to"
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 422 {object} dto.ErrorResponse "Draft failed validation"
// @Failure 500 {object} dto.ErrorResponse "Question could not be persisted"
// @Router /questions [post]
func (c *QuestionController) ComposeQuestion(ctx *gin.Context) {
	var req dto.ComposeQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("ComposeQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.composerService.Compose(ctx.Request.Context(), req)
	if err != nil {
		var verr *composer.ValidationError
		if errors.As(err, &verr) {
			ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: verr.Message, Details: []string{verr.Field}})
			return
		}
		log.Error().Err(err).Msg("ComposeQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// NewDraft godoc
// @Summary Blank composer form
// @Tags Questions
// @Produce json
// @Success 200 {object} dto.DraftResponse
// @Router /questions/draft [get]
func (c *QuestionController) NewDraft(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.composerService.NewDraft())
}

// GetAllQuestions godoc
// @Summary List saved questions
// @Description Questions in the order they were saved, with their raw editor markup.
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAllQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetRenderedQuestions godoc
// @Summary List saved questions for review
// @Description Same order as GET /questions, with text, options and explanation sanitized and every formula typeset as MathML. Formulas that fail to typeset show an inline error placeholder.
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.RenderedQuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/rendered [get]
func (c *QuestionController) GetRenderedQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetRenderedQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetRenderedQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to render questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// DeleteQuestion godoc
// @Summary Delete a saved question by position
// @Tags Questions
// @Produce json
// @Param index path int true "Zero-based position in the list"
// @Success 200 {object} dto.QuestionResponse "The removed question"
// @Failure 400 {object} dto.ErrorResponse "Index is not a number"
// @Failure 404 {object} dto.ErrorResponse "No question at that position"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{index} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question index format"})
		return
	}

	removed, err := c.questionService.DeleteQuestion(ctx.Request.Context(), index)
	if err != nil {
		if errors.Is(err, store.ErrIndexOutOfRange) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found", Details: []string{err.Error()}})
			return
		}
		log.Error().Err(err).Int("index", index).Msg("DeleteQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, removed)
}

// DraftExplanation godoc
// @Summary Draft an explanation with the assistant
// @Description Asks the configured language model for a short explanation of the correct answer. The result is returned both as editor markup and as plain text.
// @Tags Questions
// @Accept json
// @Produce json
// @Param draft body dto.ExplanationDraftRequest true "Question being composed"
// @Success 200 {object} dto.ExplanationDraftResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 502 {object} dto.ErrorResponse "Language model call failed"
// @Failure 503 {object} dto.ErrorResponse "Assistant not configured"
// @Router /questions/explanation-draft [post]
func (c *QuestionController) DraftExplanation(ctx *gin.Context) {
	var req dto.ExplanationDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.explanationService.DraftExplanation(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrAssistantDisabled) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Explanation assistant is not configured"})
			return
		}
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Failed to draft explanation", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
