package author

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizDraft/internal/dto"
	"github.com/lshigami/QuizDraft/internal/richtext"
	"github.com/lshigami/QuizDraft/internal/service"
	"github.com/rs/zerolog/log"
)

type EditorController struct {
	editorService  service.EditorService
	catalogService service.CatalogService
}

func NewEditorController(es service.EditorService, cs service.CatalogService) *EditorController {
	return &EditorController{editorService: es, catalogService: cs}
}

// Render godoc
// @Summary Render editor markup
// @Description Sanitizes the payload and typesets every formula marker as MathML.
// @Tags Editor
// @Accept json
// @Produce json
// @Param payload body dto.RenderRequest true "Editor markup"
// @Success 200 {object} dto.RenderResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /render [post]
func (c *EditorController) Render(ctx *gin.Context) {
	var req dto.RenderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.editorService.Render(req.Payload)
	if err != nil {
		log.Error().Err(err).Msg("Render: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to render payload", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PreviewFormula godoc
// @Summary Live formula preview
// @Description Typesets one expression. An invalid expression still answers 200 with the error placeholder in html and the parser message in error.
// @Tags Editor
// @Accept json
// @Produce json
// @Param formula body dto.FormulaPreviewRequest true "Expression"
// @Success 200 {object} dto.FormulaPreviewResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Router /editor/formula/preview [post]
func (c *EditorController) PreviewFormula(ctx *gin.Context) {
	var req dto.FormulaPreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, c.editorService.PreviewFormula(req.Expression))
}

// InsertFormula godoc
// @Summary Insert a formula at the cursor
// @Description Embeds an atomic formula marker carrying the expression at the given cursor index. Text counts one per character and each embed counts one.
// @Tags Editor
// @Accept json
// @Produce json
// @Param insert body dto.EditorInsertRequest true "Payload, cursor index and expression"
// @Success 200 {object} dto.EditorResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body, empty expression or negative index"
// @Router /editor/formula [post]
func (c *EditorController) InsertFormula(ctx *gin.Context) {
	c.insert(ctx, c.editorService.InsertFormula)
}

// InsertImage godoc
// @Summary Insert an image at the cursor
// @Tags Editor
// @Accept json
// @Produce json
// @Param insert body dto.EditorInsertRequest true "Payload, cursor index and absolute http(s) image URL"
// @Success 200 {object} dto.EditorResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body, invalid URL or negative index"
// @Router /editor/image [post]
func (c *EditorController) InsertImage(ctx *gin.Context) {
	c.insert(ctx, c.editorService.InsertImage)
}

func (c *EditorController) insert(ctx *gin.Context, op func(dto.EditorInsertRequest) (*dto.EditorResponse, error)) {
	var req dto.EditorInsertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := op(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, richtext.ErrEmptyFormula) || errors.Is(err, richtext.ErrInvalidImageURL) || errors.Is(err, richtext.ErrInvalidIndex) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListDomains godoc
// @Summary Domains from the question bank
// @Description Proxies the bank. Answers an empty list when the bank cannot be reached.
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.DomainResponse
// @Router /catalog/domains [get]
func (c *EditorController) ListDomains(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalogService.ListDomains(ctx.Request.Context()))
}

// ListSubjects godoc
// @Summary Subjects of a domain from the question bank
// @Description Proxies the bank. Answers an empty list when the bank cannot be reached.
// @Tags Catalog
// @Produce json
// @Param domain_id path string true "Domain ID"
// @Success 200 {array} dto.SubjectResponse
// @Router /catalog/domains/{domain_id}/subjects [get]
func (c *EditorController) ListSubjects(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.catalogService.ListSubjects(ctx.Request.Context(), ctx.Param("domain_id")))
}
