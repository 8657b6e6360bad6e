package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sereneapp/serene-api/internal/apierror"
	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/service"
)

type JournalHandler struct {
	journalService service.JournalService
	analyzer       service.Analyzer
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService service.JournalService, analyzer service.Analyzer) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		analyzer:       analyzer,
	}
}

// GetOverview handles GET /api/v1/journal
func (h *JournalHandler) GetOverview(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	overview, err := h.journalService.GetOverview(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, overview)
}

// CreateEntry handles POST /api/v1/journal/entries
func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "content", Message: "is required", Code: "required"},
		}))
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), userID.(string), &req)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Analyze handles POST /api/v1/journal/analyze. The analysis comes back
// to the client, which attaches it to the subsequent entry save; a
// failed analysis never blocks journaling.
func (h *JournalHandler) Analyze(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.AnalyzeJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "content", Message: "is required", Code: "required"},
		}))
		return
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), req.Content, req.MoodHint)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewServiceUnavailableError(apierror.GetRequestID(c), 30))
		return
	}

	c.JSON(http.StatusOK, analysis)
}
