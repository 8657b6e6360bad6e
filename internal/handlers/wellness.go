package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sereneapp/serene-api/internal/apierror"
	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/service"
)

type WellnessHandler struct {
	wellnessService service.WellnessService
}

// NewWellnessHandler creates a new wellness handler
func NewWellnessHandler(wellnessService service.WellnessService) *WellnessHandler {
	return &WellnessHandler{
		wellnessService: wellnessService,
	}
}

// GetWeeklySummary handles GET /api/v1/wellness/summary
func (h *WellnessHandler) GetWeeklySummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	summary, err := h.wellnessService.GetWeeklySummary(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, summary)
}

// LogWellness handles POST /api/v1/wellness/logs
func (h *WellnessHandler) LogWellness(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.LogWellnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "sleep_hours", Message: "must be between 0 and 24", Code: "out_of_range"},
		}))
		return
	}

	log, err := h.wellnessService.LogWellness(c.Request.Context(), userID.(string), &req)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, log)
}

// CompleteExercise handles POST /api/v1/exercises/completions
func (h *WellnessHandler) CompleteExercise(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.CompleteExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "exercise_id", Message: "is required", Code: "required"},
		}))
		return
	}

	completion, err := h.wellnessService.CompleteExercise(c.Request.Context(), userID.(string), &req)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusCreated, completion)
}

// GetCompletions handles GET /api/v1/exercises/completions
func (h *WellnessHandler) GetCompletions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	completions, err := h.wellnessService.GetCompletions(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"completions": completions})
}
