package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sereneapp/serene-api/internal/apierror"
	"github.com/sereneapp/serene-api/internal/models"
	"github.com/sereneapp/serene-api/internal/service"
)

type MoodHandler struct {
	moodService service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// GetOverview handles GET /api/v1/mood
func (h *MoodHandler) GetOverview(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	overview, err := h.moodService.GetOverview(c.Request.Context(), userID.(string))
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, overview)
}

// SaveMood handles POST /api/v1/mood
func (h *MoodHandler) SaveMood(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return
	}

	var req models.SaveMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "mood", Message: "must be one of great, good, okay, low, bad", Code: "invalid_value"},
		}))
		return
	}

	entry, err := h.moodService.SaveMood(c.Request.Context(), userID.(string), req.Mood)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, entry)
}
