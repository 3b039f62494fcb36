package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/services"
	"github.com/prepmate/backend/internal/utils"
)

type FeedbackHandler struct {
	svc services.FeedbackService
}

func NewFeedbackHandler(svc services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

type createFeedbackRequest struct {
	Transcript []models.TranscriptMessage `json:"transcript" binding:"required"`
	FeedbackID string                     `json:"feedbackId"`
}

// Create handles POST /api/interview/:interview_id/feedback. The reply
// is always the explicit {success, feedbackId} result; a swallowed
// generation or persistence failure comes back as success=false with
// status 200, never as a thrown 5xx.
func (h *FeedbackHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req createFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "FeedbackHandler.Create", "invalid request body", err))
		return
	}

	res, err := h.svc.Create(c.Request.Context(), services.CreateFeedbackParams{
		InterviewID: c.Param("interview_id"),
		UserID:      userID,
		Transcript:  req.Transcript,
		FeedbackID:  req.FeedbackID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// GetByInterview handles GET /api/interview/:interview_id/feedback.
func (h *FeedbackHandler) GetByInterview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fb, err := h.svc.GetByInterview(c.Request.Context(), c.Param("interview_id"), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}
