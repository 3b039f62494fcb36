package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/services"
	"github.com/prepmate/backend/internal/utils"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type createInterviewRequest struct {
	Role      string   `json:"role" binding:"required"`
	Type      string   `json:"type" binding:"required"` // technical|behavioral|mixed
	Level     string   `json:"level"`
	Techstack []string `json:"techstack"`
	Questions []string `json:"questions"`
	Shared    bool     `json:"shared"` // create as unassigned/browsable
	Finalized bool     `json:"finalized"`
}

// Create handles POST /api/interviews (the interview-setup flow).
func (h *InterviewHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req createInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Create", "invalid request body", err))
		return
	}

	iv := &models.Interview{
		Role:      req.Role,
		Type:      req.Type,
		Level:     req.Level,
		Techstack: req.Techstack,
		Questions: req.Questions,
		UserID:    userID,
		Finalized: req.Finalized,
	}
	if req.Shared {
		iv.UserID = models.UserIDUnassigned
	}

	if err := h.svc.Create(c.Request.Context(), iv); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// ListMine handles GET /api/interviews.
func (h *InterviewHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	out, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLatest handles GET /api/interviews/latest: finalized interviews
// from other users, newest first.
func (h *InterviewHandler) ListLatest(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.ListLatest", "invalid limit", err))
		return
	}

	out, err := h.svc.ListLatest(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /api/interview/:interview_id.
func (h *InterviewHandler) Get(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	iv, err := h.svc.GetByID(c.Request.Context(), c.Param("interview_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}
