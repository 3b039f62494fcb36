package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/backend/internal/services"
	"github.com/prepmate/backend/internal/utils"
)

const maxResumeSize = 10 << 20 // 10MB

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// The resume routes keep the upload flow's original flat error body
// instead of the {code,message} shape the rest of the API uses.
func writeFlatError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatus(err), gin.H{"error": utils.Message(err)})
}

// Review handles POST /api/resume-feedback. Multipart field "resume",
// .pdf or .docx. With ?mode=text only the extracted text is returned;
// otherwise the full pipeline runs and the report comes back.
func (h *ResumeHandler) Review(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		writeFlatError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Review", "No file uploaded", err))
		return
	}
	if fh.Size <= 0 || fh.Size > maxResumeSize {
		writeFlatError(c, utils.E(utils.CodeInvalidArgument, "ResumeHandler.Review", "File is empty or too large (max 10MB)", nil))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeFlatError(c, utils.E(utils.CodeInternal, "ResumeHandler.Review", "Internal server error", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		writeFlatError(c, utils.E(utils.CodeInternal, "ResumeHandler.Review", "Internal server error", err))
		return
	}

	if c.Query("mode") == "text" {
		text, err := h.svc.ExtractOnly(c.Request.Context(), userID, fh.Filename, data)
		if err != nil {
			writeFlatError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"resumeText": text})
		return
	}

	report, err := h.svc.Review(c.Request.Context(), userID, fh.Filename, data)
	if err != nil {
		writeFlatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": report})
}

// GetReport handles GET /api/resume-feedback/:id.
func (h *ResumeHandler) GetReport(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	report, err := h.svc.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListUploads handles GET /api/resume-uploads.
func (h *ResumeHandler) ListUploads(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := h.svc.ListUploads(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
