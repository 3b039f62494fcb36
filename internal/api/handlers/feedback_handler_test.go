package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/services"
	"github.com/prepmate/backend/internal/utils"
)

type stubFeedbackService struct {
	res      services.SaveResult
	feedback *models.Feedback
	lastP    services.CreateFeedbackParams
}

func (s *stubFeedbackService) Create(_ context.Context, p services.CreateFeedbackParams) (services.SaveResult, error) {
	s.lastP = p
	if len(p.Transcript) == 0 {
		return services.SaveResult{}, utils.E(utils.CodeInvalidArgument, "FeedbackService.Create", "transcript is empty", nil)
	}
	return s.res, nil
}

func (s *stubFeedbackService) GetByInterview(_ context.Context, interviewID, userID string) (*models.Feedback, error) {
	if s.feedback == nil {
		return nil, utils.E(utils.CodeNotFound, "FeedbackService.GetByInterview", "feedback not found", nil)
	}
	return s.feedback, nil
}

func feedbackRouter(h *FeedbackHandler) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "u1") })
	r.POST("/api/interview/:interview_id/feedback", h.Create)
	r.GET("/api/interview/:interview_id/feedback", h.GetByInterview)
	return r
}

func TestCreateFeedbackReturnsResult(t *testing.T) {
	svc := &stubFeedbackService{res: services.SaveResult{Success: true, FeedbackID: "fb-1"}}
	r := feedbackRouter(NewFeedbackHandler(svc))

	body, _ := json.Marshal(map[string]any{
		"transcript": []models.TranscriptMessage{
			{Role: models.RoleUser, Content: "Hello"},
			{Role: models.RoleAssistant, Content: "Hi, tell me about yourself."},
		},
		"feedbackId": "fb-1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/interview/i1/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var resp services.SaveResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !resp.Success || resp.FeedbackID != "fb-1" {
		t.Errorf("result = %+v", resp)
	}
	if svc.lastP.InterviewID != "i1" || svc.lastP.UserID != "u1" {
		t.Errorf("params = %+v", svc.lastP)
	}
}

func TestCreateFeedbackRejectsBadBody(t *testing.T) {
	r := feedbackRouter(NewFeedbackHandler(&stubFeedbackService{}))

	req := httptest.NewRequest(http.MethodPost, "/api/interview/i1/feedback", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetFeedbackNotFound(t *testing.T) {
	r := feedbackRouter(NewFeedbackHandler(&stubFeedbackService{}))

	req := httptest.NewRequest(http.MethodGet, "/api/interview/i1/feedback", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
