package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/prompts"
	"github.com/prepmate/backend/internal/providers/llm"
	mongorepo "github.com/prepmate/backend/internal/repositories/mongo"
	"github.com/prepmate/backend/internal/utils"
)

type CreateFeedbackParams struct {
	InterviewID string                     `json:"interviewId"`
	UserID      string                     `json:"userId"`
	Transcript  []models.TranscriptMessage `json:"transcript"`
	FeedbackID  string                     `json:"feedbackId,omitempty"`
}

// SaveResult is the explicit outcome the caller must handle before
// navigating on. Success=false covers every generation or persistence
// failure; the cause stays in the server log.
type SaveResult struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId,omitempty"`
}

type FeedbackService interface {
	// Create turns a transcript into a saved feedback document. It
	// returns an error only for bad input; everything downstream is
	// logged and collapsed into SaveResult{Success: false}.
	Create(ctx context.Context, p CreateFeedbackParams) (SaveResult, error)
	GetByInterview(ctx context.Context, interviewID, userID string) (*models.Feedback, error)
}

type feedbackService struct {
	feedback mongorepo.FeedbackRepository
	model    llm.Provider
	log      *logrus.Logger
}

func NewFeedbackService(feedback mongorepo.FeedbackRepository, model llm.Provider, log *logrus.Logger) FeedbackService {
	return &feedbackService{feedback: feedback, model: model, log: log}
}

func (s *feedbackService) Create(ctx context.Context, p CreateFeedbackParams) (SaveResult, error) {
	const op = "FeedbackService.Create"

	if p.InterviewID == "" || p.UserID == "" {
		return SaveResult{}, utils.E(utils.CodeInvalidArgument, op, "interviewId and userId are required", nil)
	}
	if len(p.Transcript) == 0 {
		return SaveResult{}, utils.E(utils.CodeInvalidArgument, op, "transcript is empty", nil)
	}

	prompt, system := prompts.InterviewFeedback(prompts.FormatTranscript(p.Transcript))

	raw, err := s.model.GenerateObject(ctx, llm.ObjectRequest{
		System: system,
		Prompt: prompt,
		Schema: llm.SchemaInterviewFeedback,
	})
	if err != nil {
		s.fail(op, "model call failed", p, err)
		return SaveResult{Success: false}, nil
	}

	var fb models.Feedback
	if err := json.Unmarshal(raw, &fb); err != nil {
		s.fail(op, "model reply did not decode", p, err)
		return SaveResult{Success: false}, nil
	}
	if err := fb.Validate(); err != nil {
		s.fail(op, "model reply failed validation", p, err)
		return SaveResult{Success: false}, nil
	}

	fb.InterviewID = p.InterviewID
	fb.UserID = p.UserID

	id, err := s.feedback.Save(ctx, &fb, p.FeedbackID)
	if err != nil {
		s.fail(op, "failed to save feedback", p, err)
		return SaveResult{Success: false}, nil
	}

	return SaveResult{Success: true, FeedbackID: id}, nil
}

func (s *feedbackService) fail(op, msg string, p CreateFeedbackParams, err error) {
	s.log.WithFields(logrus.Fields{
		"op":           op,
		"interview_id": p.InterviewID,
		"user_id":      p.UserID,
	}).WithError(err).Error(msg)
}

func (s *feedbackService) GetByInterview(ctx context.Context, interviewID, userID string) (*models.Feedback, error) {
	const op = "FeedbackService.GetByInterview"

	if interviewID == "" || userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "interviewId and userId are required", nil)
	}

	fb, err := s.feedback.GetByInterview(ctx, interviewID, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "feedback not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get feedback", err)
	}
	return fb, nil
}
