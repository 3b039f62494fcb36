package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/providers/llm"
	"github.com/prepmate/backend/internal/utils"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeFeedbackRepo struct {
	docs    map[string]models.Feedback
	nextID  int
	saveErr error
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{docs: map[string]models.Feedback{}}
}

func (r *fakeFeedbackRepo) Save(_ context.Context, f *models.Feedback, existingID string) (string, error) {
	if r.saveErr != nil {
		return "", r.saveErr
	}
	id := existingID
	if id == "" {
		r.nextID++
		id = fmt.Sprintf("fb-%d", r.nextID)
	}
	f.ID = id
	r.docs[id] = *f
	return id, nil
}

func (r *fakeFeedbackRepo) GetByInterview(_ context.Context, interviewID, userID string) (*models.Feedback, error) {
	for _, f := range r.docs {
		if f.InterviewID == interviewID && f.UserID == userID {
			out := f
			return &out, nil
		}
	}
	return nil, utils.ErrNotFound
}

type fakeLLM struct {
	raw json.RawMessage
	err error
}

func (f *fakeLLM) GenerateObject(context.Context, llm.ObjectRequest) (json.RawMessage, error) {
	return f.raw, f.err
}

func (f *fakeLLM) Close() error { return nil }

func interviewFeedbackJSON(t *testing.T, totalScore int) json.RawMessage {
	t.Helper()
	fb := models.Feedback{
		TotalScore: totalScore,
		CategoryScores: []models.CategoryScore{
			{Name: "Communication Skills", Score: 80, Comment: "clear"},
			{Name: "Technical Knowledge", Score: 70, Comment: "solid"},
			{Name: "Problem-Solving", Score: 65, Comment: "ok"},
			{Name: "Cultural & Role Fit", Score: 75, Comment: "good"},
			{Name: "Confidence & Clarity", Score: 70, Comment: "steady"},
		},
		Strengths:           []string{"clarity"},
		AreasForImprovement: []string{"depth"},
		FinalAssessment:     "Solid candidate.",
	}
	raw, err := json.Marshal(&fb)
	if err != nil {
		t.Fatalf("marshal feedback: %v", err)
	}
	return raw
}

func transcript() []models.TranscriptMessage {
	return []models.TranscriptMessage{
		{Role: models.RoleAssistant, Content: "Why Go?"},
		{Role: models.RoleUser, Content: "Concurrency and simplicity."},
	}
}

func TestFeedbackCreateInsertsDistinctDocuments(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo, &fakeLLM{raw: interviewFeedbackJSON(t, 72)}, discardLogger())

	p := CreateFeedbackParams{InterviewID: "i1", UserID: "u1", Transcript: transcript()}

	res1, err := svc.Create(context.Background(), p)
	if err != nil || !res1.Success {
		t.Fatalf("first Create() = %+v, %v", res1, err)
	}
	res2, err := svc.Create(context.Background(), p)
	if err != nil || !res2.Success {
		t.Fatalf("second Create() = %+v, %v", res2, err)
	}

	if res1.FeedbackID == res2.FeedbackID {
		t.Error("two id-less saves should create two distinct documents")
	}
	if len(repo.docs) != 2 {
		t.Errorf("store has %d documents, want 2", len(repo.docs))
	}
}

func TestFeedbackCreateOverwritesExistingID(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo, &fakeLLM{raw: interviewFeedbackJSON(t, 60)}, discardLogger())

	p := CreateFeedbackParams{
		InterviewID: "i1",
		UserID:      "u1",
		Transcript:  transcript(),
		FeedbackID:  "existing",
	}

	for i := 0; i < 2; i++ {
		res, err := svc.Create(context.Background(), p)
		if err != nil || !res.Success {
			t.Fatalf("Create() #%d = %+v, %v", i+1, res, err)
		}
		if res.FeedbackID != "existing" {
			t.Errorf("Create() #%d id = %q, want %q", i+1, res.FeedbackID, "existing")
		}
	}

	if len(repo.docs) != 1 {
		t.Errorf("store has %d documents, want 1 (overwrite, not duplicate)", len(repo.docs))
	}
}

func TestFeedbackCreateSwallowedFailures(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeLLM
		repo *fakeFeedbackRepo
	}{
		{
			name: "model call fails",
			llm:  &fakeLLM{err: errors.New("quota exceeded")},
			repo: newFakeFeedbackRepo(),
		},
		{
			name: "model reply is not feedback",
			llm:  &fakeLLM{raw: json.RawMessage(`{"totalScore": "high"}`)},
			repo: newFakeFeedbackRepo(),
		},
		{
			name: "model reply fails validation",
			llm:  &fakeLLM{raw: json.RawMessage(`{"totalScore":150,"categoryScores":[],"strengths":[],"areasForImprovement":[],"finalAssessment":""}`)},
			repo: newFakeFeedbackRepo(),
		},
		{
			name: "persistence fails",
			llm:  &fakeLLM{raw: json.RawMessage(`{}`)}, // raw set below
			repo: func() *fakeFeedbackRepo {
				r := newFakeFeedbackRepo()
				r.saveErr = errors.New("connection reset")
				return r
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name == "persistence fails" {
				tt.llm.raw = interviewFeedbackJSON(t, 55)
			}
			svc := NewFeedbackService(tt.repo, tt.llm, discardLogger())

			res, err := svc.Create(context.Background(), CreateFeedbackParams{
				InterviewID: "i1", UserID: "u1", Transcript: transcript(),
			})
			if err != nil {
				t.Fatalf("Create() error = %v, downstream failures must be swallowed", err)
			}
			if res.Success {
				t.Error("Create() reported success despite failure")
			}
			if res.FeedbackID != "" {
				t.Errorf("Create() returned id %q on failure", res.FeedbackID)
			}
		})
	}
}

func TestFeedbackCreateBadInput(t *testing.T) {
	svc := NewFeedbackService(newFakeFeedbackRepo(), &fakeLLM{}, discardLogger())

	tests := []struct {
		name string
		p    CreateFeedbackParams
	}{
		{"missing interview id", CreateFeedbackParams{UserID: "u1", Transcript: transcript()}},
		{"missing user id", CreateFeedbackParams{InterviewID: "i1", Transcript: transcript()}},
		{"empty transcript", CreateFeedbackParams{InterviewID: "i1", UserID: "u1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.p)
			if !utils.IsCode(err, utils.CodeInvalidArgument) {
				t.Errorf("Create() error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}

func TestFeedbackGetByInterview(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := NewFeedbackService(repo, &fakeLLM{raw: interviewFeedbackJSON(t, 72)}, discardLogger())

	// nothing generated yet for (i1, u1)
	if _, err := svc.GetByInterview(context.Background(), "i1", "u1"); !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("GetByInterview() before generation = %v, want NOT_FOUND", err)
	}

	res, err := svc.Create(context.Background(), CreateFeedbackParams{
		InterviewID: "i1", UserID: "u1", Transcript: transcript(),
	})
	if err != nil || !res.Success {
		t.Fatalf("Create() = %+v, %v", res, err)
	}

	fb, err := svc.GetByInterview(context.Background(), "i1", "u1")
	if err != nil {
		t.Fatalf("GetByInterview() error = %v", err)
	}
	if fb.InterviewID != "i1" || fb.UserID != "u1" {
		t.Errorf("composite key = (%q,%q), want (i1,u1)", fb.InterviewID, fb.UserID)
	}
}
