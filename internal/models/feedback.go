package models

import (
	"fmt"
	"time"
)

// The five scoring categories the interview rubric allows. The set is
// closed; the model is instructed not to invent more, and Validate
// rejects any reply that does.
var InterviewCategories = []string{
	"Communication Skills",
	"Technical Knowledge",
	"Problem-Solving",
	"Cultural & Role Fit",
	"Confidence & Clarity",
}

type CategoryScore struct {
	Name    string `bson:"name" json:"name"`
	Score   int    `bson:"score" json:"score"`
	Comment string `bson:"comment" json:"comment"`
}

// Feedback is one interview's generated evaluation, keyed by
// (interviewId, userId). Nothing enforces uniqueness of that pair at
// write time; lookups take the newest match.
type Feedback struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	InterviewID string `bson:"interviewId" json:"interviewId"`
	UserID      string `bson:"userId" json:"userId"`

	TotalScore          int             `bson:"totalScore" json:"totalScore"`
	CategoryScores      []CategoryScore `bson:"categoryScores" json:"categoryScores"`
	Strengths           []string        `bson:"strengths" json:"strengths"`
	AreasForImprovement []string        `bson:"areasForImprovement" json:"areasForImprovement"`
	FinalAssessment     string          `bson:"finalAssessment" json:"finalAssessment"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Validate checks the model reply locally before it is trusted into the
// store: scores in [0,100], categories drawn from the closed set, and a
// non-empty assessment.
func (f *Feedback) Validate() error {
	if f.TotalScore < 0 || f.TotalScore > 100 {
		return fmt.Errorf("totalScore %d out of range [0,100]", f.TotalScore)
	}
	if len(f.CategoryScores) == 0 {
		return fmt.Errorf("categoryScores is empty")
	}
	allowed := map[string]struct{}{}
	for _, c := range InterviewCategories {
		allowed[c] = struct{}{}
	}
	for _, cs := range f.CategoryScores {
		if _, ok := allowed[cs.Name]; !ok {
			return fmt.Errorf("unknown category %q", cs.Name)
		}
		if cs.Score < 0 || cs.Score > 100 {
			return fmt.Errorf("category %q score %d out of range [0,100]", cs.Name, cs.Score)
		}
	}
	if f.FinalAssessment == "" {
		return fmt.Errorf("finalAssessment is empty")
	}
	return nil
}
