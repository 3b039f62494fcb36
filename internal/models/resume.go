package models

import (
	"fmt"
	"time"
)

// Overall rating vocabulary. The UI colors ratings by score threshold
// (>=80 excellent, >=60 good, >=40 needs_improvement, else poor); the
// model-supplied rating is trusted as-is and not re-derived here.
const (
	RatingExcellent        = "excellent"
	RatingGood             = "good"
	RatingNeedsImprovement = "needs_improvement"
	RatingPoor             = "poor"
)

type ATSCompatibility struct {
	Score    int    `bson:"score" json:"score"`
	Feedback string `bson:"feedback" json:"feedback"`
}

type SectionFeedback struct {
	Name        string   `bson:"name" json:"name"`
	Rating      string   `bson:"rating" json:"rating"`
	Feedback    string   `bson:"feedback" json:"feedback"`
	Suggestions []string `bson:"suggestions,omitempty" json:"suggestions,omitempty"`
}

type AnalysisReport struct {
	Score    int               `bson:"score" json:"score"`
	Sections []SectionFeedback `bson:"sections" json:"sections"`
}

type DetailedAnalysis struct {
	Content    AnalysisReport `bson:"content" json:"content"`
	ATS        AnalysisReport `bson:"ats" json:"ats"`
	Formatting AnalysisReport `bson:"formatting" json:"formatting"`
}

type Recommendation struct {
	Section  string   `bson:"section,omitempty" json:"section,omitempty"`
	Before   string   `bson:"before,omitempty" json:"before,omitempty"`
	After    string   `bson:"after,omitempty" json:"after,omitempty"`
	Tips     []string `bson:"tips,omitempty" json:"tips,omitempty"`
	Keywords []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

type IndustryInsights struct {
	Industry string   `bson:"industry" json:"industry"`
	Keywords []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
	Trends   string   `bson:"trends,omitempty" json:"trends,omitempty"`
}

// ResumeReport is the resume-review variant of generated feedback.
// Insert-only; the resume flow has no update-in-place.
type ResumeReport struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	UserID string `bson:"userId" json:"userId"`

	OverallScore        int      `bson:"overallScore" json:"overallScore"`
	OverallRating       string   `bson:"overallRating" json:"overallRating"`
	Summary             string   `bson:"summary" json:"summary"`
	Strengths           []string `bson:"strengths" json:"strengths"`
	AreasForImprovement []string `bson:"areasForImprovement" json:"areasForImprovement"`

	ATSCompatibility ATSCompatibility  `bson:"atsCompatibility" json:"atsCompatibility"`
	DetailedAnalysis DetailedAnalysis  `bson:"detailedAnalysis" json:"detailedAnalysis"`
	Recommendations  []Recommendation  `bson:"recommendations" json:"recommendations"`
	IndustryInsights *IndustryInsights `bson:"industryInsights,omitempty" json:"industryInsights,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func validRating(r string) bool {
	switch r {
	case RatingExcellent, RatingGood, RatingNeedsImprovement, RatingPoor:
		return true
	}
	return false
}

func scoreInRange(s int) bool { return s >= 0 && s <= 100 }

// Validate checks score ranges and the rating vocabulary on the model
// reply before it is persisted or returned.
func (r *ResumeReport) Validate() error {
	if !scoreInRange(r.OverallScore) {
		return fmt.Errorf("overallScore %d out of range [0,100]", r.OverallScore)
	}
	if !validRating(r.OverallRating) {
		return fmt.Errorf("unknown overallRating %q", r.OverallRating)
	}
	if !scoreInRange(r.ATSCompatibility.Score) {
		return fmt.Errorf("ats score %d out of range [0,100]", r.ATSCompatibility.Score)
	}
	for _, rep := range []AnalysisReport{
		r.DetailedAnalysis.Content,
		r.DetailedAnalysis.ATS,
		r.DetailedAnalysis.Formatting,
	} {
		if !scoreInRange(rep.Score) {
			return fmt.Errorf("analysis score %d out of range [0,100]", rep.Score)
		}
		for _, s := range rep.Sections {
			if s.Rating != "" && !validRating(s.Rating) {
				return fmt.Errorf("section %q has unknown rating %q", s.Name, s.Rating)
			}
		}
	}
	if r.Summary == "" {
		return fmt.Errorf("summary is empty")
	}
	return nil
}
