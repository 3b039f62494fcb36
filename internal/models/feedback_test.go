package models

import "testing"

func validFeedback() *Feedback {
	return &Feedback{
		InterviewID: "i1",
		UserID:      "u1",
		TotalScore:  72,
		CategoryScores: []CategoryScore{
			{Name: "Communication Skills", Score: 80, Comment: "clear"},
			{Name: "Technical Knowledge", Score: 70, Comment: "solid"},
			{Name: "Problem-Solving", Score: 65, Comment: "ok"},
			{Name: "Cultural & Role Fit", Score: 75, Comment: "good"},
			{Name: "Confidence & Clarity", Score: 70, Comment: "steady"},
		},
		Strengths:           []string{"structured answers"},
		AreasForImprovement: []string{"deeper system design"},
		FinalAssessment:     "Hire with reservations.",
	}
}

func TestFeedbackValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *Feedback)
		wantErr bool
	}{
		{"valid", func(f *Feedback) {}, false},
		{"total score too high", func(f *Feedback) { f.TotalScore = 101 }, true},
		{"total score negative", func(f *Feedback) { f.TotalScore = -1 }, true},
		{"no categories", func(f *Feedback) { f.CategoryScores = nil }, true},
		{"invented category", func(f *Feedback) {
			f.CategoryScores[0].Name = "Vibes"
		}, true},
		{"category score out of range", func(f *Feedback) {
			f.CategoryScores[2].Score = 250
		}, true},
		{"empty assessment", func(f *Feedback) { f.FinalAssessment = "" }, true},
		{"boundary scores", func(f *Feedback) {
			f.TotalScore = 0
			f.CategoryScores[0].Score = 100
			f.CategoryScores[1].Score = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFeedback()
			tt.mutate(f)
			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
