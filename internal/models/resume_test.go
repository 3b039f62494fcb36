package models

import "testing"

func validResumeReport() *ResumeReport {
	return &ResumeReport{
		UserID:              "u1",
		OverallScore:        84,
		OverallRating:       RatingExcellent,
		Summary:             "Strong resume with minor formatting issues.",
		Strengths:           []string{"clear impact statements"},
		AreasForImprovement: []string{"add keywords"},
		ATSCompatibility:    ATSCompatibility{Score: 78, Feedback: "parses cleanly"},
		DetailedAnalysis: DetailedAnalysis{
			Content: AnalysisReport{Score: 85, Sections: []SectionFeedback{
				{Name: "Experience", Rating: RatingGood, Feedback: "quantified"},
			}},
			ATS:        AnalysisReport{Score: 78},
			Formatting: AnalysisReport{Score: 80},
		},
		Recommendations: []Recommendation{
			{Section: "Summary", Before: "did stuff", After: "shipped X", Tips: []string{"be specific"}},
		},
	}
}

func TestResumeReportValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *ResumeReport)
		wantErr bool
	}{
		{"valid", func(r *ResumeReport) {}, false},
		{"overall score out of range", func(r *ResumeReport) { r.OverallScore = 120 }, true},
		{"unknown rating", func(r *ResumeReport) { r.OverallRating = "amazing" }, true},
		{"ats score out of range", func(r *ResumeReport) { r.ATSCompatibility.Score = -5 }, true},
		{"analysis score out of range", func(r *ResumeReport) {
			r.DetailedAnalysis.Formatting.Score = 400
		}, true},
		{"bad section rating", func(r *ResumeReport) {
			r.DetailedAnalysis.Content.Sections[0].Rating = "meh"
		}, true},
		{"blank section rating allowed", func(r *ResumeReport) {
			r.DetailedAnalysis.Content.Sections[0].Rating = ""
		}, false},
		{"empty summary", func(r *ResumeReport) { r.Summary = "" }, true},
		{"optional insights", func(r *ResumeReport) {
			r.IndustryInsights = &IndustryInsights{Industry: "fintech"}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResumeReport()
			tt.mutate(r)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
