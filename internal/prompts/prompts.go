// Package prompts owns the instruction templates sent to the model and
// the transcript rendering they embed. Construction is pure string work
// over already-validated inputs.
package prompts

import (
	"fmt"
	"strings"

	"github.com/prepmate/backend/internal/models"
)

const interviewSystem = "You are a professional interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories"

const resumeSystem = "You are a professional resume reviewer analyzing a candidate's resume. Your task is to evaluate the resume based on structured categories"

// FormatTranscript renders each utterance as "- <role>: <content>\n" in
// original chronological order.
func FormatTranscript(msgs []models.TranscriptMessage) string {
	var b strings.Builder
	for _, m := range msgs {
		fmt.Fprintf(&b, "- %s: %s\n", m.Role, m.Content)
	}
	return b.String()
}

// InterviewFeedback builds the scoring prompt for a finished interview
// transcript. The category list is closed; the model is told not to add
// to it.
func InterviewFeedback(formattedTranscript string) (prompt, system string) {
	prompt = fmt.Sprintf(`You are an AI interviewer analyzing a mock interview. Your task is to evaluate the candidate based on structured categories. Be thorough and detailed in your analysis. Don't be lenient with the candidate. If there are mistakes or areas for improvement, point them out.
Transcript:
%s

Please score the candidate from 0 to 100 in the following areas. Do not add categories other than the ones provided:
- **Communication Skills**: Clarity, articulation, structured responses.
- **Technical Knowledge**: Understanding of key concepts for the role.
- **Problem-Solving**: Ability to analyze problems and propose solutions.
- **Cultural & Role Fit**: Alignment with company values and job role.
- **Confidence & Clarity**: Confidence in responses, engagement, and clarity.
`, formattedTranscript)
	return prompt, interviewSystem
}

// ResumeFeedback builds the review prompt for extracted resume text.
func ResumeFeedback(resumeText string) (prompt, system string) {
	prompt = fmt.Sprintf(`You are a professional resume reviewer with HR and ATS expertise. Analyze the following resume and return detailed, structured feedback in JSON format. Include:

Overall score and rating (0-100, excellent/good/needs_improvement/poor)

2-3 sentence summary

Strengths (3) and areas to improve (3)

ATS compatibility: score and short feedback

Detailed analysis for sections (e.g., Summary, Experience, Skills) with ratings, feedback, and suggestions

ATS optimization: keyword categories with score, file format & formatting feedback

Formatting review: layout, typography, consistency, etc.

2-3 recommendations with examples and tips

Industry insights: relevant keywords and trends

Here is the resume to analyze:

%s`, resumeText)
	return prompt, resumeSystem
}
