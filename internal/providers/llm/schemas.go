package llm

import vertexgenai "cloud.google.com/go/vertexai/genai"

var ratingEnum = []string{"excellent", "good", "needs_improvement", "poor"}

func stringArray() *vertexgenai.Schema {
	return &vertexgenai.Schema{
		Type:  vertexgenai.TypeArray,
		Items: &vertexgenai.Schema{Type: vertexgenai.TypeString},
	}
}

var interviewFeedbackSchema = &vertexgenai.Schema{
	Type: vertexgenai.TypeObject,
	Properties: map[string]*vertexgenai.Schema{
		"totalScore": {Type: vertexgenai.TypeInteger},
		"categoryScores": {
			Type: vertexgenai.TypeArray,
			Items: &vertexgenai.Schema{
				Type: vertexgenai.TypeObject,
				Properties: map[string]*vertexgenai.Schema{
					"name":    {Type: vertexgenai.TypeString},
					"score":   {Type: vertexgenai.TypeInteger},
					"comment": {Type: vertexgenai.TypeString},
				},
				Required: []string{"name", "score", "comment"},
			},
		},
		"strengths":           stringArray(),
		"areasForImprovement": stringArray(),
		"finalAssessment":     {Type: vertexgenai.TypeString},
	},
	Required: []string{
		"totalScore", "categoryScores", "strengths",
		"areasForImprovement", "finalAssessment",
	},
}

func sectionFeedback() *vertexgenai.Schema {
	return &vertexgenai.Schema{
		Type: vertexgenai.TypeArray,
		Items: &vertexgenai.Schema{
			Type: vertexgenai.TypeObject,
			Properties: map[string]*vertexgenai.Schema{
				"name":        {Type: vertexgenai.TypeString},
				"rating":      {Type: vertexgenai.TypeString, Enum: ratingEnum},
				"feedback":    {Type: vertexgenai.TypeString},
				"suggestions": stringArray(),
			},
			Required: []string{"name", "rating", "feedback"},
		},
	}
}

func analysisReport() *vertexgenai.Schema {
	return &vertexgenai.Schema{
		Type: vertexgenai.TypeObject,
		Properties: map[string]*vertexgenai.Schema{
			"score":    {Type: vertexgenai.TypeInteger},
			"sections": sectionFeedback(),
		},
		Required: []string{"score", "sections"},
	}
}

var resumeFeedbackSchema = &vertexgenai.Schema{
	Type: vertexgenai.TypeObject,
	Properties: map[string]*vertexgenai.Schema{
		"overallScore":        {Type: vertexgenai.TypeInteger},
		"overallRating":       {Type: vertexgenai.TypeString, Enum: ratingEnum},
		"summary":             {Type: vertexgenai.TypeString},
		"strengths":           stringArray(),
		"areasForImprovement": stringArray(),
		"atsCompatibility": {
			Type: vertexgenai.TypeObject,
			Properties: map[string]*vertexgenai.Schema{
				"score":    {Type: vertexgenai.TypeInteger},
				"feedback": {Type: vertexgenai.TypeString},
			},
			Required: []string{"score", "feedback"},
		},
		"detailedAnalysis": {
			Type: vertexgenai.TypeObject,
			Properties: map[string]*vertexgenai.Schema{
				"content":    analysisReport(),
				"ats":        analysisReport(),
				"formatting": analysisReport(),
			},
			Required: []string{"content", "ats", "formatting"},
		},
		"recommendations": {
			Type: vertexgenai.TypeArray,
			Items: &vertexgenai.Schema{
				Type: vertexgenai.TypeObject,
				Properties: map[string]*vertexgenai.Schema{
					"section":  {Type: vertexgenai.TypeString},
					"before":   {Type: vertexgenai.TypeString},
					"after":    {Type: vertexgenai.TypeString},
					"tips":     stringArray(),
					"keywords": stringArray(),
				},
				Required: []string{"section"},
			},
		},
		"industryInsights": {
			Type: vertexgenai.TypeObject,
			Properties: map[string]*vertexgenai.Schema{
				"industry": {Type: vertexgenai.TypeString},
				"keywords": stringArray(),
				"trends":   {Type: vertexgenai.TypeString},
			},
			Required: []string{"industry"},
		},
	},
	Required: []string{
		"overallScore", "overallRating", "summary", "strengths",
		"areasForImprovement", "atsCompatibility", "detailedAnalysis",
		"recommendations",
	},
}
