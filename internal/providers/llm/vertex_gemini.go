package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

type VertexGemini struct {
	client *vertexgenai.Client

	// One configured model per schema kind: GenerationConfig lives on
	// the model, so sharing one instance across kinds would race.
	interviewModel *vertexgenai.GenerativeModel
	resumeModel    *vertexgenai.GenerativeModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-2.0-flash-001"
	}

	mk := func(schema *vertexgenai.Schema) *vertexgenai.GenerativeModel {
		m := c.GenerativeModel(modelName)
		m.GenerationConfig.ResponseMIMEType = "application/json"
		m.GenerationConfig.ResponseSchema = schema
		return m
	}

	return &VertexGemini{
		client:         c,
		interviewModel: mk(interviewFeedbackSchema),
		resumeModel:    mk(resumeFeedbackSchema),
	}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) GenerateObject(ctx context.Context, req ObjectRequest) (json.RawMessage, error) {
	var model *vertexgenai.GenerativeModel
	switch req.Schema {
	case SchemaInterviewFeedback:
		model = v.interviewModel
	case SchemaResumeFeedback:
		model = v.resumeModel
	default:
		return nil, fmt.Errorf("unknown schema kind %d", req.Schema)
	}

	m := *model
	if req.System != "" {
		m.SystemInstruction = &vertexgenai.Content{
			Parts: []vertexgenai.Part{vertexgenai.Text(req.System)},
		}
	}

	resp, err := m.GenerateContent(ctx, vertexgenai.Text(req.Prompt))
	if err != nil {
		return nil, err
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.New("empty model response")
	}
	if !json.Valid([]byte(text)) {
		return nil, errors.New("model response is not valid JSON")
	}
	return json.RawMessage(text), nil
}

func responseText(resp *vertexgenai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var out string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				out += string(t)
			}
		}
	}
	return out
}
