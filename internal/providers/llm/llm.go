package llm

import (
	"context"
	"encoding/json"
)

// SchemaKind selects which of the two fixed output shapes the model
// must produce.
type SchemaKind int

const (
	SchemaInterviewFeedback SchemaKind = iota
	SchemaResumeFeedback
)

type ObjectRequest struct {
	System string
	Prompt string
	Schema SchemaKind
}

// Provider performs schema-constrained generation against an external
// model. One attempt per call; generation is non-deterministic, so a
// retried call is not idempotent.
type Provider interface {
	GenerateObject(ctx context.Context, req ObjectRequest) (json.RawMessage, error)
	Close() error
}
