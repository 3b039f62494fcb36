package models

import "time"

// Interview types as set by the generation flow.
const (
	InterviewTypeTechnical  = "technical"
	InterviewTypeBehavioral = "behavioral"
	InterviewTypeMixed      = "mixed"
)

// UserIDUnassigned marks shared/browsable interviews that no user owns.
const UserIDUnassigned = "unassigned"

type Interview struct {
	ID        string   `bson:"_id,omitempty" json:"id"`
	Role      string   `bson:"role" json:"role"`
	Type      string   `bson:"type" json:"type"` // technical|behavioral|mixed
	Level     string   `bson:"level,omitempty" json:"level,omitempty"`
	Techstack []string `bson:"techstack" json:"techstack"`
	Questions []string `bson:"questions,omitempty" json:"questions,omitempty"`

	UserID    string    `bson:"userId" json:"userId"`
	Finalized bool      `bson:"finalized" json:"finalized"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
