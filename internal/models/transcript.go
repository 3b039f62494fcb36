package models

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// TranscriptMessage is one role-tagged utterance from a live voice
// session. Messages are appended in arrival order and the sequence
// becomes immutable once the call ends.
type TranscriptMessage struct {
	Role    string `json:"role"` // user|assistant|system
	Content string `json:"content"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}
