// Package voice defines the event surface of the third-party voice-call
// SDK. The SDK runs in the browser; clients relay its events to the
// backend as JSON frames in whatever order the SDK emits them.
package voice

const (
	EventCallStart   = "call-start"
	EventCallEnd     = "call-end"
	EventSpeechStart = "speech-start"
	EventSpeechEnd   = "speech-end"
	EventMessage     = "message"
	EventError       = "error"
)

// Event is one relayed SDK callback. Transcript content arrives on
// "message" events; Final distinguishes finished utterances from
// in-flight partials.
type Event struct {
	Type string `json:"type"`

	Role    string `json:"role,omitempty"` // user|assistant|system
	Content string `json:"content,omitempty"`
	Final   bool   `json:"final,omitempty"`

	Error string `json:"error,omitempty"`
}
