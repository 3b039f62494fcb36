package services

import (
	"sync"

	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/providers/voice"
)

// LiveSession is the explicit per-call subscription handle for voice
// SDK events. Utterances accumulate in arrival order; End freezes the
// transcript and hands it out exactly once, so exactly one downstream
// action (feedback generation or navigation) can run per call.
type LiveSession struct {
	mu       sync.Mutex
	messages []models.TranscriptMessage
	ended    bool // no more events accepted
	closed   bool // End already handed out the transcript
}

func NewLiveSession() *LiveSession {
	return &LiveSession{}
}

// HandleEvent folds one relayed SDK event into the session. Only final
// transcript messages with a known role are kept; everything after the
// call ends is dropped.
func (s *LiveSession) HandleEvent(ev voice.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return
	}

	switch ev.Type {
	case voice.EventMessage:
		if ev.Final && models.ValidRole(ev.Role) {
			s.messages = append(s.messages, models.TranscriptMessage{
				Role:    ev.Role,
				Content: ev.Content,
			})
		}
	case voice.EventCallEnd:
		s.ended = true
	}
}

// End closes the session and returns the immutable transcript. The
// second value is true only for the first caller; later calls get nil
// so the end action cannot run twice.
func (s *LiveSession) End() ([]models.TranscriptMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false
	}

	s.ended = true
	s.closed = true
	msgs := s.messages
	s.messages = nil
	return msgs, true
}

// Len reports how many utterances have been collected so far.
func (s *LiveSession) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
