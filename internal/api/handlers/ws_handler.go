package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/prepmate/backend/internal/providers/voice"
	"github.com/prepmate/backend/internal/services"
	"github.com/prepmate/backend/internal/utils"
)

// WSHandler carries a live interview session. The browser runs the
// voice SDK and relays its events as JSON frames; the server
// accumulates the transcript and, when the call ends, runs the
// feedback pipeline exactly once. Closing the socket before the result
// frame cancels an in-flight generation.
type WSHandler struct {
	interviews services.InterviewService
	feedback   services.FeedbackService
	log        *logrus.Logger
	upgrader   websocket.Upgrader
}

func NewWSHandler(interviews services.InterviewService, feedback services.FeedbackService, log *logrus.Logger) *WSHandler {
	return &WSHandler{
		interviews: interviews,
		feedback:   feedback,
		log:        log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteJSON(v)
}

type wsResultMsg struct {
	Type       string `json:"type"`
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// InterviewWS handles GET /ws/interview/:interview_id. A generation
// (setup-only) session can pass ?purpose=setup to skip feedback; the
// default is a real interview that ends in feedback generation.
func (h *WSHandler) InterviewWS(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	interviewID := c.Param("interview_id")
	purpose := c.DefaultQuery("purpose", "interview")
	feedbackID := c.Query("feedback_id")

	if purpose == "interview" {
		if _, err := h.interviews.GetByID(c.Request.Context(), interviewID); err != nil {
			writeError(c, err)
			return
		}
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "WSHandler.InterviewWS", "failed to upgrade connection", err))
		return
	}
	conn := &wsConn{c: raw}
	defer raw.Close()

	sess := services.NewLiveSession()

	// Read loop: fold events until the SDK reports call-end or the
	// client goes away.
	callEnded := false
	for {
		var ev voice.Event
		if err := raw.ReadJSON(&ev); err != nil {
			break
		}
		if ev.Type == voice.EventError {
			h.log.WithFields(logrus.Fields{
				"interview_id": interviewID,
				"user_id":      userID,
			}).Warn("voice sdk error event: " + ev.Error)
			continue
		}
		sess.HandleEvent(ev)
		if ev.Type == voice.EventCallEnd {
			callEnded = true
			break
		}
	}

	msgs, first := sess.End()
	if !callEnded || !first || purpose != "interview" || len(msgs) == 0 {
		// Disconnect before call-end means the user navigated away;
		// nothing downstream runs.
		return
	}

	// Generation is cancellable: keep draining the socket and cancel
	// if the client disconnects before the result frame.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for {
			if _, _, err := raw.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	res, err := h.feedback.Create(ctx, services.CreateFeedbackParams{
		InterviewID: interviewID,
		UserID:      userID,
		Transcript:  msgs,
		FeedbackID:  feedbackID,
	})
	if err != nil {
		_ = conn.writeJSON(wsResultMsg{Type: "feedback", Success: false, Error: utils.Message(err)})
		return
	}

	_ = conn.writeJSON(wsResultMsg{
		Type:       "feedback",
		Success:    res.Success,
		FeedbackID: res.FeedbackID,
	})
}
