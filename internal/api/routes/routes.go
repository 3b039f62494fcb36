package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prepmate/backend/internal/api/handlers"
	"github.com/prepmate/backend/internal/api/middleware"
)

type Deps struct {
	Resume    *handlers.ResumeHandler
	Interview *handlers.InterviewHandler
	Feedback  *handlers.FeedbackHandler
	WS        *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Protected routes (JWT from the identity provider)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.POST("/api/resume-feedback", d.Resume.Review)
	auth.GET("/api/resume-feedback/:id", d.Resume.GetReport)
	auth.GET("/api/resume-uploads", d.Resume.ListUploads)

	// Collection routes stay static, detail routes live under the
	// singular prefix so no static segment competes with a wildcard.
	auth.POST("/api/interviews", d.Interview.Create)
	auth.GET("/api/interviews", d.Interview.ListMine)
	auth.GET("/api/interviews/latest", d.Interview.ListLatest)

	auth.GET("/api/interview/:interview_id", d.Interview.Get)
	auth.POST("/api/interview/:interview_id/feedback", d.Feedback.Create)
	auth.GET("/api/interview/:interview_id/feedback", d.Feedback.GetByInterview)

	// WebSocket (live voice session relay)
	auth.GET("/ws/interview/:interview_id", d.WS.InterviewWS)
}
