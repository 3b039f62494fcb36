package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/prepmate/backend/config"
	"github.com/prepmate/backend/internal/api/handlers"
	"github.com/prepmate/backend/internal/api/middleware"
	"github.com/prepmate/backend/internal/api/routes"
	"github.com/prepmate/backend/internal/cache"
	"github.com/prepmate/backend/internal/logger"
	"github.com/prepmate/backend/internal/providers/llm"
	mongorepo "github.com/prepmate/backend/internal/repositories/mongo"
	pgrepo "github.com/prepmate/backend/internal/repositories/postgres"
	"github.com/prepmate/backend/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	log.Info("MongoDB connected")

	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	log.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	log.Info("Redis connected")

	ctx := context.Background()
	model, err := llm.NewVertexGemini(ctx,
		os.Getenv("VERTEX_PROJECT_ID"),
		os.Getenv("VERTEX_LOCATION"),
		os.Getenv("VERTEX_MODEL"),
	)
	if err != nil {
		log.Fatalf("Vertex init error: %v", err)
	}
	defer model.Close()

	db := config.MongoDatabase()
	c := cache.NewRedisCache(config.RedisClient)

	interviewSvc := services.NewInterviewService(mongorepo.NewInterviewRepo(db), c, log)
	feedbackSvc := services.NewFeedbackService(mongorepo.NewFeedbackRepo(db), model, log)
	resumeSvc := services.NewResumeService(
		mongorepo.NewResumeReportRepo(db),
		pgrepo.NewResumeUploadRepo(config.PostgresDB),
		model,
		c,
		log,
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Resume:    handlers.NewResumeHandler(resumeSvc),
		Interview: handlers.NewInterviewHandler(interviewSvc),
		Feedback:  handlers.NewFeedbackHandler(feedbackSvc),
		WS:        handlers.NewWSHandler(interviewSvc, feedbackSvc, log),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
