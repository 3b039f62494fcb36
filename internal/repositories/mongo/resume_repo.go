package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/utils"
)

// ResumeReportRepository is insert-only; the resume flow never updates
// a report in place.
type ResumeReportRepository interface {
	Insert(ctx context.Context, rep *models.ResumeReport) error
	GetByID(ctx context.Context, id string) (*models.ResumeReport, error)
}

type resumeReportRepo struct {
	col *mongo.Collection
}

func NewResumeReportRepo(db *mongo.Database) ResumeReportRepository {
	return &resumeReportRepo{col: db.Collection("resume_reports")}
}

func (r *resumeReportRepo) Insert(ctx context.Context, rep *models.ResumeReport) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, rep)
	return err
}

func (r *resumeReportRepo) GetByID(ctx context.Context, id string) (*models.ResumeReport, error) {
	var rep models.ResumeReport
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rep)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}
