package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/utils"
)

type FeedbackRepository interface {
	// Save overwrites the document at existingID when one is given,
	// otherwise inserts under a fresh id. Returns the document id.
	Save(ctx context.Context, f *models.Feedback, existingID string) (string, error)
	GetByInterview(ctx context.Context, interviewID, userID string) (*models.Feedback, error)
}

type feedbackRepo struct {
	col *mongo.Collection
}

func NewFeedbackRepo(db *mongo.Database) FeedbackRepository {
	return &feedbackRepo{col: db.Collection("feedback")}
}

func (r *feedbackRepo) Save(ctx context.Context, f *models.Feedback, existingID string) (string, error) {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	if existingID != "" {
		f.ID = existingID
		_, err := r.col.ReplaceOne(ctx,
			bson.M{"_id": existingID},
			f,
			options.Replace().SetUpsert(true),
		)
		return f.ID, err
	}

	f.ID = uuid.NewString()
	_, err := r.col.InsertOne(ctx, f)
	return f.ID, err
}

// GetByInterview returns the newest document matching the composite
// key. Nothing enforces uniqueness of (interviewId, userId) at write
// time; sorting by createdAt makes "first match" deterministic.
func (r *feedbackRepo) GetByInterview(ctx context.Context, interviewID, userID string) (*models.Feedback, error) {
	var f models.Feedback
	err := r.col.FindOne(ctx,
		bson.M{"interviewId": interviewID, "userId": userID},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
