package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureMongoIndexes() error {
	if MongoClient == nil {
		return errors.New("MongoClient is nil; call InitMongo() first")
	}
	db := MongoDatabase()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// feedback: composite-key lookup sorted newest-first. NOT unique —
	// duplicate (interviewId, userId) pairs are possible at write time
	// and lookups take the newest match.
	feedback := db.Collection("feedback")
	_, err := feedback.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "interviewId", Value: 1},
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("by_interview_user_created"),
		},
	})
	if err != nil {
		return err
	}

	// interviews: the latest-interviews query combines finalized, a
	// $ne on userId and a createdAt sort; without this compound index
	// it degrades to a collection scan.
	interviews := db.Collection("interviews")
	_, err = interviews.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "finalized", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("by_finalized_created"),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("by_user_created"),
		},
	})
	if err != nil {
		return err
	}

	// resume_reports: per-user listing support.
	reports := db.Collection("resume_reports")
	_, err = reports.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("by_user_created"),
		},
	})
	return err
}
