package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/prepmate/backend/internal/cache"
	"github.com/prepmate/backend/internal/models"
	mongorepo "github.com/prepmate/backend/internal/repositories/mongo"
	"github.com/prepmate/backend/internal/utils"
)

type InterviewService interface {
	Create(ctx context.Context, iv *models.Interview) error
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	ListByUser(ctx context.Context, userID string) ([]models.Interview, error)
	// ListLatest returns finalized interviews not owned by
	// excludeUserID, newest first, at most limit.
	ListLatest(ctx context.Context, excludeUserID string, limit int64) ([]models.Interview, error)
}

type interviewService struct {
	interviews mongorepo.InterviewRepository
	cache      cache.Cache
	log        *logrus.Logger
}

func NewInterviewService(interviews mongorepo.InterviewRepository, c cache.Cache, log *logrus.Logger) InterviewService {
	return &interviewService{interviews: interviews, cache: c, log: log}
}

func (s *interviewService) Create(ctx context.Context, iv *models.Interview) error {
	const op = "InterviewService.Create"

	if iv == nil || iv.Role == "" || iv.Type == "" {
		return utils.E(utils.CodeInvalidArgument, op, "role and type are required", nil)
	}
	switch iv.Type {
	case models.InterviewTypeTechnical, models.InterviewTypeBehavioral, models.InterviewTypeMixed:
	default:
		return utils.E(utils.CodeInvalidArgument, op, "type must be technical, behavioral or mixed", nil)
	}
	if iv.UserID == "" {
		iv.UserID = models.UserIDUnassigned
	}

	if err := s.interviews.Create(ctx, iv); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create interview", err)
	}
	return nil
}

func (s *interviewService) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	const op = "InterviewService.GetByID"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "interview id is required", nil)
	}

	iv, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get interview", err)
	}
	return iv, nil
}

func (s *interviewService) ListByUser(ctx context.Context, userID string) ([]models.Interview, error) {
	const op = "InterviewService.ListByUser"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	out, err := s.interviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return out, nil
}

func (s *interviewService) ListLatest(ctx context.Context, excludeUserID string, limit int64) ([]models.Interview, error) {
	const op = "InterviewService.ListLatest"

	key := cache.LatestInterviewsKey(excludeUserID)

	var cached []models.Interview
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.log.WithError(err).Warn("latest interviews cache read failed")
	} else if hit && int64(len(cached)) >= limit {
		if limit > 0 && int64(len(cached)) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	out, err := s.interviews.ListLatest(ctx, excludeUserID, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list latest interviews", err)
	}

	if err := s.cache.SetJSON(ctx, key, out, cache.LatestInterviewsTTL); err != nil {
		s.log.WithError(err).Warn("latest interviews cache write failed")
	}
	return out, nil
}
