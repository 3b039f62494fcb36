package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/prepmate/backend/internal/models"
)

type ResumeUploadRepository interface {
	Insert(ctx context.Context, row *models.ResumeUpload) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error)
}

type resumeUploadRepo struct {
	db *gorm.DB
}

func NewResumeUploadRepo(db *gorm.DB) ResumeUploadRepository {
	return &resumeUploadRepo{db: db}
}

func (r *resumeUploadRepo) Insert(ctx context.Context, row *models.ResumeUpload) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *resumeUploadRepo) ListByUser(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []models.ResumeUpload
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
