package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/prepmate/backend/internal/cache"
	"github.com/prepmate/backend/internal/extract"
	"github.com/prepmate/backend/internal/models"
	"github.com/prepmate/backend/internal/prompts"
	"github.com/prepmate/backend/internal/providers/llm"
	mongorepo "github.com/prepmate/backend/internal/repositories/mongo"
	pgrepo "github.com/prepmate/backend/internal/repositories/postgres"
	"github.com/prepmate/backend/internal/utils"
)

type ResumeService interface {
	// Review runs the full pipeline: extraction, prompt, model call,
	// validation, persistence. The uploaded binary is discarded after
	// extraction; only an audit row and the report survive.
	Review(ctx context.Context, userID, filename string, data []byte) (*models.ResumeReport, error)
	// ExtractOnly is the text-extraction-only variant of the upload
	// contract.
	ExtractOnly(ctx context.Context, userID, filename string, data []byte) (string, error)
	GetReport(ctx context.Context, id string) (*models.ResumeReport, error)
	ListUploads(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error)
}

type resumeService struct {
	reports mongorepo.ResumeReportRepository
	uploads pgrepo.ResumeUploadRepository
	model   llm.Provider
	cache   cache.Cache
	log     *logrus.Logger
}

func NewResumeService(
	reports mongorepo.ResumeReportRepository,
	uploads pgrepo.ResumeUploadRepository,
	model llm.Provider,
	c cache.Cache,
	log *logrus.Logger,
) ResumeService {
	return &resumeService{reports: reports, uploads: uploads, model: model, cache: c, log: log}
}

func (s *resumeService) Review(ctx context.Context, userID, filename string, data []byte) (*models.ResumeReport, error) {
	const op = "ResumeService.Review"

	text, err := s.extractAudited(ctx, op, userID, filename, data, "")
	if err != nil {
		return nil, err
	}

	prompt, system := prompts.ResumeFeedback(text)

	raw, err := s.model.GenerateObject(ctx, llm.ObjectRequest{
		System: system,
		Prompt: prompt,
		Schema: llm.SchemaResumeFeedback,
	})
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "Internal server error", err)
	}

	var rep models.ResumeReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Internal server error", err)
	}
	if err := rep.Validate(); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Internal server error", err)
	}

	rep.ID = uuid.NewString()
	rep.UserID = userID
	rep.CreatedAt = time.Now().UTC()

	if err := s.reports.Insert(ctx, &rep); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Internal server error", err)
	}

	// Hand-off cache so the results page can fetch without touching
	// the store. Best effort: a cold cache only costs a mongo read.
	if err := s.cache.SetJSON(ctx, cache.ResumeReportKey(rep.ID), &rep, cache.ResumeReportTTL); err != nil {
		s.log.WithError(err).WithField("report_id", rep.ID).Warn("resume report cache write failed")
	}

	return &rep, nil
}

func (s *resumeService) ExtractOnly(ctx context.Context, userID, filename string, data []byte) (string, error) {
	const op = "ResumeService.ExtractOnly"
	return s.extractAudited(ctx, op, userID, filename, data, "")
}

// extractAudited runs extraction and records the upload audit row. The
// row is written for failures too; only metadata is kept.
func (s *resumeService) extractAudited(ctx context.Context, op, userID, filename string, data []byte, reportID string) (string, error) {
	text, extractErr := extract.Text(data, filename)

	status := models.UploadStatusExtracted
	if extractErr != nil {
		status = models.UploadStatusFailed
	}
	row := &models.ResumeUpload{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   filename,
		FileSize:   len(data),
		MimeType:   mimeTypeFor(filename),
		Status:     status,
		ReportID:   reportID,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.uploads.Insert(ctx, row); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"op": op, "user_id": userID,
		}).Warn("resume upload audit write failed")
	}

	return text, extractErr
}

func (s *resumeService) GetReport(ctx context.Context, id string) (*models.ResumeReport, error) {
	const op = "ResumeService.GetReport"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "report id is required", nil)
	}

	var cached models.ResumeReport
	if hit, err := s.cache.GetJSON(ctx, cache.ResumeReportKey(id), &cached); err != nil {
		s.log.WithError(err).WithField("report_id", id).Warn("resume report cache read failed")
	} else if hit {
		return &cached, nil
	}

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "report not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get report", err)
	}
	return rep, nil
}

func (s *resumeService) ListUploads(ctx context.Context, userID string, limit int) ([]models.ResumeUpload, error) {
	const op = "ResumeService.ListUploads"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	rows, err := s.uploads.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list uploads", err)
	}
	return rows, nil
}

func mimeTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}
