package models

import "time"

const (
	UploadStatusExtracted = "extracted"
	UploadStatusFailed    = "failed"
)

// ResumeUpload is the audit row written for every resume upload. Only
// metadata is kept; the uploaded binary itself is never stored.
type ResumeUpload struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID   string `gorm:"column:user_id;type:text;index" json:"user_id"`
	FileName string `gorm:"column:file_name;type:text" json:"file_name"`
	FileSize int    `gorm:"column:file_size;type:integer" json:"file_size"`
	MimeType string `gorm:"column:mime_type;type:text" json:"mime_type"`

	Status   string `gorm:"column:status;type:text" json:"status"` // extracted|failed
	ReportID string `gorm:"column:report_id;type:text" json:"report_id,omitempty"`

	UploadedAt time.Time `gorm:"column:uploaded_at;type:timestamptz" json:"uploaded_at"`
}

func (ResumeUpload) TableName() string { return "resume_uploads" }
