package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// TTLs: a resume report is a hand-off between the upload step and the
// results page, so it survives a browse-away-and-back; the
// latest-interviews list just absorbs dashboard refreshes.
const (
	ResumeReportTTL     = 24 * time.Hour
	LatestInterviewsTTL = 30 * time.Second
)

func ResumeReportKey(id string) string { return "resume:report:" + id }

func LatestInterviewsKey(excludeUserID string) string {
	return "interviews:latest:" + excludeUserID
}
