package model

import (
	"time"

	"upsc_portal/internal/common/timerange"
)

// DatedArticle is a daily news item, monthly digest, or yearly review.
// Date is always normalized to midnight UTC before storage.
type DatedArticle struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Content   string                `json:"content"`
	Type      timerange.Granularity `json:"type"`
	Date      time.Time             `json:"date"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}
