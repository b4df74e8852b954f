package servicerecord

import (
	"context"
	"time"

	"github.com/tekser/repair-tracker/internal/models"
)

// ===============================
// Dashboard statistics
// ===============================

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type BrandCount struct {
	// The deployed frontend binds to the original API's key.
	Name  string `gorm:"column:name" json:"brand__name"`
	Count int64  `json:"count"`
}

type StatusSummary struct {
	Pending             int64 `json:"pending"`
	SentToService       int64 `json:"sent_to_service"`
	ReturnedFromService int64 `json:"returned_from_service"`
	Delivered           int64 `json:"delivered"`
}

type DashboardStats struct {
	TotalRecords   int64         `json:"total_records"`
	MonthlyRecords int64         `json:"monthly_records"`
	WeeklyRecords  int64         `json:"weekly_records"`
	StatusSummary  StatusSummary `json:"status_summary"`
	StatusCounts   []StatusCount `json:"status_counts"`
	TopBrands      []BrandCount  `json:"top_brands"`
}

// SummarizeStatusCounts folds per-status counts into the fixed summary
// buckets. Counts arrive already lowercased; anything outside the four
// known statuses is ignored.
func SummarizeStatusCounts(counts []StatusCount) StatusSummary {
	var sum StatusSummary
	for _, sc := range counts {
		switch Status(sc.Status) {
		case StatusPending:
			sum.Pending += sc.Count
		case StatusSentToService:
			sum.SentToService += sc.Count
		case StatusReturnedFromService:
			sum.ReturnedFromService += sc.Count
		case StatusDelivered:
			sum.Delivered += sc.Count
		}
	}
	return sum
}

// ===============================
// Repository
// ===============================

type Repository interface {
	// -------- Record + log (one transaction) --------
	CreateWithLog(
		ctx context.Context,
		rec *models.ServiceRecord,
		entry *models.ServiceLog,
	) error

	UpdateWithLog(
		ctx context.Context,
		rec *models.ServiceRecord,
		entry *models.ServiceLog,
	) error

	// -------- Record --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.ServiceRecord, error)

	List(
		ctx context.Context,
		limit int,
		offset int,
	) ([]models.ServiceRecord, int64, error)

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Logs --------
	ListLogs(
		ctx context.Context,
		recordID uint,
	) ([]models.ServiceLog, error)

	// -------- Dashboard --------
	Stats(
		ctx context.Context,
		now time.Time,
	) (*DashboardStats, error)
}
