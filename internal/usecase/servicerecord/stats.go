package servicerecord

import (
	"context"
	"time"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
)

type GetDashboardStats struct {
	repo domain.Repository
}

func NewGetDashboardStats(repo domain.Repository) *GetDashboardStats {
	return &GetDashboardStats{repo: repo}
}

// Execute aggregates fresh counts per request; the dashboard is not a
// hot path and stale numbers would be worse than the extra queries.
func (uc *GetDashboardStats) Execute(ctx context.Context) (*domain.DashboardStats, error) {
	return uc.repo.Stats(ctx, time.Now())
}
