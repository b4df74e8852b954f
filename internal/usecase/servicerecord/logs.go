package servicerecord

import (
	"context"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
	"github.com/tekser/repair-tracker/internal/models"
)

type ListRecordLogs struct {
	repo domain.Repository
}

func NewListRecordLogs(repo domain.Repository) *ListRecordLogs {
	return &ListRecordLogs{repo: repo}
}

func (uc *ListRecordLogs) Execute(
	ctx context.Context,
	recordID uint,
) ([]models.ServiceLog, error) {

	// 404 for an unknown record rather than an empty history.
	if _, err := uc.repo.GetByID(ctx, recordID); err != nil {
		return nil, err
	}

	return uc.repo.ListLogs(ctx, recordID)
}
