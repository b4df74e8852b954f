package servicerecord

import (
	"context"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
	"github.com/tekser/repair-tracker/internal/models"
)

type GetServiceRecord struct {
	repo domain.Repository
}

func NewGetServiceRecord(repo domain.Repository) *GetServiceRecord {
	return &GetServiceRecord{repo: repo}
}

// Execute returns one record with its audit history attached,
// newest change first.
func (uc *GetServiceRecord) Execute(
	ctx context.Context,
	id uint,
) (*models.ServiceRecord, error) {

	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logs, err := uc.repo.ListLogs(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Logs = logs

	return rec, nil
}
