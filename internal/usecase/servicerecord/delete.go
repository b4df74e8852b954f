package servicerecord

import (
	"context"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
)

type DeleteServiceRecord struct {
	repo domain.Repository
}

func NewDeleteServiceRecord(repo domain.Repository) *DeleteServiceRecord {
	return &DeleteServiceRecord{repo: repo}
}

// Execute removes a record; its audit history cascades away with it.
func (uc *DeleteServiceRecord) Execute(ctx context.Context, id uint) error {
	return uc.repo.Delete(ctx, id)
}
