package servicerecord

import (
	"context"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
	"github.com/tekser/repair-tracker/internal/models"
)

type ListServiceRecords struct {
	repo domain.Repository
}

func NewListServiceRecords(repo domain.Repository) *ListServiceRecords {
	return &ListServiceRecords{repo: repo}
}

// Execute lists records newest first. A non-positive limit returns the
// full set.
func (uc *ListServiceRecords) Execute(
	ctx context.Context,
	page int,
	limit int,
) ([]models.ServiceRecord, int64, error) {

	offset := 0
	if limit > 0 {
		if page <= 0 {
			page = 1
		}
		offset = (page - 1) * limit
	}

	return uc.repo.List(ctx, limit, offset)
}
