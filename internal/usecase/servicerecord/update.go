package servicerecord

import (
	"context"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
	"github.com/tekser/repair-tracker/internal/httperr"
	"github.com/tekser/repair-tracker/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Nil pointer means "leave unchanged". For the nullable foreign keys a
// zero id clears the reference; for the optional dates an empty string
// clears the date.
type UpdateServiceRecordInput struct {
	CustomerID *uint
	BrandID    *uint
	ServiceID  *uint

	Model        *string
	SerialNumber *string
	Accessories  *string
	Issue        *string

	ArrivalDate       *string
	ServiceSendDate   *string
	ServiceOperation  *string
	ServiceReturnDate *string
	DeliveryDate      *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateServiceRecord struct {
	repo domain.Repository
}

func NewUpdateServiceRecord(repo domain.Repository) *UpdateServiceRecord {
	return &UpdateServiceRecord{repo: repo}
}

// Execute applies a partial update, recomputes the derived status and
// writes the field diff as an audit entry in the same transaction as
// the record itself. An update that changes nothing writes nothing.
func (uc *UpdateServiceRecord) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	in UpdateServiceRecordInput,
) (*models.ServiceRecord, error) {

	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := domain.Snapshot(rec)

	if err := applyUpdate(rec, in); err != nil {
		return nil, err
	}
	rec.Status = string(domain.DeriveStatus(rec.ServiceSendDate, rec.ServiceReturnDate, rec.DeliveryDate))

	changes := domain.Diff(before, domain.Snapshot(rec))
	if len(changes) == 0 {
		return rec, nil
	}

	fields, err := domain.UpdateLogFields(changes)
	if err != nil {
		return nil, err
	}

	entry := &models.ServiceLog{
		UserID:        &actorID,
		ChangedFields: fields,
	}

	if err := uc.repo.UpdateWithLog(ctx, rec, entry); err != nil {
		return nil, err
	}

	return rec, nil
}

func applyUpdate(rec *models.ServiceRecord, in UpdateServiceRecordInput) error {
	if in.CustomerID != nil {
		rec.CustomerID = clearableID(*in.CustomerID)
		rec.Customer = nil
	}
	if in.BrandID != nil {
		rec.BrandID = clearableID(*in.BrandID)
		rec.Brand = nil
	}
	if in.ServiceID != nil {
		rec.ServiceID = clearableID(*in.ServiceID)
		rec.Service = nil
	}

	if in.Model != nil {
		rec.Model = *in.Model
	}
	if in.SerialNumber != nil {
		rec.SerialNumber = *in.SerialNumber
	}
	if in.Accessories != nil {
		rec.Accessories = *in.Accessories
	}
	if in.Issue != nil {
		rec.Issue = *in.Issue
	}
	if in.ServiceOperation != nil {
		rec.ServiceOperation = *in.ServiceOperation
	}

	if in.ArrivalDate != nil {
		if *in.ArrivalDate == "" {
			return httperr.ErrBusiness("arrival_date_required")
		}
		d, err := parseDate(*in.ArrivalDate)
		if err != nil {
			return err
		}
		rec.ArrivalDate = *d
	}
	if in.ServiceSendDate != nil {
		d, err := parseOptionalDate(*in.ServiceSendDate)
		if err != nil {
			return err
		}
		rec.ServiceSendDate = d
	}
	if in.ServiceReturnDate != nil {
		d, err := parseOptionalDate(*in.ServiceReturnDate)
		if err != nil {
			return err
		}
		rec.ServiceReturnDate = d
	}
	if in.DeliveryDate != nil {
		d, err := parseOptionalDate(*in.DeliveryDate)
		if err != nil {
			return err
		}
		rec.DeliveryDate = d
	}

	return nil
}

func clearableID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
