package servicerecord

import (
	"context"
	"time"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
	"github.com/tekser/repair-tracker/internal/httperr"
	"github.com/tekser/repair-tracker/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateServiceRecordInput struct {
	CustomerID *uint
	BrandID    *uint
	ServiceID  *uint

	Model        string
	SerialNumber string
	Accessories  string
	Issue        string

	ArrivalDate       string
	ServiceSendDate   string
	ServiceOperation  string
	ServiceReturnDate string
	DeliveryDate      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateServiceRecord struct {
	repo domain.Repository
}

func NewCreateServiceRecord(repo domain.Repository) *CreateServiceRecord {
	return &CreateServiceRecord{repo: repo}
}

// Execute creates a record for the acting user, derives its status and
// writes the initial-snapshot audit entry in the same transaction.
func (uc *CreateServiceRecord) Execute(
	ctx context.Context,
	actorID uint,
	in CreateServiceRecordInput,
) (*models.ServiceRecord, error) {

	if in.ArrivalDate == "" {
		return nil, httperr.ErrBusiness("arrival_date_required")
	}

	arrival, err := parseDate(in.ArrivalDate)
	if err != nil {
		return nil, err
	}

	sendDate, err := parseOptionalDate(in.ServiceSendDate)
	if err != nil {
		return nil, err
	}
	returnDate, err := parseOptionalDate(in.ServiceReturnDate)
	if err != nil {
		return nil, err
	}
	deliveryDate, err := parseOptionalDate(in.DeliveryDate)
	if err != nil {
		return nil, err
	}

	rec := &models.ServiceRecord{
		CustomerID: in.CustomerID,
		BrandID:    in.BrandID,
		ServiceID:  in.ServiceID,

		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		Accessories:  in.Accessories,
		Issue:        in.Issue,

		ArrivalDate:       *arrival,
		ServiceSendDate:   sendDate,
		ServiceOperation:  in.ServiceOperation,
		ServiceReturnDate: returnDate,
		DeliveryDate:      deliveryDate,

		CreatedUserID: &actorID,
	}
	rec.Status = string(domain.DeriveStatus(rec.ServiceSendDate, rec.ServiceReturnDate, rec.DeliveryDate))

	fields, err := domain.CreateLogFields(rec)
	if err != nil {
		return nil, err
	}

	entry := &models.ServiceLog{
		UserID:        &actorID,
		ChangedFields: fields,
	}

	if err := uc.repo.CreateWithLog(ctx, rec, entry); err != nil {
		return nil, err
	}

	return rec, nil
}

// ======================================================
// DATE HELPERS
// ======================================================

const dateLayout = "2006-01-02"

func parseDate(s string) (*time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	return &d, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	return parseDate(s)
}
