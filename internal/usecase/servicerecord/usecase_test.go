package servicerecord

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/tekser/repair-tracker/internal/domain/servicerecord"
	"github.com/tekser/repair-tracker/internal/httperr"
	"github.com/tekser/repair-tracker/internal/models"
)

// ======================================================
// MOCK REPOSITORY
// ======================================================

type mockRepo struct {
	record *models.ServiceRecord

	createdRec   *models.ServiceRecord
	createdEntry *models.ServiceLog
	updatedRec   *models.ServiceRecord
	updatedEntry *models.ServiceLog

	createErr error
	updateErr error
}

func (m *mockRepo) CreateWithLog(ctx context.Context, rec *models.ServiceRecord, entry *models.ServiceLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	rec.ID = 1
	m.createdRec = rec
	m.createdEntry = entry
	return nil
}

func (m *mockRepo) UpdateWithLog(ctx context.Context, rec *models.ServiceRecord, entry *models.ServiceLog) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedRec = rec
	m.updatedEntry = entry
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uint) (*models.ServiceRecord, error) {
	if m.record == nil || m.record.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m.record
	return &cp, nil
}

func (m *mockRepo) List(ctx context.Context, limit, offset int) ([]models.ServiceRecord, int64, error) {
	if m.record == nil {
		return nil, 0, nil
	}
	return []models.ServiceRecord{*m.record}, 1, nil
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	if m.record == nil || m.record.ID != id {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (m *mockRepo) ListLogs(ctx context.Context, recordID uint) ([]models.ServiceLog, error) {
	return nil, nil
}

func (m *mockRepo) Stats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	return &domain.DashboardStats{}, nil
}

var _ domain.Repository = (*mockRepo)(nil)

// ======================================================
// CREATE
// ======================================================

func TestCreateRequiresArrivalDate(t *testing.T) {
	uc := NewCreateServiceRecord(&mockRepo{})

	_, err := uc.Execute(context.Background(), 1, CreateServiceRecordInput{
		Model: "ThinkPad X1",
	})

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "arrival_date_required", be.Code)
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	uc := NewCreateServiceRecord(&mockRepo{})

	_, err := uc.Execute(context.Background(), 1, CreateServiceRecordInput{
		ArrivalDate: "03/01/2025",
	})

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "invalid_date", be.Code)
}

func TestCreateDerivesPendingAndWritesSnapshot(t *testing.T) {
	repo := &mockRepo{}
	uc := NewCreateServiceRecord(repo)

	customerID := uint(7)
	rec, err := uc.Execute(context.Background(), 3, CreateServiceRecordInput{
		CustomerID:  &customerID,
		Model:       "ThinkPad X1",
		Issue:       "does not power on",
		ArrivalDate: "2025-03-01",
	})
	require.NoError(t, err)

	require.Equal(t, "pending", rec.Status)
	require.Equal(t, uint(3), *rec.CreatedUserID)

	require.NotNil(t, repo.createdEntry)
	require.Equal(t, uint(3), *repo.createdEntry.UserID)

	var fields map[string]*string
	require.NoError(t, json.Unmarshal(repo.createdEntry.ChangedFields, &fields))
	require.Equal(t, "7", *fields["customer"])
	require.Equal(t, "2025-03-01", *fields["arrival_date"])
	require.Equal(t, "pending", *fields["status"])
	require.Nil(t, fields["service_send_date"])
}

func TestCreateDeliveryDateWinsOverOtherMilestones(t *testing.T) {
	repo := &mockRepo{}
	uc := NewCreateServiceRecord(repo)

	rec, err := uc.Execute(context.Background(), 1, CreateServiceRecordInput{
		ArrivalDate:       "2025-03-01",
		ServiceSendDate:   "2025-03-02",
		ServiceReturnDate: "2025-03-05",
		DeliveryDate:      "2025-03-06",
	})
	require.NoError(t, err)
	require.Equal(t, "delivered", rec.Status)
}

func TestCreatePropagatesRepositoryError(t *testing.T) {
	want := errors.New("connection reset")
	uc := NewCreateServiceRecord(&mockRepo{createErr: want})

	_, err := uc.Execute(context.Background(), 1, CreateServiceRecordInput{
		ArrivalDate: "2025-03-01",
	})
	require.ErrorIs(t, err, want)
}

// ======================================================
// UPDATE
// ======================================================

func storedRecord() *models.ServiceRecord {
	arrival, _ := time.Parse("2006-01-02", "2025-03-01")
	customerID := uint(7)
	creatorID := uint(3)

	return &models.ServiceRecord{
		ID:            42,
		CustomerID:    &customerID,
		Model:         "ThinkPad X1",
		Issue:         "does not power on",
		ArrivalDate:   arrival,
		CreatedUserID: &creatorID,
		Status:        "pending",
	}
}

func TestUpdateSendDateTransitionsStatus(t *testing.T) {
	repo := &mockRepo{record: storedRecord()}
	uc := NewUpdateServiceRecord(repo)

	sendDate := "2025-03-04"
	rec, err := uc.Execute(context.Background(), 5, 42, UpdateServiceRecordInput{
		ServiceSendDate: &sendDate,
	})
	require.NoError(t, err)

	require.Equal(t, "sent_to_service", rec.Status)
	require.NotNil(t, repo.updatedEntry)
	require.Equal(t, uint(5), *repo.updatedEntry.UserID)

	var changes map[string]domain.FieldChange
	require.NoError(t, json.Unmarshal(repo.updatedEntry.ChangedFields, &changes))
	require.Len(t, changes, 2)
	require.Nil(t, changes["service_send_date"].Old)
	require.Equal(t, "2025-03-04", *changes["service_send_date"].New)
	require.Equal(t, "pending", *changes["status"].Old)
	require.Equal(t, "sent_to_service", *changes["status"].New)
}

func TestUpdateWithoutChangesWritesNothing(t *testing.T) {
	repo := &mockRepo{record: storedRecord()}
	uc := NewUpdateServiceRecord(repo)

	sameModel := "ThinkPad X1"
	rec, err := uc.Execute(context.Background(), 5, 42, UpdateServiceRecordInput{
		Model: &sameModel,
	})
	require.NoError(t, err)

	require.Equal(t, "pending", rec.Status)
	require.Nil(t, repo.updatedRec)
	require.Nil(t, repo.updatedEntry)
}

func TestUpdateZeroIDClearsForeignKey(t *testing.T) {
	repo := &mockRepo{record: storedRecord()}
	uc := NewUpdateServiceRecord(repo)

	zero := uint(0)
	rec, err := uc.Execute(context.Background(), 5, 42, UpdateServiceRecordInput{
		CustomerID: &zero,
	})
	require.NoError(t, err)

	require.Nil(t, rec.CustomerID)

	var changes map[string]domain.FieldChange
	require.NoError(t, json.Unmarshal(repo.updatedEntry.ChangedFields, &changes))
	require.Equal(t, "7", *changes["customer"].Old)
	require.Nil(t, changes["customer"].New)
}

func TestUpdateCannotClearArrivalDate(t *testing.T) {
	repo := &mockRepo{record: storedRecord()}
	uc := NewUpdateServiceRecord(repo)

	empty := ""
	_, err := uc.Execute(context.Background(), 5, 42, UpdateServiceRecordInput{
		ArrivalDate: &empty,
	})

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "arrival_date_required", be.Code)
	require.Nil(t, repo.updatedRec)
}

func TestUpdateUnknownRecord(t *testing.T) {
	uc := NewUpdateServiceRecord(&mockRepo{record: storedRecord()})

	_, err := uc.Execute(context.Background(), 5, 99, UpdateServiceRecordInput{})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdatePropagatesRepositoryError(t *testing.T) {
	want := errors.New("serialization failure")
	repo := &mockRepo{record: storedRecord(), updateErr: want}
	uc := NewUpdateServiceRecord(repo)

	delivery := "2025-03-06"
	_, err := uc.Execute(context.Background(), 5, 42, UpdateServiceRecordInput{
		DeliveryDate: &delivery,
	})
	require.ErrorIs(t, err, want)
}
