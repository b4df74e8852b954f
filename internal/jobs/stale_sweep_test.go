package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tekser/repair-tracker/internal/models"
)

// ======================================================
// MOCK STORE
// ======================================================

type mockSweepStore struct {
	stale    []models.ServiceRecord
	users    []models.User
	notified map[uint]bool

	created []models.Notification

	staleErr  error
	createErr error
}

func (m *mockSweepStore) ListStale(ctx context.Context, before time.Time) ([]models.ServiceRecord, error) {
	if m.staleErr != nil {
		return nil, m.staleErr
	}
	return m.stale, nil
}

func (m *mockSweepStore) ListActiveUsers(ctx context.Context) ([]models.User, error) {
	return m.users, nil
}

func (m *mockSweepStore) HasRecentNotification(ctx context.Context, recordID uint, since time.Time) (bool, error) {
	return m.notified[recordID], nil
}

func (m *mockSweepStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, *n)
	return nil
}

var _ SweepStore = (*mockSweepStore)(nil)

// ======================================================
// TESTS
// ======================================================

var sweepNow = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

func staleRecord(id uint, daysAgo int) models.ServiceRecord {
	creatorID := uint(1)
	return models.ServiceRecord{
		ID:            id,
		Model:         "ThinkPad X1",
		Status:        "sent_to_service",
		CreatedUserID: &creatorID,
		UpdatedAt:     sweepNow.AddDate(0, 0, -daysAgo),
	}
}

func TestSweepNotifiesAllActiveUsers(t *testing.T) {
	store := &mockSweepStore{
		stale: []models.ServiceRecord{staleRecord(42, 10)},
		users: []models.User{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	sweep := NewStaleSweep(store, time.Hour, time.Minute, 7*24*time.Hour, AudienceAll)

	require.NoError(t, sweep.RunOnce(context.Background(), sweepNow))
	require.Len(t, store.created, 3)

	for i, n := range store.created {
		require.Equal(t, uint(i+1), n.UserID)
		require.Equal(t, uint(42), n.ServiceRecordID)
		require.Equal(t, 10, n.OverdueDays)
		require.Contains(t, n.Message, "Service record #42")
		require.Contains(t, n.Message, "10 days")
	}
}

func TestSweepWithNothingStaleCreatesNothing(t *testing.T) {
	store := &mockSweepStore{users: []models.User{{ID: 1}}}
	sweep := NewStaleSweep(store, time.Hour, time.Minute, 7*24*time.Hour, AudienceAll)

	require.NoError(t, sweep.RunOnce(context.Background(), sweepNow))
	require.Empty(t, store.created)
}

func TestSweepSkipsRecentlyNotifiedRecords(t *testing.T) {
	store := &mockSweepStore{
		stale:    []models.ServiceRecord{staleRecord(42, 10)},
		users:    []models.User{{ID: 1}},
		notified: map[uint]bool{42: true},
	}
	sweep := NewStaleSweep(store, time.Hour, time.Minute, 7*24*time.Hour, AudienceAll)

	require.NoError(t, sweep.RunOnce(context.Background(), sweepNow))
	require.Empty(t, store.created)
}

func TestSweepCreatorAudience(t *testing.T) {
	store := &mockSweepStore{
		stale: []models.ServiceRecord{staleRecord(42, 10)},
		users: []models.User{{ID: 1}, {ID: 2}},
	}
	sweep := NewStaleSweep(store, time.Hour, time.Minute, 7*24*time.Hour, AudienceCreator)

	require.NoError(t, sweep.RunOnce(context.Background(), sweepNow))
	require.Len(t, store.created, 1)
	require.Equal(t, uint(1), store.created[0].UserID)
}

func TestSweepCreatorAudienceWithoutCreator(t *testing.T) {
	rec := staleRecord(42, 10)
	rec.CreatedUserID = nil

	store := &mockSweepStore{stale: []models.ServiceRecord{rec}}
	sweep := NewStaleSweep(store, time.Hour, time.Minute, 7*24*time.Hour, AudienceCreator)

	require.NoError(t, sweep.RunOnce(context.Background(), sweepNow))
	require.Empty(t, store.created)
}

func TestSweepMessageIncludesCustomerAndBrand(t *testing.T) {
	rec := staleRecord(42, 12)
	rec.Customer = &models.Customer{CompanyName: "Tekser"}
	rec.Brand = &models.Brand{Name: "Lenovo"}

	store := &mockSweepStore{
		stale: []models.ServiceRecord{rec},
		users: []models.User{{ID: 1}},
	}
	sweep := NewStaleSweep(store, time.Hour, time.Minute, 7*24*time.Hour, AudienceAll)

	require.NoError(t, sweep.RunOnce(context.Background(), sweepNow))
	require.Len(t, store.created, 1)
	require.Equal(t,
		"Service record #42 (Tekser / Lenovo ThinkPad X1) has not been updated for 12 days.",
		store.created[0].Message,
	)
}

func TestSweepDefaultsToAllForUnknownAudience(t *testing.T) {
	sweep := NewStaleSweep(&mockSweepStore{}, time.Hour, time.Minute, time.Hour, "everyone")
	require.Equal(t, AudienceAll, sweep.audience)
}

func TestSweepPropagatesStoreErrors(t *testing.T) {
	want := errors.New("relation does not exist")
	store := &mockSweepStore{staleErr: want}
	sweep := NewStaleSweep(store, time.Hour, time.Minute, time.Hour, AudienceAll)

	require.ErrorIs(t, sweep.RunOnce(context.Background(), sweepNow), want)
}
