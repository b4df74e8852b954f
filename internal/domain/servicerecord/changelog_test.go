package servicerecord

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tekser/repair-tracker/internal/models"
)

func testRecord() *models.ServiceRecord {
	customerID := uint(7)
	arrival, _ := time.Parse("2006-01-02", "2025-03-01")

	return &models.ServiceRecord{
		ID:          1,
		CustomerID:  &customerID,
		Model:       "ThinkPad X1",
		ArrivalDate: arrival,
		Status:      string(StatusPending),
	}
}

func TestSnapshotNormalization(t *testing.T) {
	rec := testRecord()
	snap := Snapshot(rec)

	require.Equal(t, "7", *snap["customer"])
	require.Equal(t, "ThinkPad X1", *snap["model"])
	require.Equal(t, "2025-03-01", *snap["arrival_date"])
	require.Equal(t, "pending", *snap["status"])

	// Unset fields are absent, not empty strings.
	require.Nil(t, snap["brand"])
	require.Nil(t, snap["serial_number"])
	require.Nil(t, snap["service_send_date"])
	require.Nil(t, snap["delivery_date"])
}

func TestDiffSingleField(t *testing.T) {
	rec := testRecord()
	before := Snapshot(rec)

	rec.Issue = "does not power on"
	after := Snapshot(rec)

	changes := Diff(before, after)
	require.Len(t, changes, 1)

	change := changes["issue"]
	require.Nil(t, change.Old)
	require.Equal(t, "does not power on", *change.New)
}

func TestDiffIdenticalSnapshotsIsEmpty(t *testing.T) {
	rec := testRecord()
	require.Empty(t, Diff(Snapshot(rec), Snapshot(rec)))
}

func TestDiffTreatsEmptyStringAsAbsent(t *testing.T) {
	rec := testRecord()
	before := Snapshot(rec)

	rec.SerialNumber = ""
	rec.Accessories = ""
	after := Snapshot(rec)

	require.Empty(t, Diff(before, after))
}

func TestDiffForeignKeyByID(t *testing.T) {
	rec := testRecord()
	before := Snapshot(rec)

	newCustomer := uint(9)
	rec.CustomerID = &newCustomer
	after := Snapshot(rec)

	changes := Diff(before, after)
	require.Len(t, changes, 1)
	require.Equal(t, "7", *changes["customer"].Old)
	require.Equal(t, "9", *changes["customer"].New)
}

func TestDiffClearedDate(t *testing.T) {
	rec := testRecord()
	rec.ServiceSendDate = datePtr("2025-03-05")
	before := Snapshot(rec)

	rec.ServiceSendDate = nil
	after := Snapshot(rec)

	changes := Diff(before, after)
	require.Len(t, changes, 1)
	require.Equal(t, "2025-03-05", *changes["service_send_date"].Old)
	require.Nil(t, changes["service_send_date"].New)
}

func TestCreateLogFields(t *testing.T) {
	rec := testRecord()

	raw, err := CreateLogFields(rec)
	require.NoError(t, err)

	var fields map[string]*string
	require.NoError(t, json.Unmarshal(raw, &fields))

	require.Equal(t, "2025-03-01", *fields["arrival_date"])
	require.Equal(t, "pending", *fields["status"])
	require.Nil(t, fields["delivery_date"])
	// Every tracked field is present in the initial snapshot.
	require.Len(t, fields, 13)
}

func TestUpdateLogFields(t *testing.T) {
	oldStatus := "pending"
	newStatus := "sent_to_service"

	raw, err := UpdateLogFields(map[string]FieldChange{
		"status": {Old: &oldStatus, New: &newStatus},
	})
	require.NoError(t, err)

	var fields map[string]FieldChange
	require.NoError(t, json.Unmarshal(raw, &fields))
	require.Equal(t, "pending", *fields["status"].Old)
	require.Equal(t, "sent_to_service", *fields["status"].New)
}
