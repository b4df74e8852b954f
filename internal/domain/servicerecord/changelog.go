package servicerecord

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/tekser/repair-tracker/internal/models"
)

// ===============================
// Change tracking
// ===============================
//
// Every tracked field is declared once here with an accessor returning
// its normalized string form. Normalization rules:
//   - foreign keys     → decimal id of the referenced row
//   - dates            → "2006-01-02"
//   - scalars          → the raw string
//   - empty string and missing value both normalize to absent (nil),
//     so a ""↔null transition is never reported as a change.

const dateLayout = "2006-01-02"

type FieldChange struct {
	Old *string `json:"old"`
	New *string `json:"new"`
}

type fieldDef struct {
	name  string
	value func(r *models.ServiceRecord) *string
}

var trackedFields = []fieldDef{
	{"customer", func(r *models.ServiceRecord) *string { return idValue(r.CustomerID) }},
	{"brand", func(r *models.ServiceRecord) *string { return idValue(r.BrandID) }},
	{"model", func(r *models.ServiceRecord) *string { return strValue(r.Model) }},
	{"serial_number", func(r *models.ServiceRecord) *string { return strValue(r.SerialNumber) }},
	{"accessories", func(r *models.ServiceRecord) *string { return strValue(r.Accessories) }},
	{"arrival_date", func(r *models.ServiceRecord) *string { d := r.ArrivalDate; return dateValue(&d) }},
	{"issue", func(r *models.ServiceRecord) *string { return strValue(r.Issue) }},
	{"service", func(r *models.ServiceRecord) *string { return idValue(r.ServiceID) }},
	{"service_send_date", func(r *models.ServiceRecord) *string { return dateValue(r.ServiceSendDate) }},
	{"service_operation", func(r *models.ServiceRecord) *string { return strValue(r.ServiceOperation) }},
	{"service_return_date", func(r *models.ServiceRecord) *string { return dateValue(r.ServiceReturnDate) }},
	{"delivery_date", func(r *models.ServiceRecord) *string { return dateValue(r.DeliveryDate) }},
	{"status", func(r *models.ServiceRecord) *string { return strValue(r.Status) }},
}

func idValue(id *uint) *string {
	if id == nil {
		return nil
	}
	s := strconv.FormatUint(uint64(*id), 10)
	return &s
}

func dateValue(d *time.Time) *string {
	if d == nil || d.IsZero() {
		return nil
	}
	s := d.Format(dateLayout)
	return &s
}

func strValue(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Snapshot captures the normalized value of every tracked field.
func Snapshot(r *models.ServiceRecord) map[string]*string {
	snap := make(map[string]*string, len(trackedFields))
	for _, f := range trackedFields {
		snap[f.name] = f.value(r)
	}
	return snap
}

// Diff compares two snapshots and returns only the fields whose
// normalized values differ. An empty result means the update changed
// nothing and no log entry should be written.
func Diff(before, after map[string]*string) map[string]FieldChange {
	changes := make(map[string]FieldChange)
	for _, f := range trackedFields {
		o, n := before[f.name], after[f.name]
		if equalValue(o, n) {
			continue
		}
		changes[f.name] = FieldChange{Old: o, New: n}
	}
	return changes
}

func equalValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// CreateLogFields marshals the initial-state snapshot written with a
// freshly created record. There is no old side: each field maps to its
// value at creation time.
func CreateLogFields(r *models.ServiceRecord) (json.RawMessage, error) {
	return json.Marshal(Snapshot(r))
}

// UpdateLogFields marshals a non-empty diff for an update log entry.
func UpdateLogFields(changes map[string]FieldChange) (json.RawMessage, error) {
	return json.Marshal(changes)
}
