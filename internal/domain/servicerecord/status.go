package servicerecord

import "time"

// ===============================
// ServiceRecord Status
// ===============================

type Status string

const (
	StatusPending             Status = "pending"
	StatusSentToService       Status = "sent_to_service"
	StatusReturnedFromService Status = "returned_from_service"
	StatusDelivered           Status = "delivered"
)

// DeriveStatus computes the lifecycle status from the three milestone
// dates. Precedence is strict, first match wins: a delivery date always
// means delivered, no matter what the other two say. Total: every input
// maps to exactly one status.
func DeriveStatus(sendDate, returnDate, deliveryDate *time.Time) Status {
	switch {
	case deliveryDate != nil:
		return StatusDelivered
	case returnDate != nil:
		return StatusReturnedFromService
	case sendDate != nil:
		return StatusSentToService
	default:
		return StatusPending
	}
}
