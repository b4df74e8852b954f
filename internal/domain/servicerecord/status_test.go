package servicerecord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func datePtr(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestDeriveStatus(t *testing.T) {
	send := datePtr("2025-03-01")
	ret := datePtr("2025-03-10")
	deliver := datePtr("2025-03-15")

	tests := []struct {
		name     string
		send     *time.Time
		ret      *time.Time
		deliver  *time.Time
		expected Status
	}{
		{"no dates", nil, nil, nil, StatusPending},
		{"send only", send, nil, nil, StatusSentToService},
		{"send and return", send, ret, nil, StatusReturnedFromService},
		{"return without send", nil, ret, nil, StatusReturnedFromService},
		{"all three", send, ret, deliver, StatusDelivered},
		{"delivery only", nil, nil, deliver, StatusDelivered},
		{"delivery beats return", nil, ret, deliver, StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DeriveStatus(tt.send, tt.ret, tt.deliver))
		})
	}
}
