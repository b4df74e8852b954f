package servicerecord

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeStatusCounts(t *testing.T) {
	sum := SummarizeStatusCounts([]StatusCount{
		{Status: "pending", Count: 4},
		{Status: "sent_to_service", Count: 3},
		{Status: "returned_from_service", Count: 2},
		{Status: "delivered", Count: 1},
	})

	require.Equal(t, int64(4), sum.Pending)
	require.Equal(t, int64(3), sum.SentToService)
	require.Equal(t, int64(2), sum.ReturnedFromService)
	require.Equal(t, int64(1), sum.Delivered)
	require.Equal(t, int64(10), sum.Pending+sum.SentToService+sum.ReturnedFromService+sum.Delivered)
}

func TestSummarizeStatusCountsIgnoresUnknownStatus(t *testing.T) {
	sum := SummarizeStatusCounts([]StatusCount{
		{Status: "pending", Count: 2},
		{Status: "archived", Count: 5},
	})

	require.Equal(t, int64(2), sum.Pending)
	require.Zero(t, sum.SentToService)
	require.Zero(t, sum.ReturnedFromService)
	require.Zero(t, sum.Delivered)
}
