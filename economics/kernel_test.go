package economics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBpsApply(t *testing.T) {
	cases := []struct {
		name   string
		amount uint64
		bps    uint64
		want   uint64
	}{
		{"whole", 1_000_000, 10000, 1_000_000},
		{"half", 1_000_000, 5000, 500_000},
		{"floors", 1_000_001, 5000, 500_000},
		{"zero_bps", 1_000_000, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BpsApply(tc.amount, tc.bps)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestWeightedZeroDenominator(t *testing.T) {
	got, err := Weighted(2_000_000, 500_000, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0), got)
}

func TestWeightedProRata(t *testing.T) {
	got, err := Weighted(1_500_000, 5_000_000, 10_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(750_000), got)
}

func TestMinCapUncapped(t *testing.T) {
	require.Equal(t, uint64(123), MinCap(123, 0))
}

func TestMinCapTruncates(t *testing.T) {
	require.Equal(t, uint64(100), MinCap(250, 100))
	require.Equal(t, uint64(99), MinCap(99, 100))
}
