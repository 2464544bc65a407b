package helpers

import (
	"testing"

	"nft-auction-house/internal/markerrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantBase  string // integer base units
		wantError bool
	}{
		{name: "whole_unit", input: "1", wantBase: "1000000000000000000"},
		{name: "fractional", input: "2.5", wantBase: "2500000000000000000"},
		{name: "smallest_unit", input: "0.000000000000000001", wantBase: "1"},
		{name: "zero", input: "0", wantBase: "0"},
		{name: "sub_base_unit_precision", input: "0.0000000000000000001", wantError: true},
		{name: "negative", input: "-1", wantError: true},
		{name: "not_a_number", input: "one", wantError: true},
		{name: "empty", input: "", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDisplayAmount(tc.input)
			if tc.wantError {
				require.ErrorIs(t, err, markerrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			require.True(t, got.Equal(decimal.RequireFromString(tc.wantBase)),
				"got %s want %s", got, tc.wantBase)
		})
	}
}

func TestFormatDisplayAmount_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, display := range []string{"0", "1", "2.5", "0.000000000000000001", "1234567.89"} {
		base, err := ParseDisplayAmount(display)
		require.NoError(t, err)
		require.Equal(t, display, FormatDisplayAmount(base))
	}
}
