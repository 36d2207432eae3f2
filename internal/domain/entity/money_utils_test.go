package entity

import (
	"testing"

	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"40", 4000},
			{"40.5", 4050},
			{"40.50", 4050},
			{"0.01", 1},
			{"0", 0},
			{"0.00", 0},
			{"  10.15  ", 1015},
			{"9999999999.99", 999999999999},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Malformed amounts", func(t *testing.T) {
		testCases := []string{
			"",
			"   ",
			"abc",
			"10.123",
			"10.1.2",
			"$10.00",
			"10,00",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				_, err := ParseAmount(tc)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := ParseAmount("-10.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("Positive amount passes", func(t *testing.T) {
		cents, err := ParsePositiveAmount("0.01")
		require.NoError(t, err)
		assert.Equal(t, int64(1), cents)
	})

	t.Run("Zero is rejected", func(t *testing.T) {
		_, err := ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative is rejected", func(t *testing.T) {
		_, err := ParsePositiveAmount("-5")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestFormatCents(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{1015, "10.15"},
		{1000, "10.00"},
		{1, "0.01"},
		{0, "0.00"},
		{50, "0.50"},
		{-1015, "-10.15"},
		{999999999999, "9999999999.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCents(tc.cents))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	// A parsed amount formatted back must equal its canonical 2-decimal form
	cents, err := ParseAmount("40.5")
	require.NoError(t, err)
	assert.Equal(t, "40.50", FormatCents(cents))
}
