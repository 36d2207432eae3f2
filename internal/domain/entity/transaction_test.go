package entity

import (
	"testing"
	"time"

	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coremocks "github.com/mayowa-ojo/digibank/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid credit entry", func(t *testing.T) {
		entry, err := NewTransaction(1, 10, DirectionCredit, 2500, "Salary", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), entry.UserID)
		assert.Equal(t, uint64(10), entry.AccountID)
		assert.Equal(t, DirectionCredit, entry.Direction)
		assert.Equal(t, "25.00", entry.Amount())
		assert.Equal(t, TransactionCompleted, entry.Status)
		assert.True(t, entry.IsCredit())
		assert.Equal(t, fixedTime, entry.CreatedAt)
	})

	t.Run("Debit entry with transfer reference", func(t *testing.T) {
		entry, err := NewTransaction(1, 10, DirectionDebit, 2500, "Transfer to TRF-1-abc", "TRF-1-abc", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "TRF-1-abc", entry.TransferRef)
		assert.False(t, entry.IsCredit())
	})

	t.Run("Zero user ID", func(t *testing.T) {
		entry, err := NewTransaction(0, 10, DirectionCredit, 2500, "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, entry)
	})

	t.Run("Invalid direction", func(t *testing.T) {
		entry, err := NewTransaction(1, 10, Direction("Transfer"), 2500, "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidDirection)
		assert.Nil(t, entry)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		for _, cents := range []int64{0, -100} {
			entry, err := NewTransaction(1, 10, DirectionDebit, cents, "", "", mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.Nil(t, entry)
		}
	})
}

func TestIsValidDirection(t *testing.T) {
	assert.True(t, IsValidDirection("Credit"))
	assert.True(t, IsValidDirection("Debit"))
	assert.False(t, IsValidDirection("credit"))
	assert.False(t, IsValidDirection(""))
}
