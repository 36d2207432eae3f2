package entity

import (
	"regexp"
	"testing"
	"time"

	errs "github.com/mayowa-ojo/digibank/internal/domain/error"
	coremocks "github.com/mayowa-ojo/digibank/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransfer(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transfer creation", func(t *testing.T) {
		transfer, err := NewTransfer(1, 2, 10, 20, 4000, "rent", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), transfer.FromUserID)
		assert.Equal(t, uint64(2), transfer.ToUserID)
		assert.Equal(t, uint64(10), transfer.FromAccountID)
		assert.Equal(t, uint64(20), transfer.ToAccountID)
		assert.Equal(t, "40.00", transfer.Amount())
		assert.Equal(t, "rent", transfer.Note)
		assert.Equal(t, TransferPending, transfer.Status)
		assert.NotEmpty(t, transfer.Reference)
		assert.Nil(t, transfer.DecidedBy)
		assert.Nil(t, transfer.DecidedAt)
	})

	t.Run("Zero user IDs", func(t *testing.T) {
		for _, ids := range [][2]uint64{{0, 2}, {1, 0}} {
			transfer, err := NewTransfer(ids[0], ids[1], 10, 20, 4000, "", mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidUserID)
			assert.Nil(t, transfer)
		}
	})

	t.Run("Self transfer", func(t *testing.T) {
		transfer, err := NewTransfer(1, 1, 10, 20, 4000, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
		assert.Nil(t, transfer)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		for _, cents := range []int64{0, -4000} {
			transfer, err := NewTransfer(1, 2, 10, 20, cents, "", mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.Nil(t, transfer)
		}
	})
}

func TestNewTransferReference(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	ref := NewTransferReference(mockTime)
	assert.Regexp(t, regexp.MustCompile(`^TRF-\d+-[0-9a-f]{8}$`), ref)

	// Two references generated at the same instant must still differ
	assert.NotEqual(t, ref, NewTransferReference(mockTime))
}

func TestTransferStateHelpers(t *testing.T) {
	pending := &Transfer{Status: TransferPending}
	approved := &Transfer{Status: TransferApproved}
	rejected := &Transfer{Status: TransferRejected}

	assert.True(t, pending.IsPending())
	assert.False(t, pending.IsTerminal())

	assert.False(t, approved.IsPending())
	assert.True(t, approved.IsTerminal())

	assert.False(t, rejected.IsPending())
	assert.True(t, rejected.IsTerminal())
}
