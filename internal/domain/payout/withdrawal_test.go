package payout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithdrawal(t *testing.T) {
	w, err := NewWithdrawal("w1", "s1", 250, BankAccount{Name: "SBI", Account: "123456", IFSC: "SBIN0001"})

	require.NoError(t, err)
	assert.Equal(t, 250.0, w.Amount)
	assert.Equal(t, "s1", w.SellerID)
}

func TestNewWithdrawal_Validation(t *testing.T) {
	bank := BankAccount{Name: "SBI", Account: "123456", IFSC: "SBIN0001"}

	_, err := NewWithdrawal("", "s1", 250, bank)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewWithdrawal("w1", "s1", 0, bank)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewWithdrawal("w1", "s1", 250, BankAccount{Name: "SBI", Account: "  ", IFSC: "SBIN0001"})
	assert.ErrorIs(t, err, ErrMissingBankDetails)
}
