package payout

import (
	"strings"
	"time"
)

// BankAccount is where a seller wants earnings sent.
type BankAccount struct {
	Name    string `json:"bank_name"`
	Account string `json:"account_number"`
	IFSC    string `json:"ifsc"`
}

func (b BankAccount) validate() error {
	if strings.TrimSpace(b.Name) == "" ||
		strings.TrimSpace(b.Account) == "" ||
		strings.TrimSpace(b.IFSC) == "" {
		return ErrMissingBankDetails
	}
	return nil
}

// Withdrawal is a seller's request to pay out part of their balance.
// Requests are append-only; the running sum reduces the available
// balance of later requests.
type Withdrawal struct {
	ID          string      `json:"id"`
	SellerID    string      `json:"seller_id"`
	Amount      float64     `json:"amount"`
	Bank        BankAccount `json:"bank"`
	RequestedAt time.Time   `json:"requested_at"`
}

func NewWithdrawal(id, sellerID string, amount float64, bank BankAccount) (*Withdrawal, error) {
	if id == "" || sellerID == "" {
		return nil, ErrMissingField
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if err := bank.validate(); err != nil {
		return nil, err
	}

	return &Withdrawal{
		ID:          id,
		SellerID:    sellerID,
		Amount:      amount,
		Bank:        bank,
		RequestedAt: time.Now().UTC(),
	}, nil
}
