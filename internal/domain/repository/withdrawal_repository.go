package repository

import (
	"context"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/payout"
)

type WithdrawalRepository interface {
	Save(ctx context.Context, w *payout.Withdrawal) error
	FindBySeller(ctx context.Context, sellerID string) ([]payout.Withdrawal, error)
	// TotalBySeller returns the running sum of all prior requests.
	TotalBySeller(ctx context.Context, sellerID string) (float64, error)
}
