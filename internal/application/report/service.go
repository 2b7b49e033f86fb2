package report

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/payout"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/repository"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

// ProductSales is the per-product slice of a seller's revenue.
type ProductSales struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"product_name"`
	QtySold   int     `json:"total_qty"`
	Revenue   float64 `json:"revenue"`
}

// SalesReport aggregates a seller's orders. Recomputed from the order
// store on every request.
type SalesReport struct {
	TotalOrders      int            `json:"total_orders"`
	TotalRevenue     float64        `json:"total_revenue"`
	AvgOrderValue    float64        `json:"avg_order_value"`
	AvailableBalance float64        `json:"available_balance"`
	ProductSales     []ProductSales `json:"product_sales"`
	RecentOrders     []order.Order  `json:"orders"`
}

type Service struct {
	orders      repository.OrderRepository
	withdrawals repository.WithdrawalRepository
}

func NewService(orders repository.OrderRepository, withdrawals repository.WithdrawalRepository) *Service {
	return &Service{orders: orders, withdrawals: withdrawals}
}

// SalesReport builds the seller's analytics view. Revenue counts the
// seller's own lines of non-cancelled orders; the available balance is
// revenue minus the sum of prior withdrawal requests.
func (s *Service) SalesReport(ctx context.Context, actor user.Actor) (*SalesReport, error) {
	if !actor.Authenticated() {
		return nil, user.ErrUnauthenticated
	}
	if actor.Role != user.RoleSeller {
		return nil, user.ErrForbidden
	}

	orders, err := s.orders.FindBySeller(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch seller orders: %w", err)
	}

	report := &SalesReport{RecentOrders: orders}
	byProduct := make(map[string]*ProductSales)
	productOrder := make([]string, 0)

	for _, o := range orders {
		if o.Status == order.StatusCancelled {
			continue
		}
		report.TotalOrders++
		for _, it := range o.Items {
			if it.SellerID != actor.ID {
				continue
			}
			lineRevenue := it.Price * float64(it.Qty)
			report.TotalRevenue += lineRevenue

			ps, ok := byProduct[it.ProductID]
			if !ok {
				ps = &ProductSales{ProductID: it.ProductID, Name: it.Name}
				byProduct[it.ProductID] = ps
				productOrder = append(productOrder, it.ProductID)
			}
			ps.QtySold += it.Qty
			ps.Revenue += lineRevenue
		}
	}

	for _, id := range productOrder {
		report.ProductSales = append(report.ProductSales, *byProduct[id])
	}

	if report.TotalOrders > 0 {
		report.AvgOrderValue = math.Round(report.TotalRevenue / float64(report.TotalOrders))
	}

	withdrawn, err := s.withdrawals.TotalBySeller(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch withdrawals: %w", err)
	}
	report.AvailableBalance = report.TotalRevenue - withdrawn

	return report, nil
}

// WithdrawCommand is a seller's payout request.
type WithdrawCommand struct {
	Amount float64
	Bank   payout.BankAccount
}

// RequestWithdrawal records a payout request if it fits within the
// seller's available balance.
func (s *Service) RequestWithdrawal(ctx context.Context, actor user.Actor, cmd WithdrawCommand) (*payout.Withdrawal, error) {
	report, err := s.SalesReport(ctx, actor)
	if err != nil {
		return nil, err
	}

	w, err := payout.NewWithdrawal(uuid.NewString(), actor.ID, cmd.Amount, cmd.Bank)
	if err != nil {
		return nil, err
	}
	if w.Amount > report.AvailableBalance {
		return nil, payout.ErrInsufficientBalance
	}

	if err := s.withdrawals.Save(ctx, w); err != nil {
		return nil, fmt.Errorf("save withdrawal: %w", err)
	}
	return w, nil
}
