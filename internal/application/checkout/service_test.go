package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/cart"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/order"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

// MockOrderRepository mocks the order store.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByBuyer(ctx context.Context, buyerID string) ([]order.Order, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBySeller(ctx context.Context, sellerID string) ([]order.Order, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

// MockCartSource mocks the cart manager slice checkout depends on.
type MockCartSource struct {
	mock.Mock
}

func (m *MockCartSource) Lines(sessionID string) []cartdomain.Line {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]cartdomain.Line)
}

func (m *MockCartSource) Clear(sessionID string) {
	m.Called(sessionID)
}

// MockPublisher mocks the order event stream.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderEvent(ctx context.Context, o *order.Order, eventType string) error {
	args := m.Called(ctx, o, eventType)
	return args.Error(0)
}

func buyer() user.Actor {
	return user.Actor{ID: "buyer-1", Role: user.RoleBuyer}
}

func twoLines() []cartdomain.Line {
	return []cartdomain.Line{
		{ProductID: "p1", SellerID: "s1", Name: "Tomato", Price: 30, Qty: 2},
		{ProductID: "p2", SellerID: "s2", Name: "Rice", Price: 60, Qty: 1},
	}
}

func validCommand() CheckoutCommand {
	return CheckoutCommand{
		SessionID:     "session-1",
		Delivery:      order.Delivery{Name: "Kumar", Phone: "9876543210", Address: "12 East St, Madurai"},
		PaymentMethod: "cod",
	}
}

func TestCheckout_Success(t *testing.T) {
	repo := new(MockOrderRepository)
	carts := new(MockCartSource)
	pub := new(MockPublisher)
	svc := NewService(repo, carts, pub, nil)
	ctx := context.Background()

	carts.On("Lines", "session-1").Return(twoLines())
	repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
	carts.On("Clear", "session-1").Return()
	pub.On("PublishOrderEvent", ctx, mock.AnythingOfType("*order.Order"), "order_created").Return(nil)

	o, err := svc.Checkout(ctx, buyer(), validCommand())

	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Len(t, o.Items, 2)
	// 30*2 + 60 = 120 subtotal, +40 delivery, +6 tax.
	assert.Equal(t, 166.0, o.Total)
	carts.AssertCalled(t, "Clear", "session-1")
	repo.AssertExpectations(t)
}

func TestCheckout_EmptyCart(t *testing.T) {
	repo := new(MockOrderRepository)
	carts := new(MockCartSource)
	svc := NewService(repo, carts, nil, nil)
	ctx := context.Background()

	carts.On("Lines", "session-1").Return([]cartdomain.Line{})

	_, err := svc.Checkout(ctx, buyer(), validCommand())

	assert.ErrorIs(t, err, cartdomain.ErrEmptyCart)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	carts.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestCheckout_MissingIdentity(t *testing.T) {
	svc := NewService(new(MockOrderRepository), new(MockCartSource), nil, nil)

	_, err := svc.Checkout(context.Background(), user.Actor{}, validCommand())

	assert.ErrorIs(t, err, user.ErrUnauthenticated)
}

func TestCheckout_SellerCannotCheckout(t *testing.T) {
	svc := NewService(new(MockOrderRepository), new(MockCartSource), nil, nil)

	_, err := svc.Checkout(context.Background(), user.Actor{ID: "s1", Role: user.RoleSeller}, validCommand())

	assert.ErrorIs(t, err, user.ErrForbidden)
}

func TestCheckout_MissingDeliveryFields(t *testing.T) {
	repo := new(MockOrderRepository)
	carts := new(MockCartSource)
	svc := NewService(repo, carts, nil, nil)
	ctx := context.Background()

	carts.On("Lines", "session-1").Return(twoLines())

	cmd := validCommand()
	cmd.Delivery.Phone = ""
	_, err := svc.Checkout(ctx, buyer(), cmd)

	assert.ErrorIs(t, err, order.ErrMissingDelivery)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	carts.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestCheckout_StoreFailurePreservesCart(t *testing.T) {
	repo := new(MockOrderRepository)
	carts := new(MockCartSource)
	svc := NewService(repo, carts, nil, nil)
	ctx := context.Background()

	carts.On("Lines", "session-1").Return(twoLines())
	repo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("store down"))

	_, err := svc.Checkout(ctx, buyer(), validCommand())

	assert.Error(t, err)
	carts.AssertNotCalled(t, "Clear", mock.Anything)
}

func TestTransition_SellerAcceptsPending(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, new(MockCartSource), nil, nil)
	ctx := context.Background()

	stored := &order.Order{
		ID:      "o1",
		BuyerID: "buyer-1",
		Items:   []order.Item{{ProductID: "p1", SellerID: "seller-1", Qty: 1, Price: 30}},
		Status:  order.StatusPending,
	}
	repo.On("FindByID", ctx, "o1").Return(stored, nil)
	repo.On("Save", ctx, stored).Return(nil)

	o, err := svc.Transition(ctx, user.Actor{ID: "seller-1", Role: user.RoleSeller}, "o1", order.ActionAccept)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAccepted, o.Status)
	repo.AssertExpectations(t)
}

func TestTransition_RejectedActionDoesNotPersist(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, new(MockCartSource), nil, nil)
	ctx := context.Background()

	stored := &order.Order{
		ID:      "o1",
		BuyerID: "buyer-1",
		Items:   []order.Item{{ProductID: "p1", SellerID: "seller-1", Qty: 1, Price: 30}},
		Status:  order.StatusPending,
	}
	repo.On("FindByID", ctx, "o1").Return(stored, nil)

	// Completing a pending order is not in the transition table.
	_, err := svc.Transition(ctx, user.Actor{ID: "seller-1", Role: user.RoleSeller}, "o1", order.ActionComplete)

	assert.ErrorIs(t, err, order.ErrTransitionRejected)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTransition_UnknownOrder(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo, new(MockCartSource), nil, nil)
	ctx := context.Background()

	repo.On("FindByID", ctx, "ghost").Return(nil, nil)

	_, err := svc.Transition(ctx, buyer(), "ghost", order.ActionCancel)

	assert.ErrorIs(t, err, order.ErrNotFound)
}
