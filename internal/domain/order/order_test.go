package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

func pendingOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("o1", "buyer-1",
		[]Item{
			{ProductID: "p1", SellerID: "seller-1", Name: "Tomato", Qty: 2, Price: 30},
			{ProductID: "p2", SellerID: "seller-2", Name: "Rice", Qty: 1, Price: 60},
		},
		166,
		Delivery{Name: "Kumar", Phone: "9876543210", Address: "12 East St, Madurai"},
		"cod",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder_StartsPending(t *testing.T) {
	o := pendingOrder(t)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 166.0, o.Total)
}

func TestNewOrder_Validation(t *testing.T) {
	items := []Item{{ProductID: "p1", SellerID: "s1", Qty: 1, Price: 30}}
	delivery := Delivery{Name: "Kumar", Phone: "9876543210", Address: "Madurai"}

	_, err := NewOrder("o1", "", items, 70, delivery, "cod")
	assert.ErrorIs(t, err, user.ErrUnauthenticated)

	_, err = NewOrder("o1", "b1", nil, 70, delivery, "cod")
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = NewOrder("o1", "b1", items, 70, Delivery{Name: "Kumar", Phone: " ", Address: "Madurai"}, "cod")
	assert.ErrorIs(t, err, ErrMissingDelivery)
}

func TestApply_SellerCompleteOnPendingIsRejected(t *testing.T) {
	o := pendingOrder(t)

	err := o.Apply(user.Actor{ID: "seller-1", Role: user.RoleSeller}, ActionComplete)

	assert.ErrorIs(t, err, ErrTransitionRejected)
	assert.Equal(t, StatusPending, o.Status)
}

func TestApply_BuyerCancelsOwnOrder(t *testing.T) {
	o := pendingOrder(t)

	err := o.Apply(user.Actor{ID: "buyer-1", Role: user.RoleBuyer}, ActionCancel)

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status)
}

func TestApply_OtherBuyerCannotCancel(t *testing.T) {
	o := pendingOrder(t)

	err := o.Apply(user.Actor{ID: "buyer-2", Role: user.RoleBuyer}, ActionCancel)

	assert.ErrorIs(t, err, ErrTransitionRejected)
	assert.Equal(t, StatusPending, o.Status)
}

func TestApply_NonOwningSellerCannotAccept(t *testing.T) {
	o := pendingOrder(t)

	err := o.Apply(user.Actor{ID: "seller-3", Role: user.RoleSeller}, ActionAccept)

	assert.ErrorIs(t, err, ErrTransitionRejected)
	assert.Equal(t, StatusPending, o.Status)
}

func TestApply_FullLifecycle(t *testing.T) {
	o := pendingOrder(t)
	seller := user.Actor{ID: "seller-1", Role: user.RoleSeller}

	require.NoError(t, o.Apply(seller, ActionAccept))
	assert.Equal(t, StatusAccepted, o.Status)

	require.NoError(t, o.Apply(seller, ActionComplete))
	assert.Equal(t, StatusCompleted, o.Status)

	// Completed is terminal.
	err := o.Apply(seller, ActionComplete)
	assert.ErrorIs(t, err, ErrTransitionRejected)
	assert.Equal(t, StatusCompleted, o.Status)
}

func TestApply_Unauthenticated(t *testing.T) {
	o := pendingOrder(t)

	err := o.Apply(user.Actor{}, ActionCancel)

	assert.ErrorIs(t, err, user.ErrUnauthenticated)
	assert.Equal(t, StatusPending, o.Status)
}

func TestHasSeller(t *testing.T) {
	o := pendingOrder(t)

	assert.True(t, o.HasSeller("seller-1"))
	assert.True(t, o.HasSeller("seller-2"))
	assert.False(t, o.HasSeller("seller-9"))
}
