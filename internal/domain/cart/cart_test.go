package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
)

func tomato() catalog.Product {
	return catalog.Product{ID: "p1", SellerID: "s1", Name: "Tomato", Price: 30, AvailableQty: 10}
}

func TestAdd_ClampsToAvailableStock(t *testing.T) {
	c := New()
	p := catalog.Product{ID: "p1", SellerID: "s1", Name: "Tomato", Price: 30, AvailableQty: 3}

	err := c.Add(p, 5)

	require.NoError(t, err)
	line, ok := c.Line("p1")
	require.True(t, ok)
	assert.Equal(t, 3, line.Qty)
}

func TestAdd_IncrementsExistingLine(t *testing.T) {
	c := New()
	p := tomato()

	require.NoError(t, c.Add(p, 2))
	require.NoError(t, c.Add(p, 3))

	assert.Len(t, c.Lines(), 1)
	line, _ := c.Line("p1")
	assert.Equal(t, 5, line.Qty)
}

func TestAdd_AtCapIsSilentNoOp(t *testing.T) {
	c := New()
	p := catalog.Product{ID: "p1", Name: "Tomato", Price: 30, AvailableQty: 2}

	require.NoError(t, c.Add(p, 2))
	err := c.Add(p, 1)

	assert.NoError(t, err)
	line, _ := c.Line("p1")
	assert.Equal(t, 2, line.Qty)
}

func TestAdd_RejectsInvalidQuantity(t *testing.T) {
	c := New()

	err := c.Add(tomato(), 0)

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.True(t, c.Empty())
}

func TestAdd_RejectsOutOfStockInsert(t *testing.T) {
	c := New()
	p := catalog.Product{ID: "p1", Name: "Tomato", Price: 30, AvailableQty: 0}

	err := c.Add(p, 1)

	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.True(t, c.Empty())
}

func TestChangeQty_NeverDropsBelowOne(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tomato(), 2))

	err := c.ChangeQty("p1", -5, 10)

	require.NoError(t, err)
	line, _ := c.Line("p1")
	assert.Equal(t, 1, line.Qty)
}

func TestChangeQty_ClampsToCurrentStock(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tomato(), 2))

	// Stock dropped to 4 since the line was added.
	err := c.ChangeQty("p1", +10, 4)

	require.NoError(t, err)
	line, _ := c.Line("p1")
	assert.Equal(t, 4, line.Qty)
}

func TestChangeQty_MissingLine(t *testing.T) {
	c := New()

	err := c.ChangeQty("ghost", 1, 10)

	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestRemove(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tomato(), 2))

	c.Remove("p1")
	assert.True(t, c.Empty())

	// Removing an absent line is a no-op.
	c.Remove("p1")
	assert.True(t, c.Empty())
}

func TestClear(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tomato(), 2))
	require.NoError(t, c.Add(catalog.Product{ID: "p2", Name: "Rice", Price: 60, AvailableQty: 5}, 1))

	c.Clear()

	assert.True(t, c.Empty())
	assert.Equal(t, Totals{}, c.Totals())
}

func TestQuantityStaysWithinStockUnderMutationSequences(t *testing.T) {
	c := New()
	p := catalog.Product{ID: "p1", Name: "Tomato", Price: 30, AvailableQty: 7}

	require.NoError(t, c.Add(p, 3))
	require.NoError(t, c.Add(p, 9))
	require.NoError(t, c.ChangeQty("p1", +4, p.AvailableQty))
	require.NoError(t, c.ChangeQty("p1", -2, p.AvailableQty))
	require.NoError(t, c.ChangeQty("p1", +100, p.AvailableQty))

	line, _ := c.Line("p1")
	assert.LessOrEqual(t, line.Qty, p.AvailableQty)
	assert.GreaterOrEqual(t, line.Qty, 1)
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tomato(), 2))

	lines := c.Lines()
	lines[0].Qty = 99

	line, _ := c.Line("p1")
	assert.Equal(t, 2, line.Qty)
}
