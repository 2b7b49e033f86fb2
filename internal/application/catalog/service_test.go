package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/Prawin5557/Uzhavar-Connect/internal/domain/catalog"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

// MockProductRepository mocks the catalog store.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySeller(ctx context.Context, sellerID string) ([]domain.Product, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestBrowse_AppliesViewToFreshSnapshot(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]domain.Product{
		{ID: "p1", Name: "Tomato", Category: "Vegetables", Price: 30, AvailableQty: 10},
		{ID: "p2", Name: "Mango", Category: "Fruits", Price: 90, AvailableQty: 5},
	}, nil)

	out, err := svc.Browse(ctx, domain.ViewState{Category: "Fruits"})

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)
}

func TestRefresh_CommitsSnapshotGenerations(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]domain.Product{{ID: "p1", Name: "Tomato"}}, nil)

	first, err := svc.Refresh(ctx)
	require.NoError(t, err)
	second, err := svc.Refresh(ctx)
	require.NoError(t, err)

	assert.Greater(t, second.Generation, first.Generation)
	assert.Equal(t, second.Generation, svc.Snapshot().Generation)
}

func TestRefresh_Failure(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return(nil, errors.New("store unreachable"))

	_, err := svc.Refresh(ctx)

	assert.Error(t, err)
}

func TestProduct_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("FindByID", ctx, "ghost").Return(nil, nil)

	_, err := svc.Product(ctx, "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSellerListing_StatsComeFromFullSet(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("FindBySeller", ctx, "s1").Return([]domain.Product{
		{ID: "p1", SellerID: "s1", Name: "Tomato", Price: 30, AvailableQty: 2},
		{ID: "p2", SellerID: "s1", Name: "Mango", Price: 90, AvailableQty: 8},
	}, nil)

	page, stats, err := svc.SellerListing(ctx, "s1", domain.ViewState{SearchText: "mango"}, 1)

	require.NoError(t, err)
	// The search narrows the page but not the aggregates.
	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 30.0*2+90*8, stats.InventoryValue)
}

func TestCreate_RequiresSellerRole(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, user.Actor{ID: "b1", Role: user.RoleBuyer}, "p1", ProductInput{Name: "Tomato", Price: 30, Qty: 5})

	assert.ErrorIs(t, err, user.ErrForbidden)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdate_RejectsForeignProduct(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("FindByID", ctx, "p1").Return(&domain.Product{ID: "p1", SellerID: "someone-else", Name: "Tomato"}, nil)

	_, err := svc.Update(ctx, user.Actor{ID: "s1", Role: user.RoleSeller}, "p1", ProductInput{Name: "Tomato", Price: 30, Qty: 5})

	assert.ErrorIs(t, err, domain.ErrNotOwner)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDelete_OwnProduct(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewService(repo, nil)
	ctx := context.Background()

	repo.On("FindByID", ctx, "p1").Return(&domain.Product{ID: "p1", SellerID: "s1", Name: "Tomato"}, nil)
	repo.On("Delete", ctx, "p1").Return(nil)

	err := svc.Delete(ctx, user.Actor{ID: "s1", Role: user.RoleSeller}, "p1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
