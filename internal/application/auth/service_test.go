package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

// MockUserRepository mocks the account store.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailAndRole(ctx context.Context, email string, role user.Role) (*user.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func validSignup() SignupCommand {
	return SignupCommand{
		Name:        "Kumar",
		Email:       "Kumar@Example.com",
		Phone:       "9876543210",
		Address:     "12 East St, Madurai",
		Role:        "buyer",
		Password:    "secret123",
		DateOfBirth: "1990-05-01",
	}
}

func TestSignup(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("FindByEmailAndRole", ctx, "kumar@example.com", user.RoleBuyer).Return(nil, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*user.User")).Return(nil)

	u, err := svc.Signup(ctx, validSignup())

	require.NoError(t, err)
	assert.Equal(t, "kumar@example.com", u.Email)
	assert.Equal(t, user.RoleBuyer, u.Role)
	assert.NotEmpty(t, u.ID)
	repo.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("FindByEmailAndRole", ctx, "kumar@example.com", user.RoleBuyer).
		Return(&user.User{ID: "u1", Email: "kumar@example.com", Role: user.RoleBuyer}, nil)

	_, err := svc.Signup(ctx, validSignup())

	assert.ErrorIs(t, err, user.ErrEmailTaken)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSignup_InvalidRole(t *testing.T) {
	svc := NewService(new(MockUserRepository))

	cmd := validSignup()
	cmd.Role = "guest"
	_, err := svc.Signup(context.Background(), cmd)

	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)
	ctx := context.Background()

	stored, err := user.NewUser("u1", "Kumar", "kumar@example.com", "", "", "buyer", "secret123", "1990-05-01")
	require.NoError(t, err)
	repo.On("FindByEmailAndRole", ctx, "kumar@example.com", user.RoleBuyer).Return(stored, nil)

	u, err := svc.Login(ctx, LoginCommand{Email: "kumar@example.com", Password: "secret123", Role: "buyer"})

	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)
	ctx := context.Background()

	stored, err := user.NewUser("u1", "Kumar", "kumar@example.com", "", "", "buyer", "secret123", "1990-05-01")
	require.NoError(t, err)
	repo.On("FindByEmailAndRole", ctx, "kumar@example.com", user.RoleBuyer).Return(stored, nil)

	_, err = svc.Login(ctx, LoginCommand{Email: "kumar@example.com", Password: "wrong", Role: "buyer"})

	assert.ErrorIs(t, err, user.ErrInvalidPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("FindByEmailAndRole", ctx, "ghost@example.com", user.RoleSeller).Return(nil, nil)

	_, err := svc.Login(ctx, LoginCommand{Email: "ghost@example.com", Password: "secret123", Role: "seller"})

	assert.ErrorIs(t, err, user.ErrNotFound)
}
