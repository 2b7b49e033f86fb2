package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/repository"
	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

// Service handles account creation and credential checks. One email may
// hold one account per role, so a user can be both a buyer and a seller.
type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

type SignupCommand struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Role        string `json:"role"`
	Password    string `json:"password"`
	DateOfBirth string `json:"date_of_birth"`
}

func (s *Service) Signup(ctx context.Context, cmd SignupCommand) (*user.User, error) {
	role, err := user.ParseRole(cmd.Role)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email != "" {
		existing, err := s.users.FindByEmailAndRole(ctx, email, role)
		if err != nil {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return nil, user.ErrEmailTaken
		}
	}

	u, err := user.NewUser(uuid.NewString(), cmd.Name, email, cmd.Phone, cmd.Address, cmd.Role, cmd.Password, cmd.DateOfBirth)
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}

type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*user.User, error) {
	role, err := user.ParseRole(cmd.Role)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	u, err := s.users.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return nil, user.ErrNotFound
	}

	if !u.CheckPassword(cmd.Password) {
		return nil, user.ErrInvalidPassword
	}
	return u, nil
}
