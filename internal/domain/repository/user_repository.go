package repository

import (
	"context"

	"github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"
)

type UserRepository interface {
	Save(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmailAndRole(ctx context.Context, email string, role user.Role) (*user.User, error)
}
