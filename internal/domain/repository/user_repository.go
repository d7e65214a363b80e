package repository

import (
	"context"

	"github.com/dahill/invoice-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (autenticación).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
