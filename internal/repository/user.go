package repository

import (
	"context"

	"github.com/irohit373/AlignTODO/internal/domain"
)

// Usecases depend on the interface, not the pgx implementation, so tests
// can inject a fake and the store can be swapped without touching them.
type UserRepository interface {
	// Create persists a new account. Returns domain.ErrEmailTaken when
	// the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
