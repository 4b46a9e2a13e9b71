package ports

import (
	"context"

	"github.com/inkpress/blog-platform/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID resolves a user by its id, used when joining author display
	// names onto posts.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create persists a new user. Returns domain.ErrUserExists when the
	// email is already taken (backed by a unique index on email).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
