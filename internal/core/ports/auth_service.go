package ports

import (
	"context"

	"github.com/inkpress/blog-platform/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	// Unknown email and wrong password produce the same error.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
