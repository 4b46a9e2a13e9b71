package ports

import (
	"context"

	"github.com/inkpress/blog-platform/internal/core/domain"
)

// PostRepository defines persistence operations for blog posts.
//
// Update and Delete filter on both id and authorID in a single storage
// operation, so an ownership mismatch is indistinguishable from a missing
// document: both surface as domain.ErrPostNotFound.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns all posts in storage-native order.
	List(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, id, authorID, title, content string) (*domain.Post, error)
	Delete(ctx context.Context, id, authorID string) error
}
