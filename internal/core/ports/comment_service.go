package ports

import (
	"context"

	"github.com/inkpress/blog-platform/internal/core/domain"
)

// CommentService defines use-case operations for comments.
type CommentService interface {
	// Create attaches a comment to an existing post; a missing post
	// surfaces as domain.ErrPostNotFound.
	Create(ctx context.Context, postID, userID, text string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	Update(ctx context.Context, id, userID, text string) (*domain.Comment, error)
	Delete(ctx context.Context, id, userID string) error
}
