package ports

import (
	"context"

	"github.com/inkpress/blog-platform/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
// Update and Delete apply the same combined id+owner filter as posts.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	Update(ctx context.Context, id, userID, text string) (*domain.Comment, error)
	Delete(ctx context.Context, id, userID string) error
}
