package ports

import (
	"context"
	"time"
)

// PostView is a post joined with its author's display name, as returned by
// the public read endpoints.
type PostView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// PostService defines use-case operations for blog posts.
type PostService interface {
	Create(ctx context.Context, title, content, authorID string) (*PostView, error)
	List(ctx context.Context) ([]PostView, error)
	Get(ctx context.Context, id string) (*PostView, error)
	Update(ctx context.Context, id, authorID, title, content string) (*PostView, error)
	Delete(ctx context.Context, id, authorID string) error
}
