package handler

import (
	"time"

	"github.com/inkpress/blog-platform/internal/core/ports"
)

type postRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// postResponse is the transport view of a post, joined with the author's
// display name. Kept separate from ports.PostView so the JSON contract is
// not coupled to internal service changes.
type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type postEnvelope struct {
	Message string       `json:"message"`
	Post    postResponse `json:"post"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toPostResponse(v ports.PostView) postResponse {
	return postResponse{
		ID:        v.ID,
		Title:     v.Title,
		Content:   v.Content,
		AuthorID:  v.AuthorID,
		Author:    v.Author,
		CreatedAt: v.CreatedAt,
	}
}
