package domain

import (
	"errors"
	"time"
)

// ErrCommentNotFound is the comment counterpart of ErrPostNotFound: an
// ownership-scoped miss and a missing id are deliberately conflated.
var ErrCommentNotFound = errors.New("comment not found")

// Comment is attached to a post and owned by the user who wrote it. The
// commenter need not be the post's author.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
