package domain

import (
	"errors"
	"time"
)

// ErrPostNotFound covers both a missing id and an ownership mismatch on
// mutation. Callers cannot tell "doesn't exist" from "not yours".
var ErrPostNotFound = errors.New("post not found")

// Post is a blog entry owned by exactly one author. Ownership is assigned
// at creation and never transfers.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
