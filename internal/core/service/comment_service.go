package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-platform/internal/api/metrics"
	"github.com/inkpress/blog-platform/internal/core/domain"
	"github.com/inkpress/blog-platform/internal/core/ports"
)

type CommentService struct {
	repo     ports.CommentRepository
	postRepo ports.PostRepository
	logger   zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, postRepo ports.PostRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, postRepo: postRepo, logger: logger}
}

// Create attaches a comment to an existing post. The existence check is a
// separate read, so a post deleted between check and insert can still leave
// an orphan; tolerable, since comments on a deleted post are unreachable.
func (s *CommentService) Create(ctx context.Context, postID, userID, text string) (*domain.Comment, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:    postID,
		UserID:    userID,
		Comment:   text,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		s.logger.Error().Err(err).Str("post_id", postID).Msg("failed to create comment")
		return nil, err
	}

	metrics.CommentsCreatedTotal.Inc()
	s.logger.Info().Str("comment_id", created.ID).Str("post_id", postID).Str("user_id", userID).Msg("comment created")
	return created, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *CommentService) Update(ctx context.Context, id, userID, text string) (*domain.Comment, error) {
	updated, err := s.repo.Update(ctx, id, userID, text)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("comment_id", id).Str("user_id", userID).Msg("comment updated")
	return updated, nil
}

func (s *CommentService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info().Str("comment_id", id).Str("user_id", userID).Msg("comment deleted")
	return nil
}
