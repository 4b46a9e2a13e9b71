package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-platform/internal/api/metrics"
	"github.com/inkpress/blog-platform/internal/core/domain"
	"github.com/inkpress/blog-platform/internal/core/ports"
)

// UsernameCache abstracts the author display-name cache (Redis).
type UsernameCache interface {
	Get(ctx context.Context, userID string) (string, bool)
	Set(ctx context.Context, userID, username string) error
}

type PostService struct {
	repo     ports.PostRepository
	userRepo ports.UserRepository
	cache    UsernameCache
	logger   zerolog.Logger
}

func NewPostService(repo ports.PostRepository, userRepo ports.UserRepository, cache UsernameCache, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, userRepo: userRepo, cache: cache, logger: logger}
}

func (s *PostService) Create(ctx context.Context, title, content, authorID string) (*ports.PostView, error) {
	post := &domain.Post{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", authorID).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post_id", created.ID).Str("author_id", authorID).Msg("post created")

	view := s.toView(ctx, created)
	return &view, nil
}

func (s *PostService) List(ctx context.Context) ([]ports.PostView, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, s.toView(ctx, p))
	}
	return views, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*ports.PostView, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.toView(ctx, post)
	return &view, nil
}

func (s *PostService) Update(ctx context.Context, id, authorID, title, content string) (*ports.PostView, error) {
	updated, err := s.repo.Update(ctx, id, authorID, title, content)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", id).Str("author_id", authorID).Msg("post updated")
	view := s.toView(ctx, updated)
	return &view, nil
}

func (s *PostService) Delete(ctx context.Context, id, authorID string) error {
	if err := s.repo.Delete(ctx, id, authorID); err != nil {
		return err
	}
	s.logger.Info().Str("post_id", id).Str("author_id", authorID).Msg("post deleted")
	return nil
}

// toView joins the author's username onto the post via an explicit second
// lookup: cache first, then the user repository. A failed lookup leaves the
// author name empty rather than failing the read.
func (s *PostService) toView(ctx context.Context, p *domain.Post) ports.PostView {
	return ports.PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		Author:    s.resolveAuthor(ctx, p.AuthorID),
		CreatedAt: p.CreatedAt,
	}
}

func (s *PostService) resolveAuthor(ctx context.Context, authorID string) string {
	if s.cache != nil {
		if name, ok := s.cache.Get(ctx, authorID); ok {
			return name
		}
	}

	user, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Str("author_id", authorID).Msg("author lookup failed")
		}
		return ""
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, authorID, user.Username); err != nil {
			s.logger.Warn().Err(err).Str("author_id", authorID).Msg("failed to cache author name")
		}
	}
	return user.Username
}
