package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkpress/blog-platform/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	mu     sync.Mutex
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *p
	r.nextID++
	clone.ID = fmt.Sprintf("post_%d", r.nextID)
	r.posts[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

// Update mirrors the real Mongo repo: the filter matches on id AND owner.
func (r *stubPostRepo) Update(_ context.Context, id, authorID, title, content string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return nil, domain.ErrPostNotFound
	}
	p.Title = title
	p.Content = content
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id, authorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubNameCache struct {
	entries map[string]string
	hits    int
	sets    int
}

func newStubNameCache() *stubNameCache {
	return &stubNameCache{entries: make(map[string]string)}
}

func (c *stubNameCache) Get(_ context.Context, userID string) (string, bool) {
	name, ok := c.entries[userID]
	if ok {
		c.hits++
	}
	return name, ok
}

func (c *stubNameCache) Set(_ context.Context, userID, username string) error {
	c.sets++
	c.entries[userID] = username
	return nil
}

func newTestPostService(posts *stubPostRepo, users *stubUserRepo, cache UsernameCache) *PostService {
	return NewPostService(posts, users, cache, zerolog.Nop())
}

func registerTestUser(t *testing.T, users *stubUserRepo, username string) string {
	t.Helper()
	u, err := users.Create(context.Background(), &domain.User{
		Username: username,
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestPostService_Create_AssignsAuthor(t *testing.T) {
	users := newStubUserRepo()
	uid := registerTestUser(t, users, "alice")
	svc := newTestPostService(newStubPostRepo(), users, nil)

	view, err := svc.Create(context.Background(), "T", "C", uid)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if view.AuthorID != uid {
		t.Fatalf("expected author %s, got %s", uid, view.AuthorID)
	}
	if view.Author != "alice" {
		t.Fatalf("expected author name alice, got %q", view.Author)
	}
	if view.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestPostService_Get_JoinsAuthorUsername(t *testing.T) {
	users := newStubUserRepo()
	uid := registerTestUser(t, users, "alice")
	svc := newTestPostService(newStubPostRepo(), users, nil)

	created, err := svc.Create(context.Background(), "T", "C", uid)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "T" || got.Content != "C" || got.Author != "alice" {
		t.Fatalf("unexpected view: %+v", got)
	}
}

func TestPostService_Get_NotFound(t *testing.T) {
	users := newStubUserRepo()
	svc := newTestPostService(newStubPostRepo(), users, nil)

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Update_OwnershipEnforced(t *testing.T) {
	users := newStubUserRepo()
	alice := registerTestUser(t, users, "alice")
	bob := registerTestUser(t, users, "bob")
	svc := newTestPostService(newStubPostRepo(), users, nil)

	created, err := svc.Create(context.Background(), "T", "C", alice)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Bob cannot update Alice's post, and cannot tell it exists.
	if _, err := svc.Update(context.Background(), created.ID, bob, "X", "Y"); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound for non-owner, got %v", err)
	}

	// Alice can.
	updated, err := svc.Update(context.Background(), created.ID, alice, "X", "Y")
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "X" || updated.Content != "Y" {
		t.Fatalf("unexpected post after update: %+v", updated)
	}
}

func TestPostService_Delete_OwnershipEnforced(t *testing.T) {
	users := newStubUserRepo()
	alice := registerTestUser(t, users, "alice")
	bob := registerTestUser(t, users, "bob")
	repo := newStubPostRepo()
	svc := newTestPostService(repo, users, nil)

	created, err := svc.Create(context.Background(), "T", "C", alice)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, bob); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound for non-owner, got %v", err)
	}
	// Anyone can still read it.
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("post should still be readable: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, alice); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestPostService_Delete_Nonexistent(t *testing.T) {
	users := newStubUserRepo()
	uid := registerTestUser(t, users, "alice")
	svc := newTestPostService(newStubPostRepo(), users, nil)

	if err := svc.Delete(context.Background(), "no-such-post", uid); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_List_JoinsAllAuthors(t *testing.T) {
	users := newStubUserRepo()
	alice := registerTestUser(t, users, "alice")
	bob := registerTestUser(t, users, "bob")
	svc := newTestPostService(newStubPostRepo(), users, nil)

	if _, err := svc.Create(context.Background(), "A", "a", alice); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "B", "b", bob); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	views, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(views))
	}
	byTitle := make(map[string]string)
	for _, v := range views {
		byTitle[v.Title] = v.Author
	}
	if byTitle["A"] != "alice" || byTitle["B"] != "bob" {
		t.Fatalf("author join wrong: %+v", byTitle)
	}
}

func TestPostService_AuthorCache_ReadThrough(t *testing.T) {
	users := newStubUserRepo()
	uid := registerTestUser(t, users, "alice")
	cache := newStubNameCache()
	svc := newTestPostService(newStubPostRepo(), users, cache)

	created, err := svc.Create(context.Background(), "T", "C", uid)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache fill on miss, sets=%d", cache.sets)
	}

	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected cache hit on second resolve, hits=%d", cache.hits)
	}
}

func TestPostService_Create_Concurrent_NoCrossAssignment(t *testing.T) {
	users := newStubUserRepo()
	alice := registerTestUser(t, users, "alice")
	bob := registerTestUser(t, users, "bob")
	repo := newStubPostRepo()
	svc := newTestPostService(repo, users, nil)

	const perUser = 20
	var wg sync.WaitGroup
	for _, uid := range []string{alice, bob} {
		for i := 0; i < perUser; i++ {
			wg.Add(1)
			go func(owner string, n int) {
				defer wg.Done()
				if _, err := svc.Create(context.Background(), fmt.Sprintf("%s-%d", owner, n), "body", owner); err != nil {
					t.Errorf("create failed: %v", err)
				}
			}(uid, i)
		}
	}
	wg.Wait()

	views, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 2*perUser {
		t.Fatalf("expected %d posts, got %d", 2*perUser, len(views))
	}
	for _, v := range views {
		// The title encodes who asked for the post; the owner must match.
		wantOwner := v.Title[:len(v.AuthorID)]
		if wantOwner != v.AuthorID {
			t.Fatalf("cross-assigned author: title=%s author=%s", v.Title, v.AuthorID)
		}
	}
}
