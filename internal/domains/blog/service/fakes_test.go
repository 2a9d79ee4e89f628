package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/shared/apperror"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRepo is an in-memory blogs collection with slug uniqueness.
type fakeRepo struct {
	mu    sync.Mutex
	blogs map[string]model.Blog
	clock time.Time
	calls int

	insertErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		blogs: map[string]model.Blog{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *fakeRepo) slugTaken(slug, exceptID string) bool {
	for id, b := range r.blogs {
		if b.Slug == slug && id != exceptID {
			return true
		}
	}
	return false
}

func (r *fakeRepo) Insert(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	if r.insertErr != nil {
		return nil, r.insertErr
	}
	if err := blog.Validate(); err != nil {
		return nil, apperror.NewPersistence(err, model.SchemaMessages(err)...)
	}
	if r.slugTaken(blog.Slug, "") {
		return nil, apperror.NewPersistence(errors.New("E11000"), model.MsgSlugNotUnique)
	}

	doc := *blog
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = r.tick()
	doc.UpdatedAt = doc.CreatedAt
	r.blogs[doc.ID.Hex()] = doc
	return &doc, nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id string) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	b, ok := r.blogs[id]
	if !ok {
		return nil, model.ErrBlogNotFound
	}
	return &b, nil
}

func (r *fakeRepo) FindMany(ctx context.Context, skip, limit int64) ([]model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	all := make([]model.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if skip >= int64(len(all)) {
		return []model.Blog{}, nil
	}
	end := skip + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[skip:end], nil
}

func (r *fakeRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return int64(len(r.blogs)), nil
}

func (r *fakeRepo) UpdateByID(ctx context.Context, id string, blog *model.Blog) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	if r.updateErr != nil {
		return nil, r.updateErr
	}
	current, ok := r.blogs[id]
	if !ok {
		return nil, model.ErrBlogNotFound
	}
	if err := blog.Validate(); err != nil {
		return nil, apperror.NewPersistence(err, model.SchemaMessages(err)...)
	}
	if r.slugTaken(blog.Slug, id) {
		return nil, apperror.NewPersistence(errors.New("E11000"), model.MsgSlugNotUnique)
	}

	doc := *blog
	doc.ID = current.ID
	doc.CreatedAt = current.CreatedAt
	doc.UpdatedAt = r.tick()
	r.blogs[id] = doc
	return &doc, nil
}

func (r *fakeRepo) DeleteByID(ctx context.Context, id string) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++

	b, ok := r.blogs[id]
	if !ok {
		return nil, model.ErrBlogNotFound
	}
	delete(r.blogs, id)
	return &b, nil
}

func (r *fakeRepo) EnsureIndexes(ctx context.Context) error { return nil }

// seed stores a post directly, bypassing the service.
func (r *fakeRepo) seed(title, cover string) model.Blog {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := model.Blog{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Content:    "content of " + title,
		CoverImage: cover,
		Slug:       "slug-" + title,
		Author:     model.DefaultAuthor,
		Published:  true,
		Keywords:   []string{"seed"},
		CreatedAt:  r.tick(),
	}
	b.UpdatedAt = b.CreatedAt
	r.blogs[b.ID.Hex()] = b
	return b
}

// fakeAssets records Destroy calls.
type fakeAssets struct {
	mu        sync.Mutex
	destroyed []string
	err       error
}

func (a *fakeAssets) Destroy(ctx context.Context, publicID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destroyed = append(a.destroyed, publicID)
	return a.err
}

func (a *fakeAssets) calls() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.destroyed...)
}

// fakeCache is a map-backed cache.Cache.
type fakeCache struct {
	mu      sync.Mutex
	items   map[string]model.Blog
	deleted []string
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string]model.Blog{}}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	*(dest.(*model.Blog)) = b
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = *(value.(*model.Blog))
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func (c *fakeCache) Ping(ctx context.Context) error { return nil }
