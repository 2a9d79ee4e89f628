package repository

import (
	"context"

	"blog-backend/internal/domains/blog/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// RepositoryInterface is the data access contract of the blogs collection.
type RepositoryInterface interface {
	// Insert assigns id/createdAt/updatedAt and stores the post
	Insert(ctx context.Context, blog *model.Blog) (*model.Blog, error)
	// FindByID returns model.ErrBlogNotFound when nothing matches
	FindByID(ctx context.Context, id string) (*model.Blog, error)
	// FindMany returns newest posts first
	FindMany(ctx context.Context, skip, limit int64) ([]model.Blog, error)
	Count(ctx context.Context) (int64, error)
	// UpdateByID overwrites the mutable fields and returns the stored post
	UpdateByID(ctx context.Context, id string, blog *model.Blog) (*model.Blog, error)
	// DeleteByID removes the post and returns what was removed
	DeleteByID(ctx context.Context, id string) (*model.Blog, error)
	EnsureIndexes(ctx context.Context) error
}

// CollectionProvider hands out the blogs collection. database.MongoDB
// connects lazily behind it.
type CollectionProvider interface {
	Collection(ctx context.Context, name string) (*mongo.Collection, error)
}
