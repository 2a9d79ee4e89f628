package service

import (
	"context"

	"blog-backend/internal/domains/blog/model"
)

// ServiceInterface is the blog lifecycle used by the HTTP handlers.
type ServiceInterface interface {
	CreateBlog(ctx context.Context, in model.BlogInput) (*model.Blog, error)
	ListBlogs(ctx context.Context, req model.ListBlogsRequest) (*model.ListBlogsResult, error)
	GetBlog(ctx context.Context, id string) (*model.Blog, error)
	UpdateBlog(ctx context.Context, id string, in model.BlogInput) (*model.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

// AssetHost is the part of the asset host the service needs: removing a
// cover by its public id.
type AssetHost interface {
	Destroy(ctx context.Context, publicID string) error
}
