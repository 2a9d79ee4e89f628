package service

import (
	"context"
	"time"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/domains/blog/repository"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/cache"

	"github.com/rs/zerolog/log"
)

// BlogService keeps the blogs collection and the asset host consistent.
//
// Write order is fixed: the cover is already on the asset host when the
// record is written. Every failed record write removes a cover uploaded in
// the same request, and a replaced or deleted cover is only removed after
// the record no longer points at it. Asset removals are best effort.
type BlogService struct {
	repo     repository.RepositoryInterface
	assets   AssetHost
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewService(
	repo repository.RepositoryInterface,
	assets AssetHost,
	cache cache.Cache,
	cacheTTL time.Duration,
) ServiceInterface {
	return &BlogService{
		repo:     repo,
		assets:   assets,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// ============================================
// CREATE
// ============================================

func (s *BlogService) CreateBlog(ctx context.Context, in model.BlogInput) (blog *model.Blog, err error) {
	in = in.Normalize()
	defer func() {
		if err != nil {
			s.discardUpload(ctx, in.Upload, "")
		}
	}()

	// 1. Validate
	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}
	coverImage := in.ResolveCoverImage()
	if coverImage == "" {
		return nil, model.ErrCoverImageRequired
	}

	// 2. Build record
	record := &model.Blog{
		Title:      in.Title,
		Content:    in.Content,
		CoverImage: coverImage,
		Slug:       utils.GenerateSlug(in.Title),
		Author:     in.Author,
		Published:  true,
		Keywords:   in.Keywords,
	}
	if record.Author == "" {
		record.Author = model.DefaultAuthor
	}
	if in.Published != nil {
		record.Published = *in.Published
	}
	if record.Keywords == nil {
		record.Keywords = []string{}
	}
	if in.MetaDescription != "" {
		meta := in.MetaDescription
		record.MetaDescription = &meta
	}

	// 3. Persist
	created, err := s.repo.Insert(ctx, record)
	if err != nil {
		return nil, err
	}

	log.Info().Str("blog_id", created.ID.Hex()).Str("slug", created.Slug).Msg("[BlogService] Blog created")
	return created, nil
}

// ============================================
// READ
// ============================================

func (s *BlogService) ListBlogs(ctx context.Context, req model.ListBlogsRequest) (*model.ListBlogsResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	blogs, err := s.repo.FindMany(ctx, req.Skip(), int64(req.Limit))
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &model.ListBlogsResult{
		Blogs:      blogs,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: model.TotalPages(total, req.Limit),
	}, nil
}

func (s *BlogService) GetBlog(ctx context.Context, id string) (*model.Blog, error) {
	if !model.IsValidID(id) {
		return nil, model.ErrInvalidBlogID
	}

	// 1. Try cache
	cacheKey := model.GenerateBlogDetailCacheKey(id)
	var cached model.Blog
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("[BlogService] Cache GET error")
	} else if found {
		log.Debug().Str("key", cacheKey).Msg("[BlogService] Cache HIT")
		return &cached, nil
	}

	// 2. Cache miss - query DB
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. Store in cache, never fail the request on cache errors
	if err := s.cache.Set(ctx, cacheKey, blog, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("[BlogService] Cache SET error")
	}
	return blog, nil
}

// ============================================
// UPDATE
// ============================================

func (s *BlogService) UpdateBlog(ctx context.Context, id string, in model.BlogInput) (blog *model.Blog, err error) {
	in = in.Normalize()
	defer func() {
		if err != nil {
			s.discardUpload(ctx, in.Upload, id)
		}
	}()

	// 1. Validate ID + load current record
	if !model.IsValidID(id) {
		return nil, model.ErrInvalidBlogID
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. Resolve the new cover, if any
	newCover := ""
	if in.FreshUpload() || in.CoverImage != "" {
		newCover = in.ResolveCoverImage()
		if newCover == "" {
			return nil, model.ErrCoverImageRequired
		}
	}
	replacesCover := newCover != "" && newCover != current.CoverImage

	// 3. Merge and persist
	next := mergeBlog(*current, in)
	if replacesCover {
		next.CoverImage = newCover
	}

	updated, err := s.repo.UpdateByID(ctx, id, &next)
	if err != nil {
		return nil, err
	}

	// 4. The record no longer references the previous cover
	if replacesCover {
		s.destroyAsset(ctx, current.CoverImage, "", id)
	}

	s.invalidate(ctx, id)
	log.Info().Str("blog_id", id).Bool("cover_replaced", replacesCover).Msg("[BlogService] Blog updated")
	return updated, nil
}

// mergeBlog applies the supplied fields on top of current. Blank fields keep
// the stored value; the slug follows the title only when a title is given.
func mergeBlog(current model.Blog, in model.BlogInput) model.Blog {
	next := current
	if in.Title != "" {
		next.Title = in.Title
		next.Slug = utils.GenerateSlug(in.Title)
	}
	if in.Content != "" {
		next.Content = in.Content
	}
	if in.Author != "" {
		next.Author = in.Author
	}
	if in.Published != nil {
		next.Published = *in.Published
	}
	if in.Keywords != nil {
		next.Keywords = in.Keywords
	}
	if in.MetaDescription != "" {
		meta := in.MetaDescription
		next.MetaDescription = &meta
	}
	return next
}

// ============================================
// DELETE
// ============================================

func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	if !model.IsValidID(id) {
		return model.ErrInvalidBlogID
	}

	// 1. Remove the record first
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	s.invalidate(ctx, id)

	// 2. Then its cover, best effort
	s.destroyAsset(ctx, deleted.CoverImage, "", id)

	log.Info().Str("blog_id", id).Msg("[BlogService] Blog deleted")
	return nil
}

// ============================================
// ASSET COMPENSATION
// ============================================

// discardUpload removes a cover uploaded in a request whose write failed.
func (s *BlogService) discardUpload(ctx context.Context, upload *model.UploadedAsset, blogID string) {
	if upload == nil {
		return
	}
	s.destroyAsset(ctx, upload.URL, upload.PublicID, blogID)
}

// destroyAsset deletes the asset behind url, falling back to fallbackID when
// no public id can be derived. Errors are logged and swallowed.
func (s *BlogService) destroyAsset(ctx context.Context, url, fallbackID, blogID string) {
	publicID, ok := storage.PublicIDFromURL(url)
	if !ok {
		publicID = fallbackID
	}
	if publicID == "" {
		log.Warn().Str("url", url).Str("blog_id", blogID).Msg("[BlogService] No asset id in cover URL, skip delete")
		return
	}

	// the request may already be cancelled, the cleanup should still run
	if err := s.assets.Destroy(context.WithoutCancel(ctx), publicID); err != nil {
		log.Error().Err(err).
			Str("public_id", publicID).
			Str("blog_id", blogID).
			Msg("[BlogService] Failed to delete cover asset")
		return
	}
	log.Debug().Str("public_id", publicID).Msg("[BlogService] Cover asset deleted")
}

func (s *BlogService) invalidate(ctx context.Context, id string) {
	cacheKey := model.GenerateBlogDetailCacheKey(id)
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("[BlogService] Failed to delete cache")
	}
}
