package handler

import (
	"net/http"
	"strconv"
	"strings"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/domains/blog/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Handler - HTTP Handler for /api/blogs
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreateBlog - POST /api/blogs
// Body: multipart form (optional coverImage file) or JSON
func (h *Handler) CreateBlog(c *gin.Context) {
	in, err := bindBlogInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	blog, err := h.service.CreateBlog(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Blog(c, http.StatusCreated, "Blog created successfully", blog)
}

// ListBlogs - GET /api/blogs?page=&limit=
func (h *Handler) ListBlogs(c *gin.Context) {
	req := model.ListBlogsRequest{
		Page:  parseIntQuery(c, "page", defaultPage),
		Limit: parseIntQuery(c, "limit", defaultLimit),
	}

	result, err := h.service.ListBlogs(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Page(c, http.StatusOK, response.PageBody{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalBlogs: result.Total,
		TotalPages: result.TotalPages,
		Blogs:      result.Blogs,
	})
}

// GetBlog - GET /api/blogs/:id
func (h *Handler) GetBlog(c *gin.Context) {
	blog, err := h.service.GetBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Blog(c, http.StatusOK, "", blog)
}

// UpdateBlog - PUT /api/blogs/:id
func (h *Handler) UpdateBlog(c *gin.Context) {
	in, err := bindBlogInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	blog, err := h.service.UpdateBlog(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Blog(c, http.StatusOK, "Blog updated successfully", blog)
}

// DeleteBlog - DELETE /api/blogs/:id
func (h *Handler) DeleteBlog(c *gin.Context) {
	if err := h.service.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Blog deleted successfully")
}

// ============================================
// BINDING
// ============================================

// bindBlogInput reads the create/update fields from a JSON body or from
// form values, and attaches the cover uploaded by middleware.CoverUpload.
func bindBlogInput(c *gin.Context) (model.BlogInput, error) {
	var in model.BlogInput

	if c.ContentType() == gin.MIMEJSON {
		var payload model.BlogPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			return in, model.ErrInvalidRequestBody
		}
		in = payload.ToInput()
	} else {
		in = model.BlogInput{
			Title:           c.PostForm("title"),
			Content:         c.PostForm("content"),
			CoverImage:      c.PostForm("coverImage"),
			Author:          c.PostForm("author"),
			MetaDescription: c.PostForm("metaDescription"),
		}
		if published, ok := c.GetPostForm("published"); ok {
			value := model.ParseFlexBool(published)
			in.Published = &value
		}
		if keywords, ok := c.GetPostFormArray("keywords"); ok {
			in.Keywords = splitKeywords(keywords)
		}
	}

	if upload, ok := middleware.UploadedCover(c); ok {
		in.Upload = &model.UploadedAsset{URL: upload.URL, PublicID: upload.PublicID}
	}
	return in, nil
}

// splitKeywords accepts repeated fields as well as one comma separated value.
func splitKeywords(values []string) []string {
	keywords := make([]string, 0, len(values))
	for _, v := range values {
		keywords = append(keywords, strings.Split(v, ",")...)
	}
	return keywords
}

// parseIntQuery falls back to def when the parameter is missing or not a
// number. Out of range numbers are left for validation.
func parseIntQuery(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
