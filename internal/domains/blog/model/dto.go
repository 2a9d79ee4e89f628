package model

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ============ DTOs ============

// FlexBool accepts both JSON booleans and the strings "true"/"false".
// Anything other than true or "true" decodes to false.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*b = FlexBool(v)
	case string:
		*b = FlexBool(v == "true")
	default:
		*b = false
	}
	return nil
}

// ParseFlexBool applies the same rule to a form value.
func ParseFlexBool(value string) bool {
	return value == "true"
}

// BlogPayload - JSON request body for create/update
type BlogPayload struct {
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	CoverImage      string    `json:"coverImage"`
	Author          string    `json:"author"`
	Published       *FlexBool `json:"published"`
	Keywords        []string  `json:"keywords"`
	MetaDescription string    `json:"metaDescription"`
}

// ToInput converts the JSON body into the service input.
func (p BlogPayload) ToInput() BlogInput {
	in := BlogInput{
		Title:           p.Title,
		Content:         p.Content,
		CoverImage:      p.CoverImage,
		Author:          p.Author,
		Keywords:        p.Keywords,
		MetaDescription: p.MetaDescription,
	}
	if p.Published != nil {
		published := bool(*p.Published)
		in.Published = &published
	}
	return in
}

// UploadedAsset is what the upload middleware hands over after a file was
// stored on the asset host during this request.
type UploadedAsset struct {
	URL      string
	PublicID string
}

// BlogInput - service input for CreateBlog and UpdateBlog
//
// Empty strings mean "not supplied": on update they keep the stored value.
type BlogInput struct {
	Title           string
	Content         string
	CoverImage      string
	Author          string
	Published       *bool
	Keywords        []string
	MetaDescription string

	// Upload is non-nil when a file was uploaded in this request
	Upload *UploadedAsset
}

// Normalize trims every free-text field.
func (in BlogInput) Normalize() BlogInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.CoverImage = strings.TrimSpace(in.CoverImage)
	in.Author = strings.TrimSpace(in.Author)
	in.MetaDescription = strings.TrimSpace(in.MetaDescription)
	if in.Keywords != nil {
		keywords := make([]string, 0, len(in.Keywords))
		for _, k := range in.Keywords {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		in.Keywords = keywords
	}
	return in
}

// ValidateCreate checks the fields a new post cannot do without.
// Call it on a normalized input.
func (in BlogInput) ValidateCreate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Content, validation.Required),
	)
	if err != nil {
		return ErrTitleContentRequired
	}
	return nil
}

// FreshUpload reports whether an asset was uploaded in this request.
func (in BlogInput) FreshUpload() bool {
	return in.Upload != nil
}

// ResolveCoverImage returns the URL the record should point at. An upload
// takes precedence over the coverImage field; an upload without URL
// resolves to "".
func (in BlogInput) ResolveCoverImage() string {
	if in.Upload != nil {
		return strings.TrimSpace(in.Upload.URL)
	}
	return in.CoverImage
}

// ListBlogsRequest - query params of GET /api/blogs
type ListBlogsRequest struct {
	Page  int
	Limit int
}

func (r ListBlogsRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Page, validation.Required, validation.Min(1)),
		validation.Field(&r.Limit, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return ErrInvalidPageLimit
	}
	return nil
}

// Skip is the number of documents before the requested page.
func (r ListBlogsRequest) Skip() int64 {
	return int64(r.Page-1) * int64(r.Limit)
}

// ListBlogsResult - a page of posts plus pagination metadata
type ListBlogsResult struct {
	Blogs      []Blog
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}

// TotalPages computes ceil(total / limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}
