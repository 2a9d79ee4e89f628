package model

import "blog-backend/internal/shared/apperror"

// MsgSlugNotUnique is reported when another post already owns the slug.
const MsgSlugNotUnique = "Path `slug` must be unique."

var (
	ErrInvalidBlogID        = apperror.NewValidation("Invalid blog ID")
	ErrInvalidRequestBody   = apperror.NewValidation("Invalid request body")
	ErrTitleContentRequired = apperror.NewValidation("Title and content are required")
	ErrCoverImageRequired   = apperror.NewValidation("Cover image is required")
	ErrInvalidPageLimit     = apperror.NewValidation("Page and limit must be positive integers")
	ErrBlogNotFound         = apperror.NewNotFound("Blog not found")
)
