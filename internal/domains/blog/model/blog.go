package model

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAuthor is stored when a post is created without an author.
const DefaultAuthor = "Iyra Media"

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ============ ENTITIES ============

// Blog - Domain Entity (document in the blogs collection)
type Blog struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Content         string             `json:"content" bson:"content"`
	CoverImage      string             `json:"coverImage" bson:"coverImage"`
	Slug            string             `json:"slug" bson:"slug"`
	Author          string             `json:"author" bson:"author"`
	Published       bool               `json:"published" bson:"published"`
	Keywords        []string           `json:"keywords" bson:"keywords"`
	MetaDescription *string            `json:"metaDescription" bson:"metaDescription"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Validate enforces the collection schema. The record store runs it before
// every insert and update.
func (b Blog) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required.Error("Path `title` is required.")),
		validation.Field(&b.Content, validation.Required.Error("Path `content` is required.")),
		validation.Field(&b.CoverImage, validation.Required.Error("Path `coverImage` is required.")),
	)
}

// schemaFields is the order schema messages are reported in.
var schemaFields = []string{"title", "content", "coverImage"}

// SchemaMessages flattens a Validate error into one message per field.
func SchemaMessages(err error) []string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(errs))
	for _, field := range schemaFields {
		if fieldErr, ok := errs[field]; ok {
			messages = append(messages, fieldErr.Error())
		}
	}
	return messages
}

// IsValidID reports whether id has the record store's identifier syntax
// (24 hex characters).
func IsValidID(id string) bool {
	return objectIDPattern.MatchString(id)
}

// GenerateBlogDetailCacheKey is the cache key of GET /api/blogs/:id
func GenerateBlogDetailCacheKey(id string) string {
	return fmt.Sprintf("blog:detail:%s", id)
}
