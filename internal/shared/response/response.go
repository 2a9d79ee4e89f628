package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the shape of every failed response.
type ErrorBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Stack   []string `json:"stack,omitempty"`
}

// MessageBody - {success, message}
type MessageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BlogBody - {success, message?, blog}
type BlogBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Blog    interface{} `json:"blog"`
}

// PageBody - {success, page, limit, totalBlogs, totalPages, blogs}
type PageBody struct {
	Success    bool        `json:"success"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalBlogs int64       `json:"totalBlogs"`
	TotalPages int64       `json:"totalPages"`
	Blogs      interface{} `json:"blogs"`
}

// Success responses
func Blog(c *gin.Context, statusCode int, message string, blog interface{}) {
	c.JSON(statusCode, BlogBody{
		Success: true,
		Message: message,
		Blog:    blog,
	})
}

func Page(c *gin.Context, statusCode int, body PageBody) {
	body.Success = true
	c.JSON(statusCode, body)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{
		Success: true,
		Message: message,
	})
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Success: false,
		Message: message,
	})
}

func ErrorWithStack(c *gin.Context, statusCode int, message string, stack []string) {
	c.JSON(statusCode, ErrorBody{
		Success: false,
		Message: message,
		Stack:   stack,
	})
}

// Common error responses
func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
