package main

import (
	"net/http"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.ErrorHandler(c.Config.App.IsDevelopment()),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Welcome to the Blog API")
	})
	router.GET("/health", c.HealthHandler.Check)
	router.GET("/media/upload/*path", c.MediaHandler.ServeAsset)

	api := router.Group("/api", middleware.DatabaseReady(c.Mongo))
	{
		setupBlogRoutes(api, c)
	}

	router.NoRoute(middleware.NotFound())

	return router
}

// ========================================
// BLOG ROUTES
// ========================================
func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	upload := middleware.CoverUpload(c.Assets, c.Images, c.Config.Upload, c.Config.Asset.Folder)

	// write routes need a bearer token only when JWT_SECRET is set
	var writeGuard gin.HandlerFunc = func(ctx *gin.Context) { ctx.Next() }
	if c.JWTManager != nil {
		writeGuard = middleware.AuthMiddleware(c.JWTManager)
	}

	blogs := api.Group("/blogs")
	{
		blogs.GET("", c.BlogHandler.ListBlogs)
		blogs.GET("/:id", c.BlogHandler.GetBlog)
		blogs.POST("", writeGuard, upload, c.BlogHandler.CreateBlog)
		blogs.PUT("/:id", writeGuard, upload, c.BlogHandler.UpdateBlog)
		blogs.DELETE("/:id", writeGuard, c.BlogHandler.DeleteBlog)
	}
}
