package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	blogHandler "blog-backend/internal/domains/blog/handler"
	blogRepo "blog-backend/internal/domains/blog/repository"
	blogService "blog-backend/internal/domains/blog/service"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	Mongo      *database.MongoDB // lazy, connects on first use
	Redis      *infraCache.RedisClient
	Cache      cache.Cache // Redis, or no-op when Redis is down
	Assets     storage.AssetStore
	Images     *storage.ImageProcessor
	JWTManager *jwt.Manager // nil when write auth is disabled

	// ========================================
	// REPOSITORY / SERVICE / HANDLER
	// ========================================
	BlogRepo      blogRepo.RepositoryInterface
	BlogService   blogService.ServiceInterface
	BlogHandler   *blogHandler.Handler
	MediaHandler  *blogHandler.MediaHandler
	HealthHandler *blogHandler.HealthHandler
}

// NewContainer builds the whole dependency graph
//
// Initialization order:
// 1. Config
// 2. Infrastructure (Mongo, Redis, asset host)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer(cfg *config.Config) (*Container, error) {
	logger.Info("🔧 Initializing DI Container...", nil)

	c := &Container{Config: cfg}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("✅ DI Container initialized", nil)
	return c, nil
}

// ========================================
// STEP 2: INFRASTRUCTURE
// ========================================
func (c *Container) initInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// MongoDB: no connect here, the first request (or EnsureIndexes) does it
	c.Mongo = database.NewMongoDB(c.Config.Mongo)

	// Redis: optional, fall back to a cache that always misses
	c.Redis = infraCache.NewRedisClient(c.Config.Redis)
	if err := c.Redis.Connect(ctx); err != nil {
		logger.Error("⚠️  Redis unavailable, running without cache", err)
		c.Cache = cache.NoopCache{}
	} else {
		c.Cache = infraCache.NewRedisCache(c.Redis.Client)
	}

	// Asset host
	assets, err := newAssetStore(ctx, c.Config)
	if err != nil {
		return fmt.Errorf("failed to init asset store: %w", err)
	}
	c.Assets = assets
	c.Images = storage.NewImageProcessor(c.Config.Upload.MaxDimension)

	if c.Config.Auth.JWTSecret != "" {
		c.JWTManager = jwt.NewManager(c.Config.Auth.JWTSecret)
	}

	logger.Info("✅ Infrastructure ready", map[string]interface{}{
		"asset_driver": c.Config.Asset.Driver,
		"write_auth":   c.JWTManager != nil,
	})
	return nil
}

func newAssetStore(ctx context.Context, cfg *config.Config) (storage.AssetStore, error) {
	switch cfg.Asset.Driver {
	case "s3":
		return storage.NewS3Storage(cfg.S3, cfg.Asset.PublicBaseURL)
	default:
		return storage.NewMinIOStorage(ctx, cfg.MinIO, cfg.Asset.PublicBaseURL)
	}
}

// ========================================
// STEP 3-5
// ========================================
func (c *Container) initRepositories() {
	c.BlogRepo = blogRepo.NewMongoRepository(c.Mongo, c.Config.Mongo.Collection)
}

func (c *Container) initServices() {
	c.BlogService = blogService.NewService(c.BlogRepo, c.Assets, c.Cache, c.Config.Redis.TTL)
}

func (c *Container) initHandlers() {
	c.BlogHandler = blogHandler.NewHandler(c.BlogService)
	c.MediaHandler = blogHandler.NewMediaHandler(c.Assets)
	c.HealthHandler = blogHandler.NewHealthHandler(map[string]blogHandler.Pinger{
		"mongo":  c.Mongo,
		"cache":  c.Cache,
		"assets": c.Assets,
	})
}

// EnsureIndexes creates the blogs indexes at startup. Failure is not fatal:
// the repository builds them before the first write once Mongo is reachable.
func (c *Container) EnsureIndexes(ctx context.Context) {
	if err := c.BlogRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("⚠️  Could not ensure blog indexes, retrying on first write", err)
		return
	}
	logger.Info("✅ Blog indexes ready", nil)
}

// Cleanup closes all connections on shutdown
func (c *Container) Cleanup() {
	logger.Info("🧹 Cleaning up resources...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.Mongo != nil {
		if err := c.Mongo.Close(ctx); err != nil {
			logger.Error("Error closing MongoDB", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Error closing Redis", err)
		}
	}
}
