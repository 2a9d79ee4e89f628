package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultAssetBaseURL = "http://localhost:8080"

// Config holds the application configuration, populated from environment
// variables
type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Asset  AssetConfig
	MinIO  MinIOConfig
	S3     S3Config
	Upload UploadConfig
	Auth   AuthConfig
	CORS   CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// IsDevelopment reports whether verbose error payloads may be returned.
func (a AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
	TTL      time.Duration // blog detail cache
}

// AssetConfig selects the cover image backend and how public URLs are built
type AssetConfig struct {
	Driver        string // minio, s3
	PublicBaseURL string // URL prefix served by GET /media/upload/*path
	Folder        string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string // minioadmin
	SecretKey string // minioadmin
	Bucket    string // blog-assets
	UseSSL    bool   // false for local
}

type S3Config struct {
	Region   string
	Bucket   string
	Endpoint string // optional, for S3-compatible services
}

type UploadConfig struct {
	MaxBytes     int64
	MaxDimension int // covers larger than this are fit into a square box
	FieldName    string
}

type AuthConfig struct {
	JWTSecret string // empty disables write-route auth
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads the config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Blog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", getEnv("PORT", "3000")),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "blog"),
			Collection:     getEnv("MONGO_COLLECTION", "blogs"),
			ConnectTimeout: getEnvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_TTL", 10*time.Minute),
		},
		Asset: AssetConfig{
			Driver:        strings.ToLower(getEnv("ASSET_DRIVER", "minio")),
			PublicBaseURL: strings.TrimRight(getEnv("ASSET_PUBLIC_BASE_URL", defaultAssetBaseURL), "/"),
			Folder:        strings.Trim(getEnv("ASSET_FOLDER", "blog-covers"), "/"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "blog-assets"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		S3: S3Config{
			Region:   getEnv("AWS_REGION", "us-east-1"),
			Bucket:   getEnv("S3_BUCKET", ""),
			Endpoint: getEnv("S3_ENDPOINT", ""),
		},
		Upload: UploadConfig{
			MaxBytes:     int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
			MaxDimension: getEnvInt("UPLOAD_MAX_DIMENSION", 1600),
			FieldName:    getEnv("UPLOAD_FIELD", "coverImage"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getEnv("CLIENT_URL", "*")),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configs the service cannot start with
func (c *Config) Validate() error {
	switch c.Asset.Driver {
	case "minio":
	case "s3":
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3_BUCKET must be set when ASSET_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unsupported ASSET_DRIVER %q (expected minio or s3)", c.Asset.Driver)
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	if c.App.Environment == "production" {
		if os.Getenv("MONGO_URI") == "" {
			return fmt.Errorf("MONGO_URI must be set in production")
		}
		if c.Asset.PublicBaseURL == defaultAssetBaseURL {
			return fmt.Errorf("ASSET_PUBLIC_BASE_URL must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
