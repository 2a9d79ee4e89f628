package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"blog-backend/internal/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// connectFunc returns a client that answered a ping
type connectFunc func(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error)

// MongoDB is a lazy connection handle. It connects on first use and reuses
// the client afterwards. A failed connect or ping caches nothing, so the
// next call tries again.
type MongoDB struct {
	cfg     config.MongoConfig
	connect connectFunc

	mu     sync.Mutex
	client *mongo.Client
}

func NewMongoDB(cfg config.MongoConfig) *MongoDB {
	return &MongoDB{cfg: cfg, connect: dialMongo}
}

// Client returns the connected client, connecting first if needed.
func (db *MongoDB) Client(ctx context.Context) (*mongo.Client, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.client != nil {
		return db.client, nil
	}

	log.Info().Str("database", db.cfg.Database).Msg("[DATABASE] Connecting to MongoDB...")
	client, err := db.connect(ctx, db.cfg)
	if err != nil {
		log.Error().Err(err).Msg("[DATABASE] MongoDB connection failed")
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}

	db.client = client
	log.Info().Msg("[DATABASE] MongoDB connected")
	return client, nil
}

// Connect makes sure a client is available.
func (db *MongoDB) Connect(ctx context.Context) error {
	_, err := db.Client(ctx)
	return err
}

// Collection resolves a collection of the configured database.
func (db *MongoDB) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := db.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(db.cfg.Database).Collection(name), nil
}

// Ping backs the health check and connects if needed.
func (db *MongoDB) Ping(ctx context.Context) error {
	client, err := db.Client(ctx)
	if err != nil {
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close disconnects the cached client. Safe to call more than once.
func (db *MongoDB) Close(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.client == nil {
		return nil
	}
	err := db.client.Disconnect(ctx)
	db.client = nil
	return err
}

func dialMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, err
	}

	// Connect is lazy, ping to fail fast
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
