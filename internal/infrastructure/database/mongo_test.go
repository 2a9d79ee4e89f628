package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"blog-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// unconnectedClient builds a client without talking to a server.
func unconnectedClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client
}

func TestMongoDB_Client_RetriesAfterFailure(t *testing.T) {
	client := unconnectedClient(t)
	var calls int32

	db := &MongoDB{
		cfg: config.MongoConfig{Database: "blog"},
		connect: func(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, errors.New("server selection timeout")
			}
			return client, nil
		},
	}

	_, err := db.Client(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server selection timeout")

	got, err := db.Client(context.Background())
	require.NoError(t, err)
	assert.Same(t, client, got)

	// cached from here on
	got, err = db.Client(context.Background())
	require.NoError(t, err)
	assert.Same(t, client, got)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestMongoDB_Client_ConnectsOnceUnderConcurrency(t *testing.T) {
	client := unconnectedClient(t)
	var calls int32

	db := &MongoDB{
		cfg: config.MongoConfig{Database: "blog"},
		connect: func(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
			atomic.AddInt32(&calls, 1)
			return client, nil
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := db.Client(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestMongoDB_Collection(t *testing.T) {
	client := unconnectedClient(t)
	db := &MongoDB{
		cfg: config.MongoConfig{Database: "blog"},
		connect: func(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
			return client, nil
		},
	}

	coll, err := db.Collection(context.Background(), "blogs")
	require.NoError(t, err)
	assert.Equal(t, "blogs", coll.Name())
	assert.Equal(t, "blog", coll.Database().Name())
}

func TestMongoDB_Close_NoClient(t *testing.T) {
	db := NewMongoDB(config.MongoConfig{})
	assert.NoError(t, db.Close(context.Background()))
}
