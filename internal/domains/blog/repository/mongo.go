package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"blog-backend/internal/domains/blog/model"
	"blog-backend/internal/shared/apperror"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	provider   CollectionProvider
	collection string

	indexMu sync.Mutex
	indexed bool // set once slug_unique exists
}

func NewMongoRepository(provider CollectionProvider, collection string) RepositoryInterface {
	return &mongoRepository{
		provider:   provider,
		collection: collection,
	}
}

func (r *mongoRepository) coll(ctx context.Context) (*mongo.Collection, error) {
	coll, err := r.provider.Collection(ctx, r.collection)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return coll, nil
}

// writeColl is coll for Insert/Update. Slug uniqueness lives in the index,
// so no write goes through before the indexes have been created once.
func (r *mongoRepository) writeColl(ctx context.Context) (*mongo.Collection, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.ensureIndexesOnce(ctx, coll); err != nil {
		return nil, err
	}
	return coll, nil
}

// ensureIndexesOnce creates the indexes on the first successful connection.
// A failed attempt is not remembered, the next write tries again.
func (r *mongoRepository) ensureIndexesOnce(ctx context.Context, coll *mongo.Collection) error {
	r.indexMu.Lock()
	defer r.indexMu.Unlock()

	if r.indexed {
		return nil
	}
	if err := createIndexes(ctx, coll); err != nil {
		return err
	}
	r.indexed = true
	return nil
}

// ============================================
// WRITES
// ============================================

func (r *mongoRepository) Insert(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	if err := blog.Validate(); err != nil {
		return nil, apperror.NewPersistence(err, model.SchemaMessages(err)...)
	}

	coll, err := r.writeColl(ctx)
	if err != nil {
		return nil, err
	}

	doc := *blog
	ts := now()
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = ts
	doc.UpdatedAt = ts
	if doc.Keywords == nil {
		doc.Keywords = []string{}
	}

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return nil, translateWriteError("insert blog", err)
	}
	return &doc, nil
}

func (r *mongoRepository) UpdateByID(ctx context.Context, id string, blog *model.Blog) (*model.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidBlogID
	}
	if err := blog.Validate(); err != nil {
		return nil, apperror.NewPersistence(err, model.SchemaMessages(err)...)
	}

	coll, err := r.writeColl(ctx)
	if err != nil {
		return nil, err
	}

	keywords := blog.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	update := bson.M{"$set": bson.M{
		"title":           blog.Title,
		"content":         blog.Content,
		"coverImage":      blog.CoverImage,
		"slug":            blog.Slug,
		"author":          blog.Author,
		"published":       blog.Published,
		"keywords":        keywords,
		"metaDescription": blog.MetaDescription,
		"updatedAt":       now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Blog
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBlogNotFound
		}
		return nil, translateWriteError("update blog", err)
	}
	return &updated, nil
}

func (r *mongoRepository) DeleteByID(ctx context.Context, id string) (*model.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidBlogID
	}

	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	var deleted model.Blog
	if err := coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBlogNotFound
		}
		return nil, fmt.Errorf("delete blog: %w", err)
	}
	return &deleted, nil
}

// ============================================
// READS
// ============================================

func (r *mongoRepository) FindByID(ctx context.Context, id string) (*model.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrInvalidBlogID
	}

	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	var blog model.Blog
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return &blog, nil
}

func (r *mongoRepository) FindMany(ctx context.Context, skip, limit int64) ([]model.Blog, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	// _id breaks ties between posts created in the same millisecond
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := make([]model.Blog, 0)
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return blogs, nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return 0, err
	}

	total, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}
	return total, nil
}

// EnsureIndexes creates the unique slug index and the createdAt index.
// When Mongo is not reachable yet, the first write creates them instead.
func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	return r.ensureIndexesOnce(ctx, coll)
}

func createIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("slug_unique"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// ============================================
// HELPERS
// ============================================

func translateWriteError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperror.NewPersistence(err, model.MsgSlugNotUnique)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Mongo stores times with millisecond precision
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
