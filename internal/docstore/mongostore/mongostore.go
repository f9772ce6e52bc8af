// Package mongostore implements docstore.Collection over a MongoDB collection.
package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

const backend = "mongo"

// Collection stores T as BSON documents keyed by ObjectID.
type Collection[T any] struct {
	coll *mongo.Collection
}

var _ docstore.Collection[struct{}] = (*Collection[struct{}])(nil)

// New binds a collection of db.
func New[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

func (c *Collection[T]) Name() string {
	return c.coll.Name()
}

// EnsureUnique creates a unique ascending index on field.
func (c *Collection[T]) EnsureUnique(ctx context.Context, field string) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(field + "_unique"),
	})
	return c.wrap("ensureIndex", err)
}

func (c *Collection[T]) Find(ctx context.Context) ([]T, error) {
	cur, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, c.wrap("find", err)
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, c.wrap("find", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.FindOne(ctx, docstore.IDField, id)
}

func (c *Collection[T]) FindOne(ctx context.Context, field, value string) (*T, error) {
	filter, ok := matchFilter(field, value)
	if !ok {
		return nil, domain.ErrNotFound
	}
	var out T
	if err := c.coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, c.lookupErr("findOne", err)
	}
	return &out, nil
}

func (c *Collection[T]) Create(ctx context.Context, doc T) (*T, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, c.wrap("create", err)
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, c.wrap("create", err)
	}
	stored := bson.D{{Key: docstore.IDField, Value: primitive.NewObjectID()}}
	for _, e := range fields {
		if e.Key != docstore.IDField {
			stored = append(stored, e)
		}
	}

	if _, err := c.coll.InsertOne(ctx, stored); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, c.wrap("create", err)
	}

	raw, err = bson.Marshal(stored)
	if err != nil {
		return nil, c.wrap("create", err)
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, c.wrap("create", err)
	}
	return &out, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, fields docstore.Fields) (*T, error) {
	filter, ok := matchFilter(docstore.IDField, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	set := bson.M{}
	for k, v := range fields {
		if k != docstore.IDField {
			set[k] = v
		}
	}
	return c.findOneAndUpdate(ctx, "update", filter, bson.M{"$set": set})
}

func (c *Collection[T]) Append(ctx context.Context, field, value, arrayField string, elem any) (*T, error) {
	filter, ok := matchFilter(field, value)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.findOneAndUpdate(ctx, "append", filter, bson.M{"$push": bson.M{arrayField: elem}})
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	filter, ok := matchFilter(docstore.IDField, id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	var out T
	if err := c.coll.FindOneAndDelete(ctx, filter).Decode(&out); err != nil {
		return nil, c.lookupErr("delete", err)
	}
	return &out, nil
}

func (c *Collection[T]) findOneAndUpdate(ctx context.Context, op string, filter, update bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out T
	if err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, c.lookupErr(op, err)
	}
	return &out, nil
}

func (c *Collection[T]) lookupErr(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	return c.wrap(op, err)
}

func (c *Collection[T]) wrap(op string, err error) error {
	return docstore.Wrap(backend, c.coll.Name(), op, err)
}

// matchFilter builds an equality filter. Ids that are not ObjectIDs match nothing.
func matchFilter(field, value string) (bson.M, bool) {
	if field != docstore.IDField {
		return bson.M{field: value}, true
	}
	oid, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return nil, false
	}
	return bson.M{docstore.IDField: oid}, true
}
