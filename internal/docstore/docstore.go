// Package docstore defines the collection contract shared by every document backend.
package docstore

import (
	"context"
	"errors"
	"fmt"
)

// IDField is the document field carrying the store-assigned id.
const IDField = "_id"

// Fields holds top-level document fields to overwrite on update.
type Fields map[string]any

// Collection is a schema-less collection of documents decoded as T.
//
// Lookups that match nothing return domain.ErrNotFound, including lookups by a
// malformed id. Unique key violations return domain.ErrAlreadyExists. Any other
// failure is an *Error.
type Collection[T any] interface {
	Name() string
	Find(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	FindOne(ctx context.Context, field, value string) (*T, error)
	Create(ctx context.Context, doc T) (*T, error)
	Update(ctx context.Context, id string, fields Fields) (*T, error)
	// Append atomically adds elem to the end of arrayField on the single
	// document whose field equals value.
	Append(ctx context.Context, field, value, arrayField string, elem any) (*T, error)
	DeleteByID(ctx context.Context, id string) (*T, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Error reports a failure of the backing store itself.
type Error struct {
	Backend    string
	Collection string
	Op         string
	Err        error
}

// Wrap returns err as an *Error, or nil when err is nil.
func Wrap(backend, collection, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Backend: backend, Collection: collection, Op: op, Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s.%s: %v", e.Backend, e.Collection, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsStoreError reports whether err originated in the backing store.
func IsStoreError(err error) bool {
	var storeErr *Error
	return errors.As(err, &storeErr)
}
