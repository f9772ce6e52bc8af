// Package memstore is an in-process docstore backend. Documents are kept in their
// JSON form so callers never share memory with stored state.
package memstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

const backend = "memory"

// Collection is a mutex-guarded docstore.Collection.
type Collection[T any] struct {
	name   string
	unique []string

	mu    sync.Mutex
	order []string
	docs  map[string]map[string]any
}

var _ docstore.Collection[struct{}] = (*Collection[struct{}])(nil)

// New returns an empty collection. Values of the unique fields must not repeat.
func New[T any](name string, unique ...string) *Collection[T] {
	return &Collection[T]{
		name:   name,
		unique: unique,
		docs:   make(map[string]map[string]any),
	}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Ping always succeeds.
func (c *Collection[T]) Ping(context.Context) error {
	return nil
}

func (c *Collection[T]) Find(_ context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		doc, err := c.decode("find", c.docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (c *Collection[T]) FindByID(_ context.Context, id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.decode("findById", m)
}

func (c *Collection[T]) FindOne(_ context.Context, field, value string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, m, ok := c.match(field, value)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c.decode("findOne", m)
}

func (c *Collection[T]) Create(_ context.Context, doc T) (*T, error) {
	m, err := toMap(doc)
	if err != nil {
		return nil, docstore.Wrap(backend, c.name, "create", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, field := range c.unique {
		v, ok := m[field].(string)
		if !ok {
			continue
		}
		if _, _, taken := c.match(field, v); taken {
			return nil, domain.ErrAlreadyExists
		}
	}

	id := uuid.NewString()
	m[docstore.IDField] = id
	c.docs[id] = m
	c.order = append(c.order, id)
	return c.decode("create", m)
}

func (c *Collection[T]) Update(_ context.Context, id string, fields docstore.Fields) (*T, error) {
	patch, err := toMap(fields)
	if err != nil {
		return nil, docstore.Wrap(backend, c.name, "update", err)
	}
	delete(patch, docstore.IDField)

	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range patch {
		m[k] = v
	}
	return c.decode("update", m)
}

func (c *Collection[T]) Append(_ context.Context, field, value, arrayField string, elem any) (*T, error) {
	raw, err := json.Marshal(elem)
	if err != nil {
		return nil, docstore.Wrap(backend, c.name, "append", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, docstore.Wrap(backend, c.name, "append", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, m, ok := c.match(field, value)
	if !ok {
		return nil, domain.ErrNotFound
	}
	arr, _ := m[arrayField].([]any)
	m[arrayField] = append(arr, v)
	return c.decode("append", m)
}

func (c *Collection[T]) DeleteByID(_ context.Context, id string) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc, err := c.decode("delete", m)
	if err != nil {
		return nil, err
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return doc, nil
}

// match must be called with c.mu held.
func (c *Collection[T]) match(field, value string) (string, map[string]any, bool) {
	if field == docstore.IDField {
		m, ok := c.docs[value]
		return value, m, ok
	}
	for _, id := range c.order {
		m := c.docs[id]
		if s, ok := m[field].(string); ok && s == value {
			return id, m, true
		}
	}
	return "", nil, false
}

func (c *Collection[T]) decode(op string, m map[string]any) (*T, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, docstore.Wrap(backend, c.name, op, err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, docstore.Wrap(backend, c.name, op, err)
	}
	return &out, nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
