package store

import (
	"context"
	"errors"
)

// Document is one raw record read from a collection.
type Document struct {
	ID   string
	Data map[string]any
}

// Store is the thin interface over the external document database. Each call
// is a single independent round trip; there is no caching, batching, or
// transactionality across records.
type Store interface {
	// ListAll returns every document in the collection, unfiltered and
	// unpaginated.
	ListAll(ctx context.Context, collection string) ([]Document, error)
	// Create inserts a document; the backend assigns and returns the ID.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Update overwrites only the given fields. Fails with ErrNotFound if the
	// document does not exist.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes a document. Deleting an already-absent document is a
	// no-op success.
	Delete(ctx context.Context, collection, id string) error
}

var (
	// ErrNotFound indicates the targeted document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// Unavailable is the Store used when no backend is configured (development
// without credentials). Every call fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) ListAll(ctx context.Context, collection string) ([]Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return ErrUnavailable
}

func (Unavailable) Delete(ctx context.Context, collection, id string) error {
	return ErrUnavailable
}
