// Package resource implements the one generic list-management pattern shared
// by the Users and Posts screens: an in-memory snapshot of a collection,
// reconciled after every mutation. The snapshot is a cache, never the
// authority; the store is re-read or patched locally depending on the
// operation.
package resource

import (
	"context"
	"errors"
	"sort"
	"sync"

	"adminconsole/store"
)

// Record is any document-shaped entity managed by a Manager.
type Record interface {
	RecordID() string
}

// State is the lifecycle of a managed list.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Manager owns the list state for one resource type. It is instantiated once
// per collection and shared by the page and API handlers.
type Manager[T Record] struct {
	store      store.Store
	collection string
	decode     func(store.Document) T
	less       func(a, b T) bool
	applyPatch func(T, map[string]any) T
	loadErrMsg string

	mu      sync.Mutex
	gen     uint64
	records []T
	state   State
	lastErr string
}

// Option configures a Manager.
type Option[T Record] func(*Manager[T])

// WithSort orders the list after every load. Without it the list keeps the
// store's iteration order.
func WithSort[T Record](less func(a, b T) bool) Option[T] {
	return func(m *Manager[T]) { m.less = less }
}

// WithLocalPatch enables PatchField: apply reconciles a single-field update
// into the cached record without a re-fetch.
func WithLocalPatch[T Record](apply func(T, map[string]any) T) Option[T] {
	return func(m *Manager[T]) { m.applyPatch = apply }
}

// WithLoadErrorMessage sets the fixed message shown when a load fails.
func WithLoadErrorMessage[T Record](msg string) Option[T] {
	return func(m *Manager[T]) { m.loadErrMsg = msg }
}

func NewManager[T Record](s store.Store, collection string, decode func(store.Document) T, opts ...Option[T]) *Manager[T] {
	m := &Manager[T]{
		store:      s,
		collection: collection,
		decode:     decode,
		state:      StateLoading,
		loadErrMsg: "Failed to load " + collection,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load fetches the full collection snapshot. A load that resolves after a
// newer load has started is discarded rather than applied, so a stale
// response can never clobber fresher state.
func (m *Manager[T]) Load(ctx context.Context) error {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.state = StateLoading
	m.mu.Unlock()

	docs, err := m.store.ListAll(ctx, m.collection)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		// A newer load started while this one was in flight.
		return nil
	}
	if err != nil {
		// The previously loaded list is preserved; only the state flips.
		m.state = StateError
		m.lastErr = m.loadErrMsg
		return err
	}

	records := make([]T, 0, len(docs))
	for _, doc := range docs {
		records = append(records, m.decode(doc))
	}
	if m.less != nil {
		sort.SliceStable(records, func(i, j int) bool { return m.less(records[i], records[j]) })
	}
	m.records = records
	m.state = StateReady
	m.lastErr = ""
	return nil
}

// Snapshot returns a copy of the current list with its state and the fixed
// error message, if any.
func (m *Manager[T]) Snapshot() ([]T, State, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]T(nil), m.records...), m.state, m.lastErr
}

// Find returns the cached record with the given ID.
func (m *Manager[T]) Find(id string) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// SubmitCreate inserts a record and re-fetches the full list on success (the
// original behavior for posts; accepted inefficiency at this scale). The
// create error, if any, is returned for modal-scoped display; a failed
// re-fetch is recorded in the manager state instead.
func (m *Manager[T]) SubmitCreate(ctx context.Context, fields map[string]any) (string, error) {
	id, err := m.store.Create(ctx, m.collection, fields)
	if err != nil {
		return "", err
	}
	_ = m.Load(ctx)
	return id, nil
}

// SubmitEdit overwrites the given fields and re-fetches on success.
func (m *Manager[T]) SubmitEdit(ctx context.Context, id string, fields map[string]any) error {
	if err := m.store.Update(ctx, m.collection, id, fields); err != nil {
		return err
	}
	_ = m.Load(ctx)
	return nil
}

// Delete removes a record and patches it out of the local list directly,
// without a re-fetch.
func (m *Manager[T]) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, m.collection, id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.records[:0]
	for _, r := range m.records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	m.records = kept
	return nil
}

// PatchField updates a single field and reconciles the cached record locally,
// without a re-fetch. Only managers configured with WithLocalPatch support it.
func (m *Manager[T]) PatchField(ctx context.Context, id, field string, value any) error {
	if m.applyPatch == nil {
		return errors.New("local patch not supported for " + m.collection)
	}
	if err := m.store.Update(ctx, m.collection, id, map[string]any{field: value}); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.RecordID() == id {
			m.records[i] = m.applyPatch(r, map[string]any{field: value})
			break
		}
	}
	return nil
}
