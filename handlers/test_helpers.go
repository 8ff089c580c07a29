package handlers

import (
	"context"
	"net/http"
	"sync"

	"adminconsole/middleware"
	"adminconsole/models"
	"adminconsole/resource"
	"adminconsole/store"
)

// memoryStore is a test double for the Firestore-backed store.
type memoryStore struct {
	mu     sync.Mutex
	docs   map[string][]store.Document
	nextID int

	failWith error

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: map[string][]store.Document{}}
}

func (s *memoryStore) seed(collection, id string, data map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[collection] = append(s.docs[collection], store.Document{ID: id, Data: data})
}

func (s *memoryStore) ListAll(ctx context.Context, collection string) ([]store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]store.Document(nil), s.docs[collection]...), nil
}

func (s *memoryStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	if s.failWith != nil {
		return "", s.failWith
	}
	s.nextID++
	id := "gen-" + string(rune('0'+s.nextID))
	s.docs[collection] = append(s.docs[collection], store.Document{ID: id, Data: fields})
	return id, nil
}

func (s *memoryStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	if s.failWith != nil {
		return s.failWith
	}
	for i, doc := range s.docs[collection] {
		if doc.ID == id {
			for k, v := range fields {
				s.docs[collection][i].Data[k] = v
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++
	if s.failWith != nil {
		return s.failWith
	}
	kept := s.docs[collection][:0]
	for _, doc := range s.docs[collection] {
		if doc.ID != id {
			kept = append(kept, doc)
		}
	}
	s.docs[collection] = kept
	return nil
}

// newTestAPI builds an API over an in-memory store.
func newTestAPI(ms *memoryStore) *API {
	posts := resource.NewManager(ms, models.PostsCollection,
		func(d store.Document) models.Post { return models.PostFromDoc(d.ID, d.Data) },
		resource.WithSort[models.Post](func(a, b models.Post) bool { return a.CreatedAt > b.CreatedAt }),
	)
	users := resource.NewManager(ms, models.UsersCollection,
		func(d store.Document) models.User { return models.UserFromDoc(d.ID, d.Data) },
		resource.WithLocalPatch[models.User](models.User.ApplyPatch),
	)
	return NewAPI(posts, users)
}

// asPrincipal attaches an authenticated principal the way the auth middleware
// does.
func asPrincipal(r *http.Request, p *models.Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.PrincipalKey, p))
}
