package ui

import (
	"context"
	"net/http"
	"sync"

	"adminconsole/middleware"
	"adminconsole/models"
	"adminconsole/resource"
	"adminconsole/store"
)

type memoryStore struct {
	mu     sync.Mutex
	docs   map[string][]store.Document
	nextID int

	failWith error
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
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]store.Document(nil), s.docs[collection]...), nil
}

func (s *memoryStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
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

type fakeIdentity struct {
	token       string
	err         error
	signInCalls int
	signUpCalls int
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (string, error) {
	f.signInCalls++
	return f.token, f.err
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password, confirmPassword string) (string, error) {
	f.signUpCalls++
	return f.token, f.err
}

func newTestHandler(ms *memoryStore, identity IdentityService) *Handler {
	posts := resource.NewManager(ms, models.PostsCollection,
		func(d store.Document) models.Post { return models.PostFromDoc(d.ID, d.Data) },
		resource.WithSort[models.Post](func(a, b models.Post) bool { return a.CreatedAt > b.CreatedAt }),
		resource.WithLoadErrorMessage[models.Post]("Failed to load posts. Make sure Firestore is enabled."),
	)
	users := resource.NewManager(ms, models.UsersCollection,
		func(d store.Document) models.User { return models.UserFromDoc(d.ID, d.Data) },
		resource.WithLocalPatch[models.User](models.User.ApplyPatch),
		resource.WithLoadErrorMessage[models.User]("Failed to load users"),
	)
	return NewHandler(identity, posts, users, false)
}

func asPrincipal(r *http.Request, p *models.Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.PrincipalKey, p))
}
