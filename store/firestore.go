package store

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore implements Store against a Firestore database obtained from the
// Firebase app handle.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore connects to the Firestore database backing the given app.
func NewFirestore(ctx context.Context, app *firebase.App) (*Firestore, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}
	log.Println("Firestore client initialized")
	return &Firestore{client: client}, nil
}

// Close releases the underlying client connection.
func (s *Firestore) Close() error {
	return s.client.Close()
}

func (s *Firestore) ListAll(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateError(err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

func (s *Firestore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", translateError(err)
	}
	return ref.ID, nil
}

func (s *Firestore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (s *Firestore) Delete(ctx context.Context, collection, id string) error {
	// Firestore deletes are no-ops for absent documents, which matches the
	// idempotency the callers expect.
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return translateError(err)
	}
	return nil
}

// translateError maps the Firestore gRPC error surface onto the store's
// sentinel errors.
func translateError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}
