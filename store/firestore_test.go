package store

import (
	"context"
	"errors"
	"os"
	"testing"

	firebase "firebase.google.com/go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestTranslateError(t *testing.T) {
	notFound := status.Error(codes.NotFound, "no document to update")
	assert.ErrorIs(t, translateError(notFound), ErrNotFound)

	unavailable := status.Error(codes.Unavailable, "transport is closing")
	assert.ErrorIs(t, translateError(unavailable), ErrUnavailable)

	deadline := status.Error(codes.DeadlineExceeded, "context deadline exceeded")
	assert.ErrorIs(t, translateError(deadline), ErrUnavailable)

	plain := errors.New("something else")
	assert.Equal(t, plain, translateError(plain))
}

func TestUnavailableStore(t *testing.T) {
	var s Store = Unavailable{}
	ctx := context.Background()

	_, err := s.ListAll(ctx, "posts")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Create(ctx, "posts", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, s.Update(ctx, "posts", "p1", nil), ErrUnavailable)
	assert.ErrorIs(t, s.Delete(ctx, "posts", "p1"), ErrUnavailable)
}

// TestFirestoreRoundTrip exercises the real client against a local emulator.
func TestFirestoreRoundTrip(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: "demo-test"})
	require.NoError(t, err)

	fs, err := NewFirestore(ctx, app)
	require.NoError(t, err)
	defer fs.Close()

	id, err := fs.Create(ctx, "posts", map[string]any{"title": "hello", "content": "world"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	docs, err := fs.ListAll(ctx, "posts")
	require.NoError(t, err)
	var found bool
	for _, d := range docs {
		if d.ID == id {
			found = true
			assert.Equal(t, "hello", d.Data["title"])
		}
	}
	assert.True(t, found)

	require.NoError(t, fs.Update(ctx, "posts", id, map[string]any{"title": "updated"}))
	assert.ErrorIs(t, fs.Update(ctx, "posts", "does-not-exist", map[string]any{"title": "x"}), ErrNotFound)

	require.NoError(t, fs.Delete(ctx, "posts", id))
	// Deleting an absent document is a no-op.
	require.NoError(t, fs.Delete(ctx, "posts", id))
}
