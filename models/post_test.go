package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorName(t *testing.T) {
	tests := []struct {
		name      string
		principal *Principal
		want      string
	}{
		{"display name wins", &Principal{DisplayName: "Ada", Email: "ada@example.com"}, "Ada"},
		{"email local part", &Principal{Email: "u1@example.com"}, "u1"},
		{"malformed email kept whole", &Principal{Email: "no-at-sign"}, "no-at-sign"},
		{"empty principal", &Principal{}, "Anonymous"},
		{"nil principal", nil, "Anonymous"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.principal.AuthorName())
		})
	}
}

func TestNewPostFieldsStampsOwnerAndTimestamps(t *testing.T) {
	p := &Principal{UID: "uid-7", Email: "writer@example.com"}

	fields := NewPostFields(p, "Title", "Content", "News", PostPublished)

	assert.Equal(t, "writer", fields["author"])
	assert.Equal(t, "uid-7", fields["authorId"])
	assert.Equal(t, fields["createdAt"], fields["updatedAt"])

	created, ok := fields["createdAt"].(string)
	require.True(t, ok)
	ts, err := time.Parse(time.RFC3339, created)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestNewPostFieldsWithoutPrincipal(t *testing.T) {
	fields := NewPostFields(nil, "Title", "Content", "", PostDraft)

	assert.Equal(t, "Anonymous", fields["author"])
	assert.Equal(t, "", fields["authorId"])
}

func TestEditPostFieldsPreservesOwnership(t *testing.T) {
	fields := EditPostFields("New title", "New content", "Tech", PostDraft)

	_, hasCreated := fields["createdAt"]
	_, hasAuthor := fields["author"]
	_, hasAuthorID := fields["authorId"]
	assert.False(t, hasCreated)
	assert.False(t, hasAuthor)
	assert.False(t, hasAuthorID)
	assert.NotEmpty(t, fields["updatedAt"])
}

func TestPostFromDoc(t *testing.T) {
	post := PostFromDoc("p1", map[string]any{
		"title":     "Hello",
		"content":   "World",
		"status":    PostPublished,
		"author":    "writer",
		"authorId":  "uid-7",
		"createdAt": "2024-03-15T10:30:00Z",
		"category":  42, // mistyped field decodes to its zero value
	})

	assert.Equal(t, "p1", post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "uid-7", post.AuthorID)
	assert.Equal(t, "", post.Category)
}

func TestValidPostStatus(t *testing.T) {
	assert.True(t, ValidPostStatus(PostDraft))
	assert.True(t, ValidPostStatus(PostPublished))
	assert.False(t, ValidPostStatus(""))
	assert.False(t, ValidPostStatus("archived"))
}
