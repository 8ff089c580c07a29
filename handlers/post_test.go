package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/models"
	"adminconsole/store"
)

func TestGetPostsReturnsNewestFirst(t *testing.T) {
	ms := newMemoryStore()
	ms.seed(models.PostsCollection, "p-old", map[string]any{
		"title": "Older", "content": "x", "createdAt": "2024-01-01T00:00:00Z",
	})
	ms.seed(models.PostsCollection, "p-new", map[string]any{
		"title": "Newer", "content": "y", "createdAt": "2024-06-01T00:00:00Z",
	})
	api := newTestAPI(ms)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	api.GetPosts(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var posts []models.Post
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "p-new", posts[0].ID)
	assert.Equal(t, "p-old", posts[1].ID)
}

func TestGetPostsStoreFailure(t *testing.T) {
	ms := newMemoryStore()
	ms.failWith = store.ErrUnavailable
	api := newTestAPI(ms)

	rr := httptest.NewRecorder()
	api.GetPosts(rr, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAddPostStampsAuthorFromPrincipal(t *testing.T) {
	ms := newMemoryStore()
	api := newTestAPI(ms)

	body, _ := json.Marshal(PostPayload{Title: "Launch notes", Content: "We shipped."})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req = asPrincipal(req, &models.Principal{UID: "uid-9", Email: "writer@example.com"})

	rr := httptest.NewRecorder()
	api.AddPost(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.Post
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, "Launch notes", created.Title)
	assert.Equal(t, "uid-9", created.AuthorID)
	assert.Equal(t, "writer", created.Author)
	assert.Equal(t, models.PostDraft, created.Status, "status defaults to draft")
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, 1, ms.createCalls)
}

func TestAddPostRejectsMissingFields(t *testing.T) {
	ms := newMemoryStore()
	api := newTestAPI(ms)

	body, _ := json.Marshal(PostPayload{Title: "No content"})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req = asPrincipal(req, &models.Principal{UID: "uid-9"})

	rr := httptest.NewRecorder()
	api.AddPost(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 0, ms.createCalls)
}

func TestAddPostRejectsBadStatus(t *testing.T) {
	ms := newMemoryStore()
	api := newTestAPI(ms)

	body, _ := json.Marshal(PostPayload{Title: "t", Content: "c", Status: "archived"})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req = asPrincipal(req, &models.Principal{UID: "uid-9"})

	rr := httptest.NewRecorder()
	api.AddPost(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdatePost(t *testing.T) {
	ms := newMemoryStore()
	ms.seed(models.PostsCollection, "p1", map[string]any{
		"title": "Before", "content": "old", "createdAt": "2024-01-01T00:00:00Z",
	})
	api := newTestAPI(ms)

	body, _ := json.Marshal(PostPayload{Title: "After", Content: "new", Status: models.PostPublished})
	req := httptest.NewRequest(http.MethodPut, "/api/posts/p1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "p1"})

	rr := httptest.NewRecorder()
	api.UpdatePost(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, ms.updateCalls)

	post, ok := api.Posts.Find("p1")
	require.True(t, ok)
	assert.Equal(t, "After", post.Title)
	assert.Equal(t, models.PostPublished, post.Status)
	assert.NotEmpty(t, post.UpdatedAt)
}

func TestUpdatePostNotFound(t *testing.T) {
	ms := newMemoryStore()
	api := newTestAPI(ms)

	body, _ := json.Marshal(PostPayload{Title: "t", Content: "c"})
	req := httptest.NewRequest(http.MethodPut, "/api/posts/missing", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})

	rr := httptest.NewRecorder()
	api.UpdatePost(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePost(t *testing.T) {
	ms := newMemoryStore()
	ms.seed(models.PostsCollection, "p1", map[string]any{
		"title": "t", "content": "c", "createdAt": "2024-01-01T00:00:00Z",
	})
	api := newTestAPI(ms)
	require.NoError(t, api.Posts.Load(httptest.NewRequest(http.MethodGet, "/", nil).Context()))

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/p1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "p1"})

	rr := httptest.NewRecorder()
	api.DeletePost(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	_, ok := api.Posts.Find("p1")
	assert.False(t, ok, "deleted post leaves the cached list without a re-fetch")
	assert.Equal(t, 1, ms.listCalls)
}

func TestHealthCheck(t *testing.T) {
	api := newTestAPI(newMemoryStore())

	rr := httptest.NewRecorder()
	api.HealthCheck(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
