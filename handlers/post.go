package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"adminconsole/middleware"
	"adminconsole/models"
	"adminconsole/store"
)

// PostPayload is the request body for creating or editing a post.
type PostPayload struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

func (h *API) GetPosts(w http.ResponseWriter, r *http.Request) {
	if err := h.Posts.Load(r.Context()); err != nil {
		log.Printf("Error fetching posts: %v", err)
		http.Error(w, "Failed to load posts", http.StatusInternalServerError)
		return
	}

	posts, _, _ := h.Posts.Snapshot()
	writeJSON(w, posts)
}

func (h *API) AddPost(w http.ResponseWriter, r *http.Request) {
	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "title and content are required", http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		payload.Status = models.PostDraft
	}
	if !models.ValidPostStatus(payload.Status) {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	principal := middleware.PrincipalFromContext(r)
	fields := models.NewPostFields(principal, payload.Title, payload.Content, payload.Category, payload.Status)

	id, err := h.Posts.SubmitCreate(r.Context(), fields)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.PostFromDoc(id, fields))
}

func (h *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "title and content are required", http.StatusBadRequest)
		return
	}
	if payload.Status == "" {
		payload.Status = models.PostDraft
	}

	err := h.Posts.SubmitEdit(r.Context(), id, models.EditPostFields(payload.Title, payload.Content, payload.Category, payload.Status))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		log.Printf("Error updating post %s: %v", id, err)
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if err := h.Posts.Delete(r.Context(), id); err != nil {
		log.Printf("Error deleting post %s: %v", id, err)
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
