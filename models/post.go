package models

import "time"

// Post is one document in the posts collection.
type Post struct {
	ID        string `json:"id" firestore:"-"`
	Title     string `json:"title" firestore:"title" validate:"required"`
	Content   string `json:"content" firestore:"content" validate:"required"`
	Category  string `json:"category" firestore:"category"`
	Status    string `json:"status" firestore:"status"`
	Author    string `json:"author" firestore:"author"`
	AuthorID  string `json:"authorId" firestore:"authorId"`
	CreatedAt string `json:"createdAt" firestore:"createdAt"`
	UpdatedAt string `json:"updatedAt" firestore:"updatedAt"`
}

func (p Post) RecordID() string {
	return p.ID
}

// PostFromDoc builds a Post from a raw document.
func PostFromDoc(id string, data map[string]any) Post {
	return Post{
		ID:        id,
		Title:     docString(data, "title"),
		Content:   docString(data, "content"),
		Category:  docString(data, "category"),
		Status:    docString(data, "status"),
		Author:    docString(data, "author"),
		AuthorID:  docString(data, "authorId"),
		CreatedAt: docString(data, "createdAt"),
		UpdatedAt: docString(data, "updatedAt"),
	}
}

// NewPostFields builds the field map for a create, stamping the owner
// reference and both timestamps.
func NewPostFields(p *Principal, title, content, category, status string) map[string]any {
	now := time.Now().UTC().Format(time.RFC3339)
	fields := map[string]any{
		"title":     title,
		"content":   content,
		"category":  category,
		"status":    status,
		"author":    p.AuthorName(),
		"authorId":  "",
		"createdAt": now,
		"updatedAt": now,
	}
	if p != nil {
		fields["authorId"] = p.UID
	}
	return fields
}

// EditPostFields builds the field map for an edit. Only editable fields are
// overwritten; updatedAt is refreshed, createdAt and ownership are untouched.
func EditPostFields(title, content, category, status string) map[string]any {
	return map[string]any{
		"title":     title,
		"content":   content,
		"category":  category,
		"status":    status,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}
}
