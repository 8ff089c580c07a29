package models

// Collection names in the document store
const (
	UsersCollection = "users"
	PostsCollection = "posts"
)

// User roles
const (
	RoleAdmin     = "Admin"
	RoleUser      = "User"
	RoleModerator = "Moderator"
)

// User statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Post statuses
const (
	PostDraft     = "draft"
	PostPublished = "published"
)

// ValidRole reports whether r is one of the assignable roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser || r == RoleModerator
}

// ValidPostStatus reports whether s is a recognized post status.
func ValidPostStatus(s string) bool {
	return s == PostDraft || s == PostPublished
}
