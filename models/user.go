package models

// User is one document in the users collection. Timestamps are kept as
// ISO-8601 strings, written by the client at mutation time.
type User struct {
	ID            string `json:"id" firestore:"-"`
	Email         string `json:"email" firestore:"email"`
	DisplayName   string `json:"displayName" firestore:"displayName"`
	Role          string `json:"role" firestore:"role"`
	Status        string `json:"status" firestore:"status"`
	CreatedAt     string `json:"createdAt" firestore:"createdAt"`
	LastLogin     string `json:"lastLogin" firestore:"lastLogin"`
	EmailVerified bool   `json:"emailVerified" firestore:"emailVerified"`
}

func (u User) RecordID() string {
	return u.ID
}

// UserFromDoc builds a User from a raw document. The store is schema-less;
// missing or mistyped fields decode to their zero values.
func UserFromDoc(id string, data map[string]any) User {
	return User{
		ID:            id,
		Email:         docString(data, "email"),
		DisplayName:   docString(data, "displayName"),
		Role:          docString(data, "role"),
		Status:        docString(data, "status"),
		CreatedAt:     docString(data, "createdAt"),
		LastLogin:     docString(data, "lastLogin"),
		EmailVerified: docBool(data, "emailVerified"),
	}
}

// ApplyPatch returns a copy of u with single-field updates folded in. Only
// the locally patchable fields are recognized.
func (u User) ApplyPatch(fields map[string]any) User {
	if v, ok := fields["role"].(string); ok {
		u.Role = v
	}
	if v, ok := fields["status"].(string); ok {
		u.Status = v
	}
	return u
}

func docString(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func docBool(data map[string]any, key string) bool {
	b, _ := data[key].(bool)
	return b
}
