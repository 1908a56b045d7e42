package model

const (
	RoleVisitor = "visitor"
	RoleAuthor  = "author"
)

// User is session state only. It is never persisted; it lives exactly as
// long as the session that produced it.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
