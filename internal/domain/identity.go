package domain

// Role selects which dashboard an identity gets.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

// Identity is the authenticated user as reported by the auth service.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the identity may perform status transitions.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
