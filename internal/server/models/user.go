package models

import (
	"time"

	"github.com/dmitrijs2005/gophportal/internal/domain"
)

// User is a portal account. PasswordHash holds a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	Role         domain.Role
	CreatedAt    time.Time
}

// Identity returns the public view of u.
func (u *User) Identity() domain.Identity {
	return domain.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}
