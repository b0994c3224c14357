package users

import "github.com/dmitrijs2005/gophportal/internal/domain"

// domainRole maps the stored role, treating anything unknown as a client.
func domainRole(s string) domain.Role {
	r := domain.Role(s)
	if !r.Valid() {
		return domain.RoleClient
	}
	return r
}
