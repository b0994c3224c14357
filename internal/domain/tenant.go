package domain

// Theme holds the brand colours used to render a tenant's own dashboard.
type Theme struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background" yaml:"background"`
}

// Tenant is a client organisation. Code is the label stamped on submissions.
type Tenant struct {
	Code    string   `json:"code" yaml:"code"`
	Name    string   `json:"name" yaml:"name"`
	Theme   Theme    `json:"theme" yaml:"theme"`
	Members []string `json:"members,omitempty" yaml:"members"`
}

// NoTenant is used for identities without a configured tenant mapping.
var NoTenant = Tenant{}

// IsZero reports whether t is the ungrouped tenant.
func (t Tenant) IsZero() bool {
	return t.Code == ""
}

// DisplayName returns Name, falling back to Code.
func (t Tenant) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Code
}
