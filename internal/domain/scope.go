package domain

// Scope restricts which submissions a session may read or be notified about.
// Empty fields do not constrain; the zero Scope is unscoped (admin).
type Scope struct {
	OwnerID string `json:"client_id,omitempty"`
	Tenant  string `json:"client_name,omitempty"`
}

// Unscoped reports whether the scope lets everything through.
func (s Scope) Unscoped() bool {
	return s.OwnerID == "" && s.Tenant == ""
}

// Matches reports whether sub falls inside the scope.
func (s Scope) Matches(sub Submission) bool {
	return s.match(sub.OwnerID, sub.Tenant)
}

// MatchesChange reports whether a change notification concerns the scope.
// Resync notifications carry no row and always match.
func (s Scope) MatchesChange(c Change) bool {
	if c.Op == ChangeResync {
		return true
	}
	return s.match(c.OwnerID, c.Tenant)
}

func (s Scope) match(ownerID, tenant string) bool {
	if s.OwnerID != "" && s.OwnerID != ownerID {
		return false
	}
	if s.Tenant != "" && s.Tenant != tenant {
		return false
	}
	return true
}

// ChangeOp is the kind of row-level mutation observed on the submissions table.
type ChangeOp string

const (
	ChangeInsert ChangeOp = "INSERT"
	ChangeUpdate ChangeOp = "UPDATE"
	ChangeDelete ChangeOp = "DELETE"
	// ChangeResync is emitted when notifications may have been lost
	// (e.g. after a reconnect); receivers must re-fetch.
	ChangeResync ChangeOp = "RESYNC"
)

// Change is a row-level notification on the submissions table. Receivers
// treat it purely as a trigger to re-fetch their scoped data.
type Change struct {
	Op      ChangeOp `json:"op"`
	ID      string   `json:"id,omitempty"`
	OwnerID string   `json:"client_id,omitempty"`
	Tenant  string   `json:"client_name,omitempty"`
}
