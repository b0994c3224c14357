// Package aggregate derives dashboard views from an already scoped set of
// submissions. All functions are pure: the same input yields the same output
// and nothing is retained between calls.
package aggregate

import (
	"sort"

	"github.com/dmitrijs2005/gophportal/internal/domain"
)

// Tally counts submissions per status. Rows with a status outside the defined
// set are not counted.
func Tally(rows []domain.Submission) domain.Counts {
	var c domain.Counts
	for _, r := range rows {
		switch r.Status {
		case domain.StatusPending:
			c.Pending++
		case domain.StatusOngoing:
			c.Ongoing++
		case domain.StatusCompleted:
			c.Completed++
		case domain.StatusRejected:
			c.Rejected++
		}
	}
	return c
}

// ByTenant partitions rows by tenant label, keeping the input order inside
// each partition.
func ByTenant(rows []domain.Submission) map[string][]domain.Submission {
	out := make(map[string][]domain.Submission)
	for _, r := range rows {
		out[r.Tenant] = append(out[r.Tenant], r)
	}
	return out
}

// ForTenant returns the rows of one tenant in input order.
func ForTenant(rows []domain.Submission, tenant string) []domain.Submission {
	out := make([]domain.Submission, 0)
	for _, r := range rows {
		if r.Tenant == tenant {
			out = append(out, r)
		}
	}
	return out
}

// Tenants lists the distinct tenant labels present in rows, sorted.
func Tenants(rows []domain.Submission) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[r.Tenant] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Overview is the admin summary: global counts plus counts per tenant.
type Overview struct {
	Counts    domain.Counts            `json:"counts"`
	PerTenant map[string]domain.Counts `json:"per_tenant"`
}

// Summarize builds the admin overview of rows.
func Summarize(rows []domain.Submission) Overview {
	per := make(map[string]domain.Counts)
	for tenant, part := range ByTenant(rows) {
		per[tenant] = Tally(part)
	}
	return Overview{Counts: Tally(rows), PerTenant: per}
}
