package aggregate

import (
	"math/rand"
	"testing"

	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sub(id, tenant string, s domain.Status) domain.Submission {
	return domain.Submission{ID: id, OwnerID: "owner-" + tenant, Tenant: tenant, Status: s}
}

func TestTally_Empty(t *testing.T) {
	assert.Equal(t, domain.Counts{}, Tally(nil))
}

func TestTally_Counts(t *testing.T) {
	rows := []domain.Submission{
		sub("1", "a", domain.StatusPending),
		sub("2", "a", domain.StatusPending),
		sub("3", "b", domain.StatusOngoing),
		sub("4", "b", domain.StatusCompleted),
		sub("5", "c", domain.StatusRejected),
	}
	assert.Equal(t, domain.Counts{Pending: 2, Ongoing: 1, Completed: 1, Rejected: 1}, Tally(rows))
}

// The tally is a partition: the sum equals the input size and every count
// equals the number of rows carrying that status.
func TestTally_PartitionProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	statuses := domain.Statuses()

	for i := 0; i < 200; i++ {
		n := r.Intn(50)
		rows := make([]domain.Submission, n)
		for j := range rows {
			rows[j] = sub("x", "t", statuses[r.Intn(len(statuses))])
		}

		c := Tally(rows)
		assert.Equal(t, len(rows), c.Total())
		for _, s := range statuses {
			want := 0
			for _, row := range rows {
				if row.Status == s {
					want++
				}
			}
			assert.Equal(t, want, c.Get(s))
		}
	}
}

func TestTally_Idempotent(t *testing.T) {
	rows := []domain.Submission{
		sub("1", "a", domain.StatusPending),
		sub("2", "b", domain.StatusOngoing),
	}
	assert.Equal(t, Tally(rows), Tally(rows))
	assert.Empty(t, cmp.Diff(Summarize(rows), Summarize(rows)))
}

func TestByTenant_KeepsOrder(t *testing.T) {
	rows := []domain.Submission{
		sub("3", "a", domain.StatusPending),
		sub("2", "b", domain.StatusPending),
		sub("1", "a", domain.StatusOngoing),
	}
	got := ByTenant(rows)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"3", "1"}, []string{got["a"][0].ID, got["a"][1].ID})
	assert.Equal(t, "2", got["b"][0].ID)

	only := ForTenant(rows, "a")
	assert.Len(t, only, 2)
	assert.Empty(t, ForTenant(rows, "zzz"))
}

func TestTenants_DataDriven(t *testing.T) {
	rows := []domain.Submission{
		sub("1", "ddyadhagiri", domain.StatusPending),
		sub("2", "biofactor", domain.StatusPending),
		sub("3", "acme", domain.StatusPending),
		sub("4", "biofactor", domain.StatusPending),
	}
	assert.Equal(t, []string{"acme", "biofactor", "ddyadhagiri"}, Tenants(rows))
}

func TestSummarize(t *testing.T) {
	rows := []domain.Submission{
		sub("1", "a", domain.StatusPending),
		sub("2", "a", domain.StatusCompleted),
		sub("3", "b", domain.StatusRejected),
	}
	o := Summarize(rows)
	assert.Equal(t, 3, o.Counts.Total())
	assert.Equal(t, domain.Counts{Pending: 1, Completed: 1}, o.PerTenant["a"])
	assert.Equal(t, domain.Counts{Rejected: 1}, o.PerTenant["b"])
}
