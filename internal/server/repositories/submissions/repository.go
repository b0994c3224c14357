// Package submissions is the record store for submissions.
package submissions

import (
	"context"

	"github.com/dmitrijs2005/gophportal/internal/domain"
)

// Filter restricts Select. Empty fields do not constrain.
type Filter struct {
	OwnerID string
	Tenant  string
	Status  domain.Status
}

// Repository persists submissions. Rows come back most recent first.
type Repository interface {
	Select(ctx context.Context, f Filter) ([]domain.Submission, error)
	GetByID(ctx context.Context, id string) (*domain.Submission, error)

	// Insert stores s as pending and fills in ID and CreatedAt.
	Insert(ctx context.Context, s *domain.Submission) (*domain.Submission, error)

	// UpdateStatus moves the row from -> to. It returns common.ErrorNotFound
	// for an unknown id and common.ErrStaleStatus when the row is no longer
	// in status from.
	UpdateStatus(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error)
}
