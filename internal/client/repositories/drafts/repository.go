// Package drafts persists unsent intake forms in the local SQLite database.
package drafts

import (
	"context"

	"github.com/dmitrijs2005/gophportal/internal/client/models"
)

// Repository stores at most one draft per owner.
type Repository interface {
	// Save inserts or replaces the owner's draft.
	Save(ctx context.Context, d models.Draft) error

	// Get returns the owner's draft or common.ErrorNotFound.
	Get(ctx context.Context, ownerID string) (*models.Draft, error)

	Delete(ctx context.Context, ownerID string) error

	// Clear drops every draft; used on sign-out.
	Clear(ctx context.Context) error
}
