package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/client/models"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, d models.Draft) error {
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now().UTC()
	}

	query := `INSERT INTO drafts (owner_id, title, description, attachment_path, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			attachment_path = excluded.attachment_path,
			updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query, d.OwnerID, d.Title, d.Description, d.AttachmentPath, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, ownerID string) (*models.Draft, error) {
	query := `SELECT owner_id, title, description, attachment_path, updated_at FROM drafts WHERE owner_id = ?`

	d := &models.Draft{}
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&d.OwnerID, &d.Title, &d.Description, &d.AttachmentPath, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return d, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, ownerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE owner_id = ?`, ownerID); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM drafts`); err != nil {
		return fmt.Errorf("failed to clear drafts: %w", err)
	}
	return nil
}
