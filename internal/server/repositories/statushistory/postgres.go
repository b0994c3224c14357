// Package statushistory keeps the audit trail of applied status transitions.
package statushistory

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophportal/internal/dbx"
	"github.com/dmitrijs2005/gophportal/internal/domain"
)

type Repository interface {
	Append(ctx context.Context, c domain.StatusChange) error
	List(ctx context.Context, submissionID string) ([]domain.StatusChange, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, c domain.StatusChange) error {
	query := `
		INSERT INTO submission_status_history (submission_id, from_status, to_status, changed_by)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, c.SubmissionID, string(c.From), string(c.To), c.ChangedBy); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns the changes of one submission, oldest first.
func (r *PostgresRepository) List(ctx context.Context, submissionID string) ([]domain.StatusChange, error) {
	query := `
		SELECT submission_id, from_status, to_status, changed_by, changed_at
		FROM submission_status_history
		WHERE submission_id = $1
		ORDER BY changed_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, submissionID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]domain.StatusChange, 0)
	for rows.Next() {
		var c domain.StatusChange
		var from, to string
		if err := rows.Scan(&c.SubmissionID, &from, &to, &c.ChangedBy, &c.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		c.From, c.To = domain.Status(from), domain.Status(to)
		out = append(out, c)
	}
	return out, rows.Err()
}
