package submissions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/dbx"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
)

const columns = `id, client_id, client_name, title, description, file_url, status, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (domain.Submission, error) {
	var s domain.Submission
	var status string
	err := row.Scan(&s.ID, &s.OwnerID, &s.Tenant, &s.Title, &s.Description, &s.AttachmentRef, &status, &s.CreatedAt)
	if err != nil {
		return s, err
	}
	s.Status = domain.Status(status)
	return s, nil
}

func (f Filter) where() (string, []any) {
	var conds []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if f.OwnerID != "" {
		add("client_id", f.OwnerID)
	}
	if f.Tenant != "" {
		add("client_name", f.Tenant)
	}
	if f.Status != "" {
		add("status", string(f.Status))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) Select(ctx context.Context, f Filter) ([]domain.Submission, error) {
	where, args := f.where()
	query := `SELECT ` + columns + ` FROM submissions` + where + ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select submissions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Submission, 0)
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `SELECT ` + columns + ` FROM submissions WHERE id = $1`
	s, err := scan(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	query := `
		INSERT INTO submissions (client_id, client_name, title, description, file_url, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	s.Status = lifecycle.Initial
	err := r.db.QueryRowContext(ctx, query,
		s.OwnerID, s.Tenant, s.Title, s.Description, s.AttachmentRef, string(s.Status)).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error) {
	query := `
		UPDATE submissions SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING ` + columns

	s, err := scan(r.db.QueryRowContext(ctx, query, id, string(from), string(to)))
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db error: %w", err)
	}

	// Nothing matched: tell a missing row apart from one that moved on.
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, common.ErrStaleStatus
}
