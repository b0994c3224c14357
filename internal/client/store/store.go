// Package store is the dashboard's view of the shared submission store and
// the blob bucket. Reads are confined to the session's scope on top of the
// server's own filtering.
package store

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/gophportal/internal/domain"
)

// Backend is the remote submission store.
type Backend interface {
	ListSubmissions(ctx context.Context, tenant string, status domain.Status) ([]domain.Submission, error)
	CreateSubmission(ctx context.Context, in domain.Submission) (*domain.Submission, error)
	TransitionSubmission(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error)
}

// Filter narrows a Select. Zero fields match everything.
type Filter struct {
	Tenant string
	Status domain.Status
}

type Store struct {
	backend Backend
	scope   domain.Scope
}

func New(backend Backend, scope domain.Scope) *Store {
	return &Store{backend: backend, scope: scope}
}

func (s *Store) Scope() domain.Scope {
	return s.scope
}

// Select returns the rows in scope matching f, newest first.
func (s *Store) Select(ctx context.Context, f Filter) ([]domain.Submission, error) {
	tenant := f.Tenant
	if s.scope.Tenant != "" {
		tenant = s.scope.Tenant
	}

	rows, err := s.backend.ListSubmissions(ctx, tenant, f.Status)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Submission, 0, len(rows))
	for _, r := range rows {
		if !s.scope.Matches(r) {
			continue
		}
		if f.Tenant != "" && r.Tenant != f.Tenant {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Insert creates a submission. The server stamps owner, status and
// creation time.
func (s *Store) Insert(ctx context.Context, rec domain.Submission) (*domain.Submission, error) {
	return s.backend.CreateSubmission(ctx, rec)
}

// Update moves submission id from one status to another.
func (s *Store) Update(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error) {
	return s.backend.TransitionSubmission(ctx, id, from, to)
}
