package client

import (
	"context"

	"github.com/dmitrijs2005/gophportal/internal/domain"
)

// ChangeStream yields change notifications until the stream breaks.
type ChangeStream interface {
	Recv() (*domain.Change, error)
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Login(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	Register(ctx context.Context, email, password string, role domain.Role) (string, error)
	WhoAmI(ctx context.Context) (domain.Identity, error)

	ResolveTenant(ctx context.Context) (domain.Tenant, bool, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)

	ListSubmissions(ctx context.Context, tenant string, status domain.Status) ([]domain.Submission, error)
	CreateSubmission(ctx context.Context, in domain.Submission) (*domain.Submission, error)
	TransitionSubmission(ctx context.Context, id string, from, to domain.Status) (*domain.Submission, error)
	History(ctx context.Context, id string) ([]domain.StatusChange, error)

	RequestUpload(ctx context.Context, name, contentType string) (key, url string, err error)
	PublicURL(ctx context.Context, key string) (string, error)

	Watch(ctx context.Context) (ChangeStream, error)
}
