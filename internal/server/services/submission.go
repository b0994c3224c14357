package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/aggregate"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/dbx"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
	"github.com/dmitrijs2005/gophportal/internal/logging"
	"github.com/dmitrijs2005/gophportal/internal/server/blob"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophportal/internal/server/repositories/submissions"
	"github.com/google/uuid"
)

// BlobStore presigns attachment uploads and reads.
type BlobStore interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	PublicURL(ctx context.Context, key string) (string, error)
}

// TenantDirectory maps an account email to its tenant.
type TenantDirectory interface {
	Lookup(email string) (domain.Tenant, bool)
}

// NewSubmission is what a client supplies when filing a submission.
type NewSubmission struct {
	Tenant        string
	Title         string
	Description   string
	AttachmentRef string
}

// SubmissionService applies tenant isolation and the lifecycle rules on top
// of the submission store.
type SubmissionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       BlobStore
	tenants     TenantDirectory
	logger      logging.Logger
}

func NewSubmissionService(db *sql.DB, m repomanager.RepositoryManager, blobs BlobStore, tenants TenantDirectory, logger logging.Logger) *SubmissionService {
	return &SubmissionService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		tenants:     tenants,
		logger:      logger.With("module", "submissions"),
	}
}

// ScopeFor returns the rows id may see: its own for a client, all for an admin.
func ScopeFor(id domain.Identity) domain.Scope {
	if id.IsAdmin() {
		return domain.Scope{}
	}
	return domain.Scope{OwnerID: id.UserID}
}

// ResolveTenant returns the tenant id belongs to, or domain.NoTenant.
func (s *SubmissionService) ResolveTenant(id domain.Identity) (domain.Tenant, bool) {
	t, ok := s.tenants.Lookup(id.Email)
	if !ok {
		return domain.NoTenant, false
	}
	return t, true
}

// List returns id's visible submissions narrowed by tenant and status,
// most recent first.
func (s *SubmissionService) List(ctx context.Context, id domain.Identity, tenant string, status domain.Status) ([]domain.Submission, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: %w", common.ErrorValidation, domain.ErrUnknownStatus)
	}
	scope := ScopeFor(id)
	f := submissions.Filter{OwnerID: scope.OwnerID, Tenant: tenant, Status: status}

	rows, err := s.repomanager.Submissions(s.db).Select(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error listing submissions: %w", err)
	}
	return rows, nil
}

// Create files a pending submission owned by id. The row is stamped with the
// tenant the directory currently assigns to id; a different label from the
// client is logged and ignored.
func (s *SubmissionService) Create(ctx context.Context, id domain.Identity, in NewSubmission) (*domain.Submission, error) {
	if id.IsAdmin() {
		return nil, fmt.Errorf("%w: admins do not file submissions", common.ErrorForbidden)
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if strings.TrimSpace(in.AttachmentRef) == "" {
		return nil, fmt.Errorf("%w: attachment is required", common.ErrorValidation)
	}

	tenant, _ := s.ResolveTenant(id)
	if in.Tenant != tenant.Code {
		s.logger.Warn(ctx, "client tenant differs from directory", "email", id.Email, "sent", in.Tenant, "tenant", tenant.Code)
	}

	sub := &domain.Submission{
		OwnerID:       id.UserID,
		Tenant:        tenant.Code,
		Title:         title,
		Description:   in.Description,
		AttachmentRef: in.AttachmentRef,
	}
	out, err := s.repomanager.Submissions(s.db).Insert(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("error creating submission: %w", err)
	}
	s.logger.Info(ctx, "submission created", "id", out.ID, "owner", out.OwnerID, "tenant", out.Tenant)
	return out, nil
}

// Transition moves submission subID from -> to on behalf of an admin and
// records the change in the status history. The update only applies while
// the row is still in status from.
func (s *SubmissionService) Transition(ctx context.Context, id domain.Identity, subID string, from, to domain.Status) (*domain.Submission, error) {
	if !id.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins change status", common.ErrorForbidden)
	}
	if err := lifecycle.Validate(from, to); err != nil {
		return nil, err
	}
	if err := checkID(subID); err != nil {
		return nil, err
	}

	out, err := dbx.InTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*domain.Submission, error) {
		sub, err := s.repomanager.Submissions(tx).UpdateStatus(ctx, subID, from, to)
		if err != nil {
			return nil, err
		}
		change := domain.StatusChange{SubmissionID: subID, From: from, To: to, ChangedBy: id.UserID, ChangedAt: time.Now()}
		if err := s.repomanager.StatusHistory(tx).Append(ctx, change); err != nil {
			return nil, fmt.Errorf("error recording status change: %w", err)
		}
		return sub, nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrStaleStatus) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating status: %w", err)
	}

	s.logger.Info(ctx, "submission status changed", "id", subID, "from", from, "to", to, "by", id.UserID)
	return out, nil
}

// History returns the status changes of subID, oldest first. Clients only
// see their own submissions.
func (s *SubmissionService) History(ctx context.Context, id domain.Identity, subID string) ([]domain.StatusChange, error) {
	if err := checkID(subID); err != nil {
		return nil, err
	}
	sub, err := s.repomanager.Submissions(s.db).GetByID(ctx, subID)
	if err != nil {
		return nil, err
	}
	if !ScopeFor(id).Matches(*sub) {
		return nil, common.ErrorNotFound
	}
	changes, err := s.repomanager.StatusHistory(s.db).List(ctx, subID)
	if err != nil {
		return nil, fmt.Errorf("error reading history: %w", err)
	}
	return changes, nil
}

// checkID rejects ids the store could never hold so they read as missing
// rows instead of driver errors.
func checkID(subID string) error {
	if _, err := uuid.Parse(subID); err != nil {
		return fmt.Errorf("%w: submission %q", common.ErrorNotFound, subID)
	}
	return nil
}

// RequestUpload reserves an object key under id's prefix and presigns a PUT
// for it.
func (s *SubmissionService) RequestUpload(ctx context.Context, id domain.Identity, name, contentType string) (key, url string, err error) {
	key, err = blob.ObjectKey(id.UserID, name)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", common.ErrorValidation, err)
	}
	url, err = s.blobs.PresignUpload(ctx, key, contentType)
	if err != nil {
		return "", "", fmt.Errorf("error presigning upload: %w", err)
	}
	return key, url, nil
}

// PublicURL returns a readable link for key. Clients may only resolve keys
// under their own prefix.
func (s *SubmissionService) PublicURL(ctx context.Context, id domain.Identity, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty key", common.ErrorValidation)
	}
	if !id.IsAdmin() && !strings.HasPrefix(key, id.UserID+"/") {
		return "", common.ErrorForbidden
	}
	url, err := s.blobs.PublicURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("error building public url: %w", err)
	}
	return url, nil
}

// Overview summarises every submission for the admin overview.
func (s *SubmissionService) Overview(ctx context.Context) (aggregate.Overview, error) {
	rows, err := s.repomanager.Submissions(s.db).Select(ctx, submissions.Filter{})
	if err != nil {
		return aggregate.Overview{}, fmt.Errorf("error listing submissions: %w", err)
	}
	return aggregate.Summarize(rows), nil
}
