// Package intake turns a client's form into a pending submission: the
// attachment is uploaded, its public link resolved, and the record inserted.
package intake

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophportal/internal/client/models"
	"github.com/dmitrijs2005/gophportal/internal/client/session"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
	"github.com/dmitrijs2005/gophportal/internal/logging"
)

var (
	ErrSessionEnded = errors.New("session ended")
	ErrNotClient    = errors.New("only client sessions can submit")
)

// Blobs stores attachments.
type Blobs interface {
	Upload(ctx context.Context, name string, data []byte) (key string, err error)
	GetPublicURL(ctx context.Context, key string) (string, error)
}

// Inserter writes new submissions.
type Inserter interface {
	Insert(ctx context.Context, rec domain.Submission) (*domain.Submission, error)
}

// Drafts keeps unsent forms.
type Drafts interface {
	Save(ctx context.Context, d models.Draft) error
	Get(ctx context.Context, ownerID string) (*models.Draft, error)
	Delete(ctx context.Context, ownerID string) error
}

// Form is the intake form. AttachmentPath is only remembered for drafts;
// the bytes in Attachment are what gets uploaded.
type Form struct {
	Title          string
	Description    string
	AttachmentName string
	AttachmentPath string
	Attachment     []byte
}

func (f *Form) reset() {
	*f = Form{}
}

// ValidationError is returned before any network call when a required field
// is missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

// UploadFailure means the attachment never reached the bucket, or its public
// link could not be resolved. No record was written.
type UploadFailure struct {
	Name string
	Err  error
}

func (e *UploadFailure) Error() string {
	return fmt.Sprintf("upload of %s failed: %v", e.Name, e.Err)
}

func (e *UploadFailure) Unwrap() error {
	return e.Err
}

// WriteFailure means the attachment was uploaded but the record insert
// failed; Key names the orphaned object.
type WriteFailure struct {
	Key string
	Err error
}

func (e *WriteFailure) Error() string {
	return fmt.Sprintf("saving submission failed: %v", e.Err)
}

func (e *WriteFailure) Unwrap() error {
	return e.Err
}

type Pipeline struct {
	blobs  Blobs
	store  Inserter
	drafts Drafts
	logger logging.Logger
	now    func() time.Time
}

// New builds a pipeline. drafts may be nil.
func New(blobs Blobs, store Inserter, drafts Drafts, logger logging.Logger) *Pipeline {
	return &Pipeline{blobs: blobs, store: store, drafts: drafts, logger: logger, now: time.Now}
}

// BlobName is the stored object name: upload time in unix milliseconds, an
// underscore and the base of the original file name.
func BlobName(at time.Time, name string) string {
	return fmt.Sprintf("%d_%s", at.UnixMilli(), filepath.Base(name))
}

// Validate checks the form without side effects.
func Validate(f *Form) error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title"}
	}
	if f.AttachmentName == "" || len(f.Attachment) == 0 {
		return &ValidationError{Field: "attachment"}
	}
	return nil
}

// Submit validates form, uploads the attachment, resolves its link and
// inserts a pending submission stamped with the session's owner and tenant.
// On success the form is reset and the owner's draft dropped; on failure the
// form is left untouched and saved as a draft.
func (p *Pipeline) Submit(ctx context.Context, s *session.Session, form *Form) (*domain.Submission, error) {
	if s == nil || s.Ended() {
		return nil, ErrSessionEnded
	}
	if s.Identity.IsAdmin() {
		return nil, ErrNotClient
	}

	sub, err := p.submit(ctx, s, form)
	if err != nil {
		p.saveDraft(ctx, s, form)
		return nil, err
	}

	form.reset()
	if p.drafts != nil {
		if err := p.drafts.Delete(ctx, s.Identity.UserID); err != nil {
			p.logger.Warn(ctx, "dropping draft failed", "err", err)
		}
	}
	return sub, nil
}

func (p *Pipeline) submit(ctx context.Context, s *session.Session, form *Form) (*domain.Submission, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}

	name := BlobName(p.now(), form.AttachmentName)

	key, err := p.blobs.Upload(ctx, name, form.Attachment)
	if err != nil {
		return nil, &UploadFailure{Name: name, Err: err}
	}

	url, err := p.blobs.GetPublicURL(ctx, key)
	if err != nil {
		p.logger.Warn(ctx, "uploaded attachment has no public link", "key", key, "err", err)
		return nil, &UploadFailure{Name: name, Err: err}
	}

	rec := domain.Submission{
		OwnerID:       s.Identity.UserID,
		Tenant:        s.Tenant.Code,
		Title:         strings.TrimSpace(form.Title),
		Description:   form.Description,
		AttachmentRef: url,
		Status:        lifecycle.Initial,
	}
	sub, err := p.store.Insert(ctx, rec)
	if err != nil {
		p.logger.Warn(ctx, "attachment orphaned by failed insert", "key", key, "err", err)
		return nil, &WriteFailure{Key: key, Err: err}
	}

	p.logger.Info(ctx, "submission created", "id", sub.ID, "tenant", sub.Tenant)
	return sub, nil
}

func (p *Pipeline) saveDraft(ctx context.Context, s *session.Session, form *Form) {
	if p.drafts == nil {
		return
	}
	d := models.Draft{
		OwnerID:        s.Identity.UserID,
		Title:          form.Title,
		Description:    form.Description,
		AttachmentPath: form.AttachmentPath,
	}
	if d.Empty() {
		return
	}
	if err := p.drafts.Save(ctx, d); err != nil {
		p.logger.Warn(ctx, "saving draft failed", "err", err)
	}
}

// Restore fills an empty form from the session owner's saved draft. It
// reports whether a draft was found.
func (p *Pipeline) Restore(ctx context.Context, s *session.Session, form *Form) (bool, error) {
	if p.drafts == nil {
		return false, nil
	}
	d, err := p.drafts.Get(ctx, s.Identity.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	form.Title = d.Title
	form.Description = d.Description
	form.AttachmentPath = d.AttachmentPath
	if d.AttachmentPath != "" {
		form.AttachmentName = filepath.Base(d.AttachmentPath)
	}
	return true, nil
}
