package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gophportal/internal/client/client"
	"github.com/dmitrijs2005/gophportal/internal/client/dashboard"
	"github.com/dmitrijs2005/gophportal/internal/client/intake"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", &intake.ValidationError{Field: "title"}, "title is required"},
		{"upload", &intake.UploadFailure{Name: "1_a.pdf", Err: errors.New("403")}, "attachment upload failed, your draft was kept: 403"},
		{"write", &intake.WriteFailure{Key: "k", Err: errors.New("disk")}, "could not save the submission, your draft was kept: disk"},
		{"illegal", lifecycle.ErrIllegalTransition, "that action is not available for this submission"},
		{"stale", &dashboard.TransitionFailure{ID: "s1", From: domain.StatusPending, To: domain.StatusOngoing, Err: common.ErrStaleStatus}, "submission was changed by someone else, it stays pending until the list refreshes"},
		{"store down", &dashboard.TransitionFailure{ID: "s1", Err: client.ErrUnavailable}, "status change failed, nothing was changed: server unavailable"},
		{"not found", dashboard.ErrNotFound, "no submission with that id"},
		{"forbidden", common.ErrorForbidden, "admin only"},
		{"unauthorized", client.ErrUnauthorized, "invalid credentials or expired session"},
		{"timeout", context.DeadlineExceeded, "request timed out"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, describe(tc.err))
		})
	}
}
