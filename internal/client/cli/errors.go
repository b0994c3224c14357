package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophportal/internal/client/client"
	"github.com/dmitrijs2005/gophportal/internal/client/dashboard"
	"github.com/dmitrijs2005/gophportal/internal/client/feed"
	"github.com/dmitrijs2005/gophportal/internal/client/intake"
	"github.com/dmitrijs2005/gophportal/internal/client/session"
	"github.com/dmitrijs2005/gophportal/internal/common"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
)

var errorStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

// describe turns a command error into the message shown to the user.
func describe(err error) string {
	var (
		ve *intake.ValidationError
		uf *intake.UploadFailure
		wf *intake.WriteFailure
		tf *dashboard.TransitionFailure
		sf *feed.SubscriptionFailure
	)

	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &uf):
		return "attachment upload failed, your draft was kept: " + uf.Err.Error()
	case errors.As(err, &wf):
		return "could not save the submission, your draft was kept: " + wf.Err.Error()
	case errors.Is(err, lifecycle.ErrIllegalTransition):
		return "that action is not available for this submission"
	case errors.Is(err, lifecycle.ErrUnknownAction):
		return "unknown action"
	case errors.As(err, &tf) && errors.Is(tf.Err, common.ErrStaleStatus):
		return "submission was changed by someone else, it stays " + string(tf.From) + " until the list refreshes"
	case errors.As(err, &tf):
		return "status change failed, nothing was changed: " + describe(tf.Err)
	case errors.As(err, &sf):
		return "live updates unavailable"
	case errors.Is(err, dashboard.ErrNotFound), errors.Is(err, common.ErrorNotFound):
		return "no submission with that id"
	case errors.Is(err, dashboard.ErrNotAdmin), errors.Is(err, errAdminOnly), errors.Is(err, common.ErrorForbidden):
		return "admin only"
	case errors.Is(err, intake.ErrNotClient):
		return errClientOnly.Error()
	case errors.Is(err, intake.ErrSessionEnded), errors.Is(err, session.ErrNoIdentity):
		return "not signed in"
	case errors.Is(err, client.ErrUnauthorized):
		return "invalid credentials or expired session"
	case errors.Is(err, client.ErrAlreadyExists):
		return "account already exists"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	}
	return err.Error()
}

func formatError(err error) string {
	return errorStyle.Render("✘ " + describe(err))
}
