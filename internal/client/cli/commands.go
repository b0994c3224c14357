package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/dmitrijs2005/gophportal/internal/client/dashboard"
	"github.com/dmitrijs2005/gophportal/internal/client/intake"
	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/dmitrijs2005/gophportal/internal/filex"
	"github.com/dmitrijs2005/gophportal/internal/lifecycle"
)

// Test seams.
var (
	readFile       = os.ReadFile
	writeClipboard = clipboard.WriteAll
)

const timeLayout = "2006-01-02 15:04"

func (a *App) requireSession() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

func (a *App) requireAdmin() error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if a.admin == nil {
		return errAdminOnly
	}
	return nil
}

func (a *App) scopeTitle(v dashboard.View) string {
	switch {
	case a.admin == nil && !a.sess.Tenant.IsZero():
		return a.sess.Tenant.DisplayName()
	case a.admin == nil:
		return "My submissions"
	case v.Tenant != "":
		return "Tenant " + v.Tenant
	default:
		return "All tenants"
	}
}

// Overview prints the status counts; admins also get a per-tenant table.
func (a *App) Overview(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	v := a.dash.Snapshot()

	a.println(a.theme.Title.Render(a.scopeTitle(v)))
	a.println(a.theme.countsLine(v.Counts))
	for _, s := range domain.Statuses() {
		a.println(fmt.Sprintf("%-10s %s", label(s), a.theme.Status[s].Render(bar(v.Counts.Get(s), 40))))
	}

	if a.admin != nil && v.Tenant == "" && len(v.Tenants) > 0 {
		rows := make([][]string, 0, len(v.Tenants))
		for _, t := range v.Tenants {
			c := v.Overview.PerTenant[t]
			name := t
			if name == "" {
				name = "(none)"
			}
			rows = append(rows, []string{
				name,
				strconv.Itoa(c.Pending),
				strconv.Itoa(c.Ongoing),
				strconv.Itoa(c.Completed),
				strconv.Itoa(c.Rejected),
				strconv.Itoa(c.Total()),
			})
		}
		a.println("")
		a.println(a.theme.table([]string{"TENANT", "PENDING", "ONGOING", "COMPLETED", "REJECTED", "TOTAL"}, rows))
	}

	if !v.Live {
		a.println(a.theme.warning("live updates paused"))
	}
	return nil
}

// List prints the visible submissions, newest first.
func (a *App) List(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	v := a.dash.Snapshot()

	if len(v.Rows) == 0 {
		a.println(a.theme.Muted.Render("no submissions"))
		return nil
	}

	var (
		headers []string
		rows    [][]string
	)
	if a.admin != nil {
		// the actions column is left out once nothing listed can move
		open := slices.ContainsFunc(v.Rows, func(r domain.Submission) bool { return !lifecycle.IsTerminal(r.Status) })
		headers = []string{"ID", "TITLE", "TENANT", "STATUS", "CREATED"}
		if open {
			headers = append(headers, "ACTIONS")
		}
		for _, r := range v.Rows {
			row := []string{r.ID, r.Title, r.Tenant, a.theme.status(r.Status), r.CreatedAt.Local().Format(timeLayout)}
			if open {
				row = append(row, actionList(lifecycle.Actions(r.Status)))
			}
			rows = append(rows, row)
		}
	} else {
		headers = []string{"ID", "TITLE", "STATUS", "CREATED", "FILE"}
		for _, r := range v.Rows {
			file := ""
			if r.AttachmentRef != "" {
				file = "yes"
			}
			rows = append(rows, []string{
				r.ID, r.Title, a.theme.status(r.Status), r.CreatedAt.Local().Format(timeLayout), file,
			})
		}
	}

	a.println(a.theme.table(headers, rows))
	return nil
}

func actionList(actions []lifecycle.Action) string {
	parts := make([]string, len(actions))
	for i, act := range actions {
		parts[i] = string(act)
	}
	return strings.Join(parts, ", ")
}

// New walks the client through the intake form. A saved draft is offered
// as the starting values.
func (a *App) New(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if a.intake == nil {
		return errClientOnly
	}

	form := &intake.Form{}
	restored, err := a.intake.Restore(ctx, a.sess, form)
	if err != nil {
		a.logger.Warn(ctx, "reading draft failed", "err", err)
	}
	if restored {
		a.println(a.theme.Muted.Render("Restored your unsent draft; press Enter to keep a value."))
	}

	title, err := getSimpleText(a.reader, withDefault("Title", form.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		form.Title = title
	}

	desc, err := GetMultiline(a.reader, withDefault("Description", form.Description), a.out)
	if err != nil {
		return err
	}
	if desc != "" {
		form.Description = desc
	}

	path, err := getSimpleText(a.reader, withDefault("Attachment file", form.AttachmentPath), a.out)
	if err != nil {
		return err
	}
	if path != "" {
		form.AttachmentPath = path
	}
	if form.AttachmentPath != "" {
		data, err := readFile(form.AttachmentPath)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		form.Attachment = data
		form.AttachmentName = filepath.Base(form.AttachmentPath)
	}

	rec, err := a.intake.Submit(ctx, a.sess, form)
	if err != nil {
		return err
	}
	a.println(a.theme.success(fmt.Sprintf("Submitted %q (%s), status %s", rec.Title, rec.ID, a.theme.status(rec.Status))))
	return nil
}

func withDefault(prompt, current string) string {
	if current == "" {
		return prompt
	}
	if i := strings.IndexByte(current, '\n'); i >= 0 {
		current = current[:i] + "…"
	}
	return fmt.Sprintf("%s [%s]", prompt, current)
}

// Tenants lists the tenant directory with per-tenant totals. Clients see
// their own tenant only.
func (a *App) Tenants(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if a.admin == nil {
		if a.sess.Tenant.IsZero() {
			a.println(a.theme.Muted.Render("no tenant"))
			return nil
		}
		a.println(a.theme.table([]string{"CODE", "NAME"}, [][]string{{a.sess.Tenant.Code, a.sess.Tenant.DisplayName()}}))
		return nil
	}

	tenants, err := a.api.ListTenants(ctx)
	if err != nil {
		return err
	}
	v := a.dash.Snapshot()

	rows := make([][]string, 0, len(tenants))
	for _, t := range tenants {
		c := v.Overview.PerTenant[t.Code]
		rows = append(rows, []string{t.Code, t.DisplayName(), strconv.Itoa(len(t.Members)), strconv.Itoa(c.Total())})
	}
	a.println(a.theme.table([]string{"CODE", "NAME", "MEMBERS", "SUBMISSIONS"}, rows))
	return nil
}

// Open drills the admin view into one tenant.
func (a *App) Open(ctx context.Context, tenant string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	a.admin.SelectTenant(tenant)
	return a.List(ctx)
}

// CloseTenant returns the admin view to all tenants.
func (a *App) CloseTenant(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	a.admin.SelectTenant("")
	a.println(a.theme.Muted.Render("showing all tenants"))
	return nil
}

// Transition applies an admin action to submission id.
func (a *App) Transition(ctx context.Context, action lifecycle.Action, id string) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	rec, err := a.admin.ApplyAction(ctx, id, action)
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("%s is now %s", rec.ID, a.theme.status(rec.Status))
	if next := lifecycle.Next(rec.Status); len(next) > 0 {
		names := make([]string, len(next))
		for i, st := range next {
			names[i] = string(st)
		}
		msg += " (next: " + strings.Join(names, ", ") + ")"
	}
	a.println(a.theme.success(msg))
	return nil
}

// History prints the status changes recorded for submission id.
func (a *App) History(ctx context.Context, id string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	changes, err := a.api.History(ctx, id)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		a.println(a.theme.Muted.Render("no status changes yet"))
		return nil
	}

	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []string{c.ChangedAt.Local().Format(timeLayout), a.theme.status(c.From), a.theme.status(c.To), c.ChangedBy})
	}
	a.println(a.theme.table([]string{"AT", "FROM", "TO", "BY"}, rows))
	return nil
}

// Chart exports the current counts as an HTML pie chart into the chart
// directory.
func (a *App) Chart(ctx context.Context, name string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	v := a.dash.Snapshot()
	if name == "" {
		name = chartName(v.Tenant)
	}

	data, err := statusPie(a.scopeTitle(v), v.Counts)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	path, err := filex.WriteFile(a.config.ChartDir, filepath.Base(name), data)
	if err != nil {
		return err
	}
	a.println(a.theme.success("Chart written to " + path))
	return nil
}

// Copy puts the attachment link of submission id on the clipboard.
func (a *App) Copy(ctx context.Context, id string) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	row, ok := a.dash.Find(id)
	if !ok {
		return dashboard.ErrNotFound
	}
	if row.AttachmentRef == "" {
		return errNoAttachment
	}

	if err := writeClipboard(row.AttachmentRef); err != nil {
		a.println(a.theme.Muted.Render("(Clipboard access failed, please copy manually)"))
		a.println(row.AttachmentRef)
		return nil
	}
	a.println(a.theme.success("Attachment link copied"))
	return nil
}

// Refresh re-fetches the dashboard on demand.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	start := time.Now()
	if err := a.dash.Refresh(ctx); err != nil {
		return err
	}
	a.println(a.theme.Muted.Render(fmt.Sprintf("refreshed in %s", time.Since(start).Round(time.Millisecond))))
	return nil
}
