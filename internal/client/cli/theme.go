package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophportal/internal/domain"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	colorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	colorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	colorDefault = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
)

// Theme is the set of styles used for one session's output.
type Theme struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Row     lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Status  map[domain.Status]lipgloss.Style
}

// NewTheme builds styles from a tenant's colours. Unset colours fall back
// to the terminal palette, so the zero Theme gives the admin look.
func NewTheme(t domain.Theme) Theme {
	primary := pick(t.Primary, colorPrimary)
	accent := pick(t.Accent, colorAccent)
	secondary := pick(t.Secondary, colorMuted)

	return Theme{
		Title:   lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		Header:  lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Left),
		Accent:  lipgloss.NewStyle().Foreground(accent),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Row:     lipgloss.NewStyle().Foreground(colorDefault),
		Border:  lipgloss.NewStyle().Foreground(secondary),
		Success: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		Status: map[domain.Status]lipgloss.Style{
			domain.StatusPending:   lipgloss.NewStyle().Foreground(colorWarning),
			domain.StatusOngoing:   lipgloss.NewStyle().Foreground(primary).Bold(true),
			domain.StatusCompleted: lipgloss.NewStyle().Foreground(colorSuccess),
			domain.StatusRejected:  lipgloss.NewStyle().Foreground(colorError),
		},
	}
}

func pick(hex string, fallback lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	if hex == "" {
		return fallback
	}
	return lipgloss.Color(hex)
}

func (t Theme) success(msg string) string {
	return t.Success.Render("✔ " + msg)
}

func (t Theme) failure(msg string) string {
	return t.Error.Render("✘ " + msg)
}

func (t Theme) warning(msg string) string {
	return t.Warning.Render("⚠ " + msg)
}

func (t Theme) status(s domain.Status) string {
	st, ok := t.Status[s]
	if !ok {
		return string(s)
	}
	return st.Render(string(s))
}

// table renders rows under headers with columns padded to the widest cell.
func (t Theme) table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	parts := make([]string, len(headers))
	for i, h := range headers {
		parts[i] = pad(h, widths[i])
	}
	b.WriteString(t.Header.Render(strings.Join(parts, "  ")))
	b.WriteString("\n")

	for i := range parts {
		parts[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(t.Border.Render(strings.Join(parts, "  ")))

	for _, row := range rows {
		b.WriteString("\n")
		cells := make([]string, len(headers))
		for i := range headers {
			if i < len(row) {
				cells[i] = pad(row[i], widths[i])
			} else {
				cells[i] = pad("", widths[i])
			}
		}
		b.WriteString(strings.Join(cells, "  "))
	}
	return b.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// countsLine is the one-line status summary used in the overview and in
// live update notices.
func (t Theme) countsLine(c domain.Counts) string {
	parts := make([]string, 0, 5)
	for _, s := range domain.Statuses() {
		parts = append(parts, fmt.Sprintf("%s %d", t.status(s), c.Get(s)))
	}
	parts = append(parts, fmt.Sprintf("total %d", c.Total()))
	return strings.Join(parts, t.Muted.Render(" · "))
}

// bar draws n as a run of blocks, one per submission up to width.
func bar(n, width int) string {
	if n > width {
		return strings.Repeat("█", width-1) + "+"
	}
	return strings.Repeat("█", n)
}
