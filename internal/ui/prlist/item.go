package prlist

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/bbprs/bitbucket"
	"github.com/nhle/bbprs/internal/theme"
)

// PRItem wraps a bitbucket.PullRequest so it can be used in a
// bubbles/list.
type PRItem struct {
	PR bitbucket.PullRequest

	// Viewer is the username whose role badge is rendered next to
	// the pull request.
	Viewer string
}

// FilterValue returns the string used for fuzzy filtering.
func (i PRItem) FilterValue() string { return i.PR.Title }

// Title returns the pull-request title for the list.
func (i PRItem) Title() string { return i.PR.Title }

// Description returns a short summary line for the list.
func (i PRItem) Description() string {
	return fmt.Sprintf(
		"%s/%s | %s | %s",
		i.PR.Repository.ProjectKey, i.PR.Repository.Slug,
		i.PR.State, relativeTime(i.PR.UpdatedDate),
	)
}

// ItemDelegate implements list.ItemDelegate for rendering pull-request
// lines.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single pull-request line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	prItem, ok := item.(PRItem)
	if !ok {
		return
	}

	pr := prItem.PR
	stateBadge := theme.StateStyle(pr.State).Render(string(pr.State))

	repoBadge := lipgloss.NewStyle().
		Foreground(theme.ColorBlue).
		Render(pr.Repository.ProjectKey + "/" + pr.Repository.Slug)

	roleBadge := ""
	if prItem.Viewer != "" {
		if role := pr.RoleOf(prItem.Viewer); role != bitbucket.ParticipationNotOnPR {
			roleBadge = lipgloss.NewStyle().
				Foreground(theme.ColorYellow).
				Render(" [" + string(role) + "]")
		}
	}

	timeStr := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Render(relativeTime(pr.UpdatedDate))

	line := fmt.Sprintf(
		"%s %s %s%s  %s",
		stateBadge, repoBadge, pr.Title, roleBadge, timeStr,
	)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// relativeTime returns a human-friendly relative time string.
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return fmt.Sprintf("%dw ago", int(d.Hours()/24/7))
	}
}
