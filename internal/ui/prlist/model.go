// Package prlist is the interactive pull-request browser: a
// bubbles/list fed by one fetch against the Bitbucket API, with a
// detail pane showing reviewers and their statuses.
package prlist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/bbprs/bitbucket"
	"github.com/nhle/bbprs/internal/theme"
)

// FetchFunc performs the pull-request fetch the list is built from.
type FetchFunc func(ctx context.Context) ([]bitbucket.PullRequest, error)

// prsLoadedMsg is sent when the fetch completes.
type prsLoadedMsg struct {
	prs []bitbucket.PullRequest
	err error
}

// Model is the pull-request list view.
type Model struct {
	list       list.Model
	spinner    spinner.Model
	fetch      FetchFunc
	viewer     string
	loading    bool
	err        error
	showDetail bool
	width      int
	height     int
}

// New creates the list model. viewer is the username whose role is
// badged on each pull request.
func New(title string, viewer string, fetch FetchFunc) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		list:    l,
		spinner: sp,
		fetch:   fetch,
		viewer:  viewer,
		loading: true,
	}
}

// Init starts the spinner and kicks off the fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// load returns a command that runs the fetch and reports the result.
func (m Model) load() tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		prs, err := fetch(context.Background())
		return prsLoadedMsg{prs: prs, err: err}
	}
}

// Update handles messages for the list view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		items := make([]list.Item, len(msg.prs))
		for i, pr := range msg.prs {
			items[i] = PRItem{PR: pr, Viewer: m.viewer}
		}
		return m, m.list.SetItems(items)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.showDetail && msg.String() == "esc" {
				m.showDetail = false
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			m.showDetail = !m.showDetail
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list, the loading spinner, or an error banner.
func (m Model) View() string {
	if m.loading {
		return m.spinner.View() + " fetching pull requests..."
	}
	if m.err != nil {
		return theme.ErrorStyle.Render("error: "+m.err.Error()) +
			"\n" + theme.HelpStyle.Render("q to quit")
	}

	view := m.list.View()
	if m.showDetail {
		if item, ok := m.list.SelectedItem().(PRItem); ok {
			view = lipgloss.JoinVertical(
				lipgloss.Left, view, renderDetail(item.PR),
			)
		}
	}
	return view + "\n" + theme.HelpStyle.Render(
		"enter: details  q: quit",
	)
}

// renderDetail shows the selected pull request's people and statuses.
func renderDetail(pr bitbucket.PullRequest) string {
	var b strings.Builder

	b.WriteString(theme.HeaderStyle.Render(pr.Title) + "\n")
	b.WriteString("  " + pr.SelfLink + "\n")
	b.WriteString("  author: " + pr.Author.DisplayName + "\n")

	names := make([]string, 0, len(pr.Reviewers))
	for name := range pr.Reviewers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r := pr.Reviewers[name]
		b.WriteString(fmt.Sprintf(
			"  reviewer: %s %s\n",
			r.Reviewer.DisplayName,
			theme.ReviewStatusStyle(r.Status).Render(string(r.Status)),
		))
	}
	for _, p := range pr.Participants {
		b.WriteString("  participant: " + p.DisplayName + "\n")
	}

	return b.String()
}
