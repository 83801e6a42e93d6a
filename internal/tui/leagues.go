package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/warriorfoot/warriorfoot/pkg/client"
	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

type leaguesLoadedMsg struct {
	leagues []domain.UserLeague
	err     error
}

type leagueCreatedMsg struct {
	created *domain.CreatedLeague
	err     error
}

type leagueDeletedMsg struct {
	leagueID string
	err      error
}

type leagueLeftMsg struct {
	leagueID string
	err      error
}

// confirmAction is a pending destructive action awaiting y/n.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmLeave
)

type leaguesModel struct {
	client    *client.Client
	leagues   []domain.UserLeague
	cursor    int
	loading   bool
	busy      bool
	err       string
	notice    string
	creating  bool
	nameInput string
	confirm   confirmAction
}

func newLeaguesModel(c *client.Client) leaguesModel {
	return leaguesModel{client: c}
}

func (m leaguesModel) Init() tea.Cmd {
	return m.load()
}

func (m leaguesModel) load() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		leagues, err := c.UserLeagues(context.Background())
		return leaguesLoadedMsg{leagues: leagues, err: err}
	}
}

func (m leaguesModel) Update(msg tea.Msg) (leaguesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case leaguesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = "Failed to load leagues"
			return m, nil
		}
		m.err = ""
		m.leagues = msg.leagues
		if m.cursor >= len(m.leagues) {
			m.cursor = len(m.leagues) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case leagueCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = "Failed to create league"
			return m, nil
		}
		created := msg.created
		// Jump straight into the fresh league.
		return m, func() tea.Msg {
			return openDashboardMsg{
				leagueID: created.LeagueID.String(),
				teamID:   created.TeamID.String(),
			}
		}

	case leagueDeletedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = deleteLeagueErrorMessage(msg.err)
			return m, nil
		}
		m.err = ""
		m.notice = "League deleted"
		leagueID := msg.leagueID
		return m, tea.Batch(
			func() tea.Msg { return leagueRemovedMsg{leagueID: leagueID} },
			m.load(),
		)

	case leagueLeftMsg:
		m.busy = false
		if msg.err != nil {
			m.err = leaveLeagueErrorMessage(msg.err)
			return m, nil
		}
		m.err = ""
		m.notice = "Left league"
		leagueID := msg.leagueID
		return m, tea.Batch(
			func() tea.Msg { return leagueRemovedMsg{leagueID: leagueID} },
			m.load(),
		)

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.creating {
			return m.updateCreateKeys(msg)
		}
		if m.confirm != confirmNone {
			return m.updateConfirmKeys(msg)
		}
		return m.updateListKeys(msg)
	}
	return m, nil
}

func (m leaguesModel) updateCreateKeys(msg tea.KeyMsg) (leaguesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.creating = false
		m.nameInput = ""
	case "enter":
		name := strings.TrimSpace(m.nameInput)
		m.creating = false
		m.nameInput = ""
		m.busy = true
		m.notice = ""
		c := m.client
		return m, func() tea.Msg {
			created, err := c.CreateLeague(context.Background(), name)
			return leagueCreatedMsg{created: created, err: err}
		}
	default:
		m.nameInput = editRune(m.nameInput, msg.String())
	}
	return m, nil
}

func (m leaguesModel) updateConfirmKeys(msg tea.KeyMsg) (leaguesModel, tea.Cmd) {
	action := m.confirm
	m.confirm = confirmNone
	if msg.String() != "y" {
		return m, nil
	}
	if m.cursor >= len(m.leagues) {
		return m, nil
	}
	target := m.leagues[m.cursor]
	m.busy = true
	m.notice = ""
	c := m.client
	switch action {
	case confirmDelete:
		return m, func() tea.Msg {
			err := c.DeleteLeague(context.Background(), target.LeagueID)
			return leagueDeletedMsg{leagueID: target.LeagueID.String(), err: err}
		}
	case confirmLeave:
		return m, func() tea.Msg {
			err := c.LeaveLeague(context.Background(), target.LeagueID)
			return leagueLeftMsg{leagueID: target.LeagueID.String(), err: err}
		}
	}
	m.busy = false
	return m, nil
}

func (m leaguesModel) updateListKeys(msg tea.KeyMsg) (leaguesModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.leagues)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.leagues) {
			sel := m.leagues[m.cursor]
			return m, func() tea.Msg {
				return openDashboardMsg{
					leagueID: sel.LeagueID.String(),
					teamID:   sel.TeamID.String(),
				}
			}
		}
	case "n":
		m.creating = true
		m.nameInput = ""
		m.err = ""
		m.notice = ""
	case "d":
		if m.cursor < len(m.leagues) {
			m.confirm = confirmDelete
			m.err = ""
		}
	case "x":
		if m.cursor < len(m.leagues) {
			m.confirm = confirmLeave
			m.err = ""
		}
	case "r":
		m.loading = true
		m.err = ""
		m.notice = ""
		return m, m.load()
	}
	return m, nil
}

func (m leaguesModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + selectedStyle.Render("Your Leagues") + "\n\n")

	switch {
	case m.loading:
		sb.WriteString(" " + dimStyle.Render("Loading leagues...") + "\n")
	case len(m.leagues) == 0:
		sb.WriteString(" " + dimStyle.Render("No leagues yet. Press n to create one.") + "\n")
	default:
		for i, l := range m.leagues {
			cursor := "  "
			nameStyle := normalStyle
			if i == m.cursor {
				cursor = inputPromptStyle.Render("> ")
				nameStyle = selectedStyle
			}
			badge := ""
			if l.IsCreator {
				badge = " " + accentStyle.Render("owner")
			}
			line := fmt.Sprintf(" %s%s%s", cursor, nameStyle.Render(truncStr(l.DisplayName(), 32)), badge)
			meta := fmt.Sprintf("    %s · %s · %s",
				l.TeamName,
				DivisionStyle(l.DivisionLevel).Render(fmt.Sprintf("Division %d", l.DivisionLevel)),
				formatTime(l.CreatedAt))
			sb.WriteString(line + "\n" + metaStyle.Render(meta) + "\n")
		}
	}

	if m.creating {
		sb.WriteString("\n " + labelStyle.Render("League name") + " " +
			normalStyle.Render(m.nameInput) + accentStyle.Render("█") + "\n")
		sb.WriteString(" " + dimStyle.Render("Leave empty for \""+domain.DefaultLeagueName+"\"") + "\n")
	}
	if m.confirm == confirmDelete {
		sb.WriteString("\n " + errorStyle.Render("Delete this league and all its teams? (y/n)") + "\n")
	}
	if m.confirm == confirmLeave {
		sb.WriteString("\n " + errorStyle.Render("Leave this league? Your team will be released. (y/n)") + "\n")
	}
	if m.busy {
		sb.WriteString("\n " + dimStyle.Render("Working...") + "\n")
	}
	if m.err != "" {
		sb.WriteString("\n " + errorStyle.Render(m.err) + "\n")
	}
	if m.notice != "" {
		sb.WriteString("\n " + successStyle.Render(m.notice) + "\n")
	}
	return sb.String()
}
