package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/warriorfoot/warriorfoot/pkg/client"
	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

type dashboardLoadedMsg struct {
	info *domain.LeagueInfo
	err  error
}

// dashboardModel renders the division pyramid of the active league.
type dashboardModel struct {
	client  *client.Client
	info    *domain.LeagueInfo
	teams   []domain.TeamSummary // flattened, division order
	cursor  int
	loading bool
	err     string
}

func newDashboardModel(c *client.Client) dashboardModel {
	return dashboardModel{client: c}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) load(leagueID uuid.UUID) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		info, err := c.LeagueDashboard(context.Background(), leagueID)
		return dashboardLoadedMsg{info: info, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = "Failed to load league"
			return m, nil
		}
		m.err = ""
		m.info = msg.info
		m.teams = m.teams[:0]
		for _, level := range m.info.DivisionLevels() {
			m.teams = append(m.teams, m.info.Divisions[level]...)
		}
		if m.cursor >= len(m.teams) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.teams)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.teams) {
				teamID := m.teams[m.cursor].ID
				return m, func() tea.Msg { return openTeamMsg{teamID: teamID} }
			}
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n " + selectedStyle.Render("League Table") + "\n")

	switch {
	case m.err != "":
		sb.WriteString("\n " + errorStyle.Render(m.err) + "\n")
	case m.loading || m.info == nil:
		sb.WriteString("\n " + dimStyle.Render("Loading league...") + "\n")
	default:
		idx := 0
		for _, level := range m.info.DivisionLevels() {
			sb.WriteString("\n " + DivisionStyle(level).Render(fmt.Sprintf("Division %d", level)) + "\n")
			for _, t := range m.info.Divisions[level] {
				cursor := "  "
				nameStyle := normalStyle
				if idx == m.cursor {
					cursor = inputPromptStyle.Render("> ")
					nameStyle = selectedStyle
				}
				sb.WriteString(fmt.Sprintf(" %s%s\n", cursor, nameStyle.Render(truncStr(t.Name, 40))))
				idx++
			}
		}
	}
	return sb.String()
}
