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

// teamLoadedMsg carries the result of Team + TeamPlayers.
type teamLoadedMsg struct {
	team    *domain.TeamInfo
	players []domain.PlayerSummary
	err     error
}

type teamModel struct {
	client  *client.Client
	team    *domain.TeamInfo
	players []domain.PlayerSummary
	cursor  int
	loading bool
	err     string
}

func newTeamModel(c *client.Client) teamModel {
	return teamModel{client: c, loading: true}
}

func (m teamModel) Init() tea.Cmd {
	return nil
}

func (m teamModel) load(teamID uuid.UUID) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		team, err := c.Team(context.Background(), teamID)
		if err != nil {
			return teamLoadedMsg{err: err}
		}
		players, err := c.TeamPlayers(context.Background(), teamID)
		if err != nil {
			return teamLoadedMsg{err: err}
		}
		return teamLoadedMsg{team: team, players: players}
	}
}

func (m teamModel) Update(msg tea.Msg) (teamModel, tea.Cmd) {
	switch msg := msg.(type) {
	case teamLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = "Failed to load team"
			return m, nil
		}
		m.err = ""
		m.team = msg.team
		m.players = msg.players
		if m.cursor >= len(m.players) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.players)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if m.cursor < len(m.players) {
				playerID := m.players[m.cursor].ID
				return m, func() tea.Msg { return openPlayerMsg{playerID: playerID} }
			}
		}
	}
	return m, nil
}

func (m teamModel) View() string {
	var sb strings.Builder

	switch {
	case m.err != "":
		sb.WriteString("\n " + errorStyle.Render(m.err) + "\n")
		return sb.String()
	case m.loading || m.team == nil:
		sb.WriteString("\n " + dimStyle.Render("Loading team...") + "\n")
		return sb.String()
	}

	sb.WriteString("\n " + selectedStyle.Render(m.team.Name) + "\n")
	meta := fmt.Sprintf("%s · Manager: %s · Squad avg %.1f",
		DivisionStyle(m.team.DivisionLevel).Render(fmt.Sprintf("Division %d", m.team.DivisionLevel)),
		m.team.ManagerName,
		domain.SquadAverage(m.players))
	sb.WriteString(" " + metaStyle.Render(meta) + "\n\n")

	header := fmt.Sprintf("   %-4s %-24s %3s %4s %10s", "POS", "NAME", "AGE", "OVR", "VALUE")
	sb.WriteString(" " + labelStyle.Render(header) + "\n")

	for i, p := range m.players {
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = inputPromptStyle.Render("> ")
			nameStyle = selectedStyle
		}
		line := fmt.Sprintf(" %s%s %s %3d  %s %10s",
			cursor,
			PositionStyle(p.Position).Render(fmt.Sprintf("%-4s", p.Position)),
			nameStyle.Render(fmt.Sprintf("%-24s", truncStr(p.Name, 24))),
			p.Age,
			ratingStyle(p.Overall).Render(fmt.Sprintf("%3d", p.Overall)),
			formatMarketValue(p.MarketValue))
		sb.WriteString(line + "\n")
	}
	if len(m.players) == 0 {
		sb.WriteString(" " + dimStyle.Render("No players on this roster.") + "\n")
	}
	return sb.String()
}
