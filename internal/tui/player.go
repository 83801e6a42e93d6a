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

type playerLoadedMsg struct {
	player *domain.PlayerDetails
	err    error
}

type playerModel struct {
	client  *client.Client
	player  *domain.PlayerDetails
	loading bool
	err     string
}

func newPlayerModel(c *client.Client) playerModel {
	return playerModel{client: c, loading: true}
}

func (m playerModel) Init() tea.Cmd {
	return nil
}

func (m playerModel) load(playerID uuid.UUID) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		p, err := c.Player(context.Background(), playerID)
		return playerLoadedMsg{player: p, err: err}
	}
}

func (m playerModel) Update(msg tea.Msg) (playerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case playerLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = "Failed to load player"
			return m, nil
		}
		m.err = ""
		m.player = msg.player
		return m, nil
	}
	return m, nil
}

// attrBlock is one labeled group of ratings on the sheet.
type attrBlock struct {
	title string
	attrs []attrEntry
}

type attrEntry struct {
	label string
	value *int
}

// outfieldBlocks mirrors the six category cards of the player page.
func outfieldBlocks(p *domain.PlayerDetails) []attrBlock {
	return []attrBlock{
		{"Pace", []attrEntry{
			{"Overall", p.Pace},
			{"Acceleration", p.Acceleration},
			{"Sprint Speed", p.SprintSpeed},
		}},
		{"Shooting", []attrEntry{
			{"Overall", p.Shooting},
			{"Att. Position", p.AttPosition},
			{"Finishing", p.Finishing},
			{"Shot Power", p.ShotPower},
			{"Long Shots", p.LongShots},
			{"Volleys", p.Volleys},
			{"Penalties", p.Penalties},
		}},
		{"Passing", []attrEntry{
			{"Overall", p.Passing},
			{"Vision", p.Vision},
			{"Crossing", p.Crossing},
			{"FK Accuracy", p.FKAcc},
			{"Short Pass", p.ShortPass},
			{"Long Pass", p.LongPass},
			{"Curve", p.Curve},
		}},
		{"Dribbling", []attrEntry{
			{"Overall", p.Dribbling},
			{"Agility", p.Agility},
			{"Balance", p.Balance},
			{"Reactions", p.Reactions},
			{"Ball Control", p.BallControl},
			{"Dribbling", p.DribblingSkill},
			{"Composure", p.Composure},
		}},
		{"Defending", []attrEntry{
			{"Overall", p.Defending},
			{"Interceptions", p.Interceptions},
			{"Heading Acc.", p.HeadingAcc},
			{"Def. Awareness", p.DefAware},
			{"Stand Tackle", p.StandTackle},
			{"Slide Tackle", p.SlideTackle},
		}},
		{"Physical", []attrEntry{
			{"Overall", p.Physical},
			{"Jumping", p.Jumping},
			{"Stamina", p.Stamina},
			{"Strength", p.Strength},
			{"Aggression", p.Aggression},
		}},
	}
}

// goalkeeperBlocks is the single GK card.
func goalkeeperBlocks(p *domain.PlayerDetails) []attrBlock {
	return []attrBlock{
		{"Goalkeeping", []attrEntry{
			{"Diving", p.Diving},
			{"Handling", p.Handling},
			{"Kicking", p.Kicking},
			{"Reflexes", p.Reflexes},
			{"Speed", p.Speed},
			{"Positioning", p.Positioning},
		}},
	}
}

func (m playerModel) View() string {
	var sb strings.Builder

	switch {
	case m.err != "":
		sb.WriteString("\n " + errorStyle.Render(m.err) + "\n")
		return sb.String()
	case m.loading || m.player == nil:
		sb.WriteString("\n " + dimStyle.Render("Loading player...") + "\n")
		return sb.String()
	}

	p := m.player
	sb.WriteString("\n " + selectedStyle.Render(p.Name) + "  " +
		ratingStyle(p.Overall).Render(fmt.Sprintf("%d", p.Overall)) + "\n")
	meta := fmt.Sprintf("%s · Age %d · %s",
		PositionStyle(p.Position).Render(p.Position),
		p.Age,
		formatMarketValue(p.MarketValue))
	sb.WriteString(" " + metaStyle.Render(meta) + "\n")

	blocks := outfieldBlocks(p)
	if p.IsGoalkeeper() {
		blocks = goalkeeperBlocks(p)
	}
	for _, block := range blocks {
		sb.WriteString("\n " + labelStyle.Render(block.title) + "\n")
		for _, a := range block.attrs {
			if a.value == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("   %s %s\n",
				dimStyle.Render(fmt.Sprintf("%-16s", a.label)),
				ratingStyle(*a.value).Render(fmt.Sprintf("%3d", *a.value))))
		}
	}
	return sb.String()
}
