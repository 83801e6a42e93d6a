package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/warriorfoot/warriorfoot/pkg/domain"
)

var (
	// Base palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	// Club blue — matches the web front-end's blue-to-cyan branding
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60a5fa")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22d3ee"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0")).
			Bold(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#22d3ee")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	ratingHighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80")).
			Bold(true)

	ratingMidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	ratingLowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))
)

// positionColors follows the classic lineup chart convention.
var positionColors = map[string]lipgloss.Color{
	domain.PositionGoalkeeper: lipgloss.Color("#fbbf24"),
	domain.PositionDefender:   lipgloss.Color("#60a5fa"),
	domain.PositionMidfielder: lipgloss.Color("#4ade80"),
	domain.PositionForward:    lipgloss.Color("#f87171"),
}

// PositionStyle returns a bold style colored for the given position code.
func PositionStyle(pos string) lipgloss.Style {
	if c, ok := positionColors[pos]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")).Bold(true)
}

// divisionColors gives each tier of the pyramid its own accent.
var divisionColors = map[int]lipgloss.Color{
	1: lipgloss.Color("#fbbf24"),
	2: lipgloss.Color("#b8ccdf"),
	3: lipgloss.Color("#f0944a"),
	4: lipgloss.Color("#60a5fa"),
}

// DivisionStyle returns a bold style colored for a division level.
func DivisionStyle(level int) lipgloss.Style {
	if c, ok := divisionColors[level]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")).Bold(true)
}

// ratingStyle colors an overall rating by tier.
func ratingStyle(overall int) lipgloss.Style {
	switch {
	case overall >= 80:
		return ratingHighStyle
	case overall >= 65:
		return ratingMidStyle
	default:
		return ratingLowStyle
	}
}

// renderLogo renders the letter-spaced WARRIORFOOT wordmark.
func renderLogo() string {
	const text = "WARRIORFOOT"
	parts := make([]string, 0, len(text))
	for i, r := range text {
		s := titleStyle
		// Fade toward cyan across the word, like the web gradient.
		if i >= len(text)/2 {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color("#22d3ee")).Bold(true)
		}
		parts = append(parts, s.Render(string(r)))
	}
	return strings.Join(parts, " ")
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
