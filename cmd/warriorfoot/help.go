package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func printHelp() {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60a5fa")).
		Bold(true).
		Render("W A R R I O R F O O T")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Build your club. Climb the pyramid.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	envStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	commands := []struct{ cmd, desc string }{
		{"warriorfoot", "Open the manager console (interactive TUI)"},
		{"warriorfoot whoami", "Show the logged-in account"},
		{"warriorfoot logout", "Clear your session"},
		{"warriorfoot --version", "Show version"},
		{"warriorfoot help", "You are here"},
	}

	envVars := []struct{ name, desc string }{
		{"WARRIORFOOT_API_URL", "API base URL (default " + defaultAPIURL + ")"},
		{"WARRIORFOOT_CONFIG_DIR", "State directory (default ~/.warriorfoot)"},
		{"WARRIORFOOT_AUTH_MODE", "\"bearer\" (default) or \"cookie\""},
		{"WARRIORFOOT_LOG_LEVEL", "debug.log verbosity (default info)"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n  Commands:\n", title, tagline)
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", c.cmd)), descStyle.Render(c.desc))
	}
	fmt.Printf("\n  Environment:\n")
	for _, e := range envVars {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", e.name)), envStyle.Render(e.desc))
	}
	url := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("https://warriorfoot.app")
	fmt.Printf("\n  %s\n\n", url)
}
