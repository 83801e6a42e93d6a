package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// formatTime renders a relative timestamp for league listings.
func formatTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// formatMarketValue renders a market value the way match broadcasts do:
// €12.5M, €850K, €900.
func formatMarketValue(v int64) string {
	switch {
	case v >= 1_000_000:
		s := fmt.Sprintf("€%.1fM", float64(v)/1_000_000)
		return strings.Replace(s, ".0M", "M", 1)
	case v >= 1_000:
		s := fmt.Sprintf("€%.1fK", float64(v)/1_000)
		return strings.Replace(s, ".0K", "K", 1)
	default:
		return fmt.Sprintf("€%d", v)
	}
}

// centerLine pads s to be horizontally centered in width columns.
func centerLine(s string, rendered int, width int) string {
	pad := (width - rendered) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

// maskPassword renders n dots for a password of n runes.
func maskPassword(s string) string {
	return strings.Repeat("•", utf8.RuneCountInString(s))
}
