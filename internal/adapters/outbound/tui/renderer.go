package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

// Styled text keeps tabs; lipgloss would otherwise expand them to spaces.
var (
	base         = lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	headerStyle  = base.Bold(true).Foreground(accent)
	dimStyle     = base.Foreground(dim)
	passStyle    = base.Foreground(success)
	failStyle    = base.Foreground(danger)
	warnStyle    = base.Foreground(warning)
	fileStyle    = base.Foreground(dim)
	titleStyle   = base.Bold(true).Foreground(fg)
	summaryStyle = base.Bold(true)
	// The separator line is plain so scripts can grep for it.
	separatorLine = strings.Repeat("=", 50)
)

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
