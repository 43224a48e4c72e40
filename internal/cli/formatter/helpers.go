package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// ClockTime renders an instant as the "HH:MM" wall-clock time.
func ClockTime(t time.Time) string {
	return t.UTC().Format("15:04")
}

// UsagePips renders remaining/quota as filled and empty dots, e.g. "● ● ○".
func UsagePips(remaining, quota int) string {
	if quota <= 0 {
		return StyleDim.Render("--")
	}
	if remaining < 0 {
		remaining = 0
	}
	if remaining > quota {
		remaining = quota
	}
	parts := make([]string, 0, quota)
	for i := 0; i < quota; i++ {
		if i < remaining {
			parts = append(parts, StyleGreen.Render("●"))
		} else {
			parts = append(parts, StyleDim.Render("○"))
		}
	}
	return strings.Join(parts, " ")
}

// Truncate shortens text to max runes with a trailing ellipsis.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
