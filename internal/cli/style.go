package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// styler applies terminal styles, or nothing when color is off
type styler struct {
	color bool
}

func (s styler) render(st lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return st.Render(text)
}

func (s styler) ok(text string) string     { return s.render(styles.SuccessStyle, text) }
func (s styler) fail(text string) string   { return s.render(styles.ErrorStyle, text) }
func (s styler) dim(text string) string    { return s.render(styles.DimStyle, text) }
func (s styler) accent(text string) string { return s.render(styles.AccentStyle, text) }
func (s styler) title(text string) string  { return s.render(styles.TitleStyle, text) }
func (s styler) flagged(text string) string {
	return s.render(styles.FlaggedStyle, text)
}
