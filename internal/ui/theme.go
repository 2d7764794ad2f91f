package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/haryoiro/ytfront/internal/structures"
)

// ThemeManager manages UI styles based on the configured theme
type ThemeManager struct {
	theme structures.Theme

	// Cached styles
	baseStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	activeStyle   lipgloss.Style
	unreadStyle   lipgloss.Style
	accentStyle   lipgloss.Style
	borderStyle   lipgloss.Style
	focusBorder   lipgloss.Style
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	helpStyle     lipgloss.Style
	errorStyle    lipgloss.Style
}

// NewThemeManager creates a new theme manager with the given theme
func NewThemeManager(theme structures.Theme) *ThemeManager {
	tm := &ThemeManager{theme: theme}
	tm.initStyles()
	return tm
}

func (tm *ThemeManager) initStyles() {
	// Foreground only, no background, to avoid partial coloring
	tm.baseStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground))

	tm.selectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Selected)).
		Bold(true)

	// Liked, subscribed, current category
	tm.activeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Active)).
		Bold(true)

	tm.unreadStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Unread)).
		Bold(true)

	tm.accentStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Accent))

	tm.borderStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tm.theme.Border))

	tm.focusBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tm.theme.Selected))

	tm.titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground)).
		Bold(true)

	tm.subtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground)).
		Faint(true)

	tm.helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground)).
		Faint(true).
		Italic(true)

	tm.errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Unread)).
		Bold(true)
}

func (tm *ThemeManager) BaseStyle() lipgloss.Style     { return tm.baseStyle.Copy() }
func (tm *ThemeManager) SelectedStyle() lipgloss.Style { return tm.selectedStyle.Copy() }
func (tm *ThemeManager) UnreadStyle() lipgloss.Style   { return tm.unreadStyle.Copy() }
func (tm *ThemeManager) AccentStyle() lipgloss.Style   { return tm.accentStyle.Copy() }
func (tm *ThemeManager) TitleStyle() lipgloss.Style    { return tm.titleStyle.Copy() }
func (tm *ThemeManager) SubtitleStyle() lipgloss.Style { return tm.subtitleStyle.Copy() }
func (tm *ThemeManager) ErrorStyle() lipgloss.Style    { return tm.errorStyle.Copy() }

// BorderStyle returns the pane border, highlighted when focused
func (tm *ThemeManager) BorderStyle(focused bool) lipgloss.Style {
	if focused {
		return tm.focusBorder.Copy()
	}
	return tm.borderStyle.Copy()
}

func (tm *ThemeManager) RenderTitle(text string) string    { return tm.titleStyle.Render(text) }
func (tm *ThemeManager) RenderSubtitle(text string) string { return tm.subtitleStyle.Render(text) }
func (tm *ThemeManager) RenderSelected(text string) string { return tm.selectedStyle.Render(text) }
func (tm *ThemeManager) RenderActive(text string) string   { return tm.activeStyle.Render(text) }
func (tm *ThemeManager) RenderHelp(text string) string     { return tm.helpStyle.Render(text) }

// RenderToggle styles a label as active when on
func (tm *ThemeManager) RenderToggle(text string, on bool) string {
	if on {
		return tm.activeStyle.Render(text)
	}
	return tm.baseStyle.Render(text)
}
