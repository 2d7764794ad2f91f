package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/haryoiro/ytfront/internal/structures"
)

// ShortcutHint represents a single keyboard shortcut hint
type ShortcutHint struct {
	Key    string
	Action string
}

// ShortcutFormatter handles formatting of keyboard shortcuts for display
type ShortcutFormatter struct {
	config     *structures.Config
	styleCache map[string]string
}

// NewShortcutFormatter creates a new shortcut formatter with the given config
func NewShortcutFormatter(config *structures.Config) *ShortcutFormatter {
	return &ShortcutFormatter{
		config:     config,
		styleCache: make(map[string]string),
	}
}

// formatKey formats a key binding for display
func (sf *ShortcutFormatter) formatKey(key string) string {
	if formatted, ok := sf.styleCache[key]; ok {
		return formatted
	}

	formatted := key
	switch key {
	case "space":
		formatted = "Space"
	case "enter":
		formatted = "Enter"
	case "esc":
		formatted = "Esc"
	case "tab":
		formatted = "Tab"
	case "shift+tab":
		formatted = "Shift+Tab"
	case "backspace":
		formatted = "Back"
	case "up":
		formatted = "↑"
	case "down":
		formatted = "↓"
	case "left":
		formatted = "←"
	case "right":
		formatted = "→"
	case "pgup":
		formatted = "PgUp"
	case "pgdown":
		formatted = "PgDn"
	default:
		switch {
		case strings.HasPrefix(key, "ctrl+"):
			formatted = "Ctrl+" + strings.ToUpper(strings.TrimPrefix(key, "ctrl+"))
		case strings.HasPrefix(key, "alt+"):
			formatted = "Alt+" + strings.ToUpper(strings.TrimPrefix(key, "alt+"))
		}
	}

	sf.styleCache[key] = formatted
	return formatted
}

// formatKeys formats multiple key bindings (e.g., ["down", "j"] -> "↓/j")
func (sf *ShortcutFormatter) formatKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	// Arrow keys first, then alphabetical
	sorted := slices.Clone(keys)
	slices.SortStableFunc(sorted, func(a, b string) int {
		if isArrowKey(a) != isArrowKey(b) {
			if isArrowKey(a) {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})

	formatted := make([]string, len(sorted))
	for i, key := range sorted {
		formatted[i] = sf.formatKey(key)
	}
	return strings.Join(formatted, "/")
}

func isArrowKey(key string) bool {
	return key == "up" || key == "down" || key == "left" || key == "right"
}

// FormatHint formats a single shortcut hint
func (sf *ShortcutFormatter) FormatHint(hint ShortcutHint) string {
	return fmt.Sprintf("[%s: %s]", hint.Key, hint.Action)
}

// FormatHints formats multiple shortcut hints with consistent styling
func (sf *ShortcutFormatter) FormatHints(hints []ShortcutHint) string {
	formatted := make([]string, len(hints))
	for i, hint := range hints {
		formatted[i] = sf.FormatHint(hint)
	}
	return strings.Join(formatted, " ")
}

// GetHomeHints returns shortcuts for the grid page
func (sf *ShortcutFormatter) GetHomeHints() []ShortcutHint {
	kb := sf.config.KeyBindings
	return []ShortcutHint{
		{Key: sf.formatKeys(kb.Select), Action: "Open"},
		{Key: sf.formatKey(kb.NextSection), Action: "Switch Pane"},
		{Key: sf.formatKey(kb.Search), Action: "Search"},
		{Key: sf.formatKey(kb.Notifications), Action: "Notifications"},
		{Key: sf.formatKey(kb.Profile), Action: "Profile"},
	}
}

// GetDetailHints returns shortcuts for the video page
func (sf *ShortcutFormatter) GetDetailHints() []ShortcutHint {
	kb := sf.config.KeyBindings
	return []ShortcutHint{
		{Key: sf.formatKey(kb.Like), Action: "Like"},
		{Key: sf.formatKey(kb.Dislike), Action: "Dislike"},
		{Key: sf.formatKey(kb.Subscribe), Action: "Subscribe"},
		{Key: sf.formatKey(kb.Comment), Action: "Comment"},
		{Key: sf.formatKeys(kb.Back), Action: "Back"},
	}
}

// GetSearchHints returns search box shortcuts
func (sf *ShortcutFormatter) GetSearchHints() []ShortcutHint {
	return []ShortcutHint{
		{Key: sf.formatKey("enter"), Action: "Done"},
		{Key: sf.formatKey("esc"), Action: "Leave"},
	}
}

// GetCommentHints returns comment input shortcuts
func (sf *ShortcutFormatter) GetCommentHints() []ShortcutHint {
	return []ShortcutHint{
		{Key: sf.formatKey("enter"), Action: "Post"},
		{Key: sf.formatKey("esc"), Action: "Cancel"},
	}
}

// GetNotificationHints returns dropdown shortcuts
func (sf *ShortcutFormatter) GetNotificationHints() []ShortcutHint {
	kb := sf.config.KeyBindings
	return []ShortcutHint{
		{Key: sf.formatKeys(kb.MoveUp) + "/" + sf.formatKeys(kb.MoveDown), Action: "Navigate"},
		{Key: sf.formatKeys(kb.Select), Action: "Open"},
		{Key: sf.formatKey("esc"), Action: "Close"},
	}
}

// GetProfileHints returns profile modal shortcuts
func (sf *ShortcutFormatter) GetProfileHints() []ShortcutHint {
	return []ShortcutHint{
		{Key: sf.formatKey("tab"), Action: "Next Field"},
		{Key: sf.formatKey("enter"), Action: "Save"},
		{Key: sf.formatKey("esc"), Action: "Cancel"},
	}
}

// GetContextualHints returns shortcuts for whatever currently takes input
func (sf *ShortcutFormatter) GetContextualHints(m *Model) string {
	switch {
	case m.profile.IsOpen():
		return sf.FormatHints(sf.GetProfileHints())
	case m.notify.IsOpen():
		return sf.FormatHints(sf.GetNotificationHints())
	case m.focus == FocusSearch:
		return sf.FormatHints(sf.GetSearchHints())
	case m.focus == FocusComment:
		return sf.FormatHints(sf.GetCommentHints())
	case m.onDetailPage():
		return sf.FormatHints(sf.GetDetailHints())
	default:
		return sf.FormatHints(sf.GetHomeHints())
	}
}

// GetEmptyStateHint returns a hint for empty states
func (sf *ShortcutFormatter) GetEmptyStateHint(action string, key string) string {
	return fmt.Sprintf("Press '%s' to %s", sf.formatKey(key), action)
}
