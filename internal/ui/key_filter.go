package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// getKeyString converts a tea.KeyMsg to a unique string identifier
func getKeyString(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyUp:
		return "up"
	case tea.KeyDown:
		return "down"
	case tea.KeyLeft:
		return "left"
	case tea.KeyRight:
		return "right"
	case tea.KeyPgUp:
		return "pgup"
	case tea.KeyPgDown:
		return "pgdown"
	case tea.KeyEnter:
		return "enter"
	case tea.KeySpace:
		return "space"
	case tea.KeyTab:
		return "tab"
	case tea.KeyBackspace:
		return "backspace"
	case tea.KeyEsc:
		return "esc"
	default:
		return msg.String()
	}
}

// shouldProcessKey applies debouncing to navigation and toggle keys.
// Typed text is never rate-limited.
func (m *Model) shouldProcessKey(keyStr string, msg tea.KeyMsg) bool {
	if m.isTextInput() && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace || msg.Type == tea.KeyBackspace) {
		return true
	}

	switch keyStr {
	case "enter", "tab", "esc", "backspace":
		return true
	case "up", "down", "left", "right", "pgup", "pgdown":
		return m.keyDebouncer.ShouldProcess(keyStr)
	}

	if isNavigationKey(keyStr) {
		return m.keyDebouncer.ShouldProcess(keyStr)
	}

	// A held toggle key must not flip the vote back and forth
	kb := m.config.KeyBindings
	switch keyStr {
	case kb.Like, kb.Dislike, kb.Subscribe:
		return m.keyDebouncer.ShouldProcess("toggle:" + keyStr)
	}

	return true
}

// isNavigationKey returns true if the key is a navigation key
func isNavigationKey(keyStr string) bool {
	switch keyStr {
	case "up", "down", "left", "right", "pgup", "pgdown", "home", "end":
		return true
	case "j", "k":
		return true
	case "g", "G":
		return true
	}
	return false
}
