package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/profile"
)

// isKey checks if the pressed key matches the configured keybinding
func (m *Model) isKey(msg tea.KeyMsg, key string) bool {
	if key == "" {
		return false
	}

	switch key {
	case "ctrl+c":
		return msg.Type == tea.KeyCtrlC
	case "ctrl+d":
		return msg.Type == tea.KeyCtrlD
	case "space":
		return msg.Type == tea.KeySpace
	case "enter":
		return msg.Type == tea.KeyEnter
	case "esc":
		return msg.Type == tea.KeyEsc
	case "backspace":
		return msg.Type == tea.KeyBackspace
	case "tab":
		return msg.Type == tea.KeyTab
	case "shift+tab":
		return msg.Type == tea.KeyShiftTab
	case "up":
		return msg.Type == tea.KeyUp
	case "down":
		return msg.Type == tea.KeyDown
	case "left":
		return msg.Type == tea.KeyLeft
	case "right":
		return msg.Type == tea.KeyRight
	case "pgup":
		return msg.Type == tea.KeyPgUp
	case "pgdown":
		return msg.Type == tea.KeyPgDown
	default:
		return msg.Type == tea.KeyRunes && msg.String() == key
	}
}

// isKeyInList checks if the pressed key matches any of the configured keybindings
func (m *Model) isKeyInList(msg tea.KeyMsg, bindings []string) bool {
	key := msg.String()

	// Mouse escape sequences can arrive as key runes
	if len(key) > 1 && (key[0] == '[' || key[0] == 27) {
		logger.Debug("Ignoring potential mouse escape sequence: %s", key)
		return false
	}

	for _, binding := range bindings {
		if m.isKey(msg, binding) {
			return true
		}
	}
	return false
}

// handleKeyPress routes a key to whichever part of the screen takes input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := m.config.KeyBindings

	if msg.Type == tea.KeyCtrlC || m.isKeyInList(msg, kb.Quit) {
		return m.quit()
	}

	keyStr := getKeyString(msg)
	if !m.shouldProcessKey(keyStr, msg) {
		return m, nil
	}

	switch {
	case m.profile.IsOpen():
		return m.handleProfileKeys(msg)
	case m.notify.IsOpen():
		return m.handleNotificationKeys(msg)
	case m.focus == FocusSearch:
		return m.handleSearchKeys(msg)
	case m.focus == FocusComment:
		return m.handleCommentKeys(msg)
	}

	// Global keys
	switch {
	case m.isKey(msg, kb.Home):
		return m.goHome()
	case m.isKey(msg, kb.Search):
		return m.startSearch()
	case m.isKey(msg, kb.Notifications):
		m.notify.Toggle()
		m.notifyIndex = 0
		return m, nil
	case m.isKey(msg, kb.Profile):
		m.profile.Begin(m.user)
		return m, nil
	case m.isKey(msg, kb.NextSection):
		m.cycleFocus(true)
		return m, nil
	case m.isKey(msg, kb.PrevSection):
		m.cycleFocus(false)
		return m, nil
	}

	if m.isKeyInList(msg, kb.Back) {
		if !m.keyDebouncer.Once("back", constants.BackKeyDebounce) {
			logger.Debug("Back key debounced: %s", msg.String())
			return m, nil
		}
		return m.navigateBack()
	}

	if m.onDetailPage() {
		return m.handleDetailKeys(msg)
	}
	return m.handleHomeKeys(msg)
}

// handleHomeKeys handles the sidebar and the grid
func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := m.config.KeyBindings

	switch {
	case m.isKeyInList(msg, kb.MoveUp):
		return m.moveUp()
	case m.isKeyInList(msg, kb.MoveDown):
		return m.moveDown()
	case m.isKey(msg, "left") && m.focus == FocusGrid:
		return m.moveLeft()
	case m.isKey(msg, "right") && m.focus == FocusGrid:
		return m.moveRight()
	case m.isKeyInList(msg, kb.Select):
		return m.handleEnter()
	}

	switch msg.String() {
	case "g", "home":
		return m.jumpToTop()
	case "G", "end":
		return m.jumpToBottom()
	case "pgup", "ctrl+b":
		return m.pageUp()
	case "pgdown", "ctrl+f":
		return m.pageDown()
	}
	return m, nil
}

// handleDetailKeys handles the video page
func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := m.config.KeyBindings
	if m.detail == nil || !m.detail.Found() {
		return m, nil
	}

	switch {
	case m.isKey(msg, kb.Like):
		m.detail.ToggleLike()
	case m.isKey(msg, kb.Dislike):
		m.detail.ToggleDislike()
	case m.isKey(msg, kb.Subscribe):
		m.detail.ToggleSubscribe()
	case m.isKey(msg, kb.Comment):
		m.setFocus(FocusComment)
		m.commentMessage = ""
	case m.isKeyInList(msg, kb.MoveUp):
		return m.moveUp()
	case m.isKeyInList(msg, kb.MoveDown):
		return m.moveDown()
	case m.isKeyInList(msg, kb.Select):
		return m.handleEnter()
	}
	return m, nil
}

// handleSearchKeys edits the header search box. The grid filters as the
// query changes.
func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeyTab:
		m.setFocus(m.defaultFocus())
	case tea.KeyShiftTab:
		m.cycleFocus(false)
	case tea.KeyBackspace:
		m.setQuery(dropLastRune(m.query))
	case tea.KeySpace:
		m.setQuery(m.query + " ")
	case tea.KeyRunes:
		m.setQuery(m.query + string(msg.Runes))
	}
	return m, nil
}

// handleCommentKeys edits the comment input on the video page
func (m *Model) handleCommentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitComment()
	case tea.KeyEsc:
		m.commentInput = ""
		m.setFocus(FocusDetail)
	case tea.KeyTab:
		m.cycleFocus(true)
	case tea.KeyShiftTab:
		m.cycleFocus(false)
	case tea.KeyBackspace:
		m.commentInput = dropLastRune(m.commentInput)
	case tea.KeySpace:
		m.appendComment(" ")
	case tea.KeyRunes:
		m.appendComment(string(msg.Runes))
	}
	return m, nil
}

func (m *Model) appendComment(s string) {
	if len([]rune(m.commentInput))+len([]rune(s)) > constants.MaxCommentLength {
		return
	}
	m.commentInput += s
}

// handleNotificationKeys drives the open notifications dropdown
func (m *Model) handleNotificationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := m.config.KeyBindings
	items := m.notify.Items()

	switch {
	case msg.Type == tea.KeyEsc || m.isKey(msg, kb.Notifications):
		m.notify.Close()
	case m.isKeyInList(msg, kb.MoveUp):
		if m.notifyIndex > 0 {
			m.notifyIndex--
		}
	case m.isKeyInList(msg, kb.MoveDown):
		if m.notifyIndex < len(items)-1 {
			m.notifyIndex++
		}
	case m.isKeyInList(msg, kb.Select):
		return m.openNotification()
	}
	return m, nil
}

// handleProfileKeys drives the profile modal
func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.user = m.profile.Save()
		logger.Info("Profile saved for %q", m.user.Name)
	case tea.KeyEsc:
		m.profile.Cancel()
	case tea.KeyTab, tea.KeyDown:
		m.profile.NextField()
	case tea.KeyShiftTab, tea.KeyUp:
		m.profile.PrevField()
	case tea.KeyBackspace:
		m.profile.Backspace()
	case tea.KeySpace:
		m.profile.Type([]rune{' '})
	case tea.KeyRunes:
		m.profile.Type(msg.Runes)
	}
	return m, nil
}

// profileFieldLabel is the label shown beside a profile field
func profileFieldLabel(f profile.Field) string {
	return f.String() + ":"
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
