package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/haryoiro/ytfront/internal/constants"
)

// handleMouseEvent maps the wheel to list movement and clicks to the
// sidebar and the grid
func (m *Model) handleMouseEvent(mouse tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.profile.IsOpen() || m.notify.IsOpen() {
		return m, nil
	}

	if mouse.Action != tea.MouseActionPress {
		return m, nil
	}

	switch mouse.Button {
	case tea.MouseButtonLeft:
		return m.handleMouseClick(mouse.X, mouse.Y)
	case tea.MouseButtonWheelUp:
		if !m.scrollAllowed() {
			return m, nil
		}
		return m.moveUp()
	case tea.MouseButtonWheelDown:
		if !m.scrollAllowed() {
			return m, nil
		}
		return m.moveDown()
	}
	return m, nil
}

// scrollAllowed throttles wheel events
func (m *Model) scrollAllowed() bool {
	now := time.Now()
	if now.Sub(m.lastScrollTime) < m.scrollCooldown {
		return false
	}
	m.lastScrollTime = now
	return true
}

// handleMouseClick activates the sidebar entry or selects the grid card
// under the pointer
func (m *Model) handleMouseClick(x, y int) (tea.Model, tea.Cmd) {
	if m.onDetailPage() {
		return m, nil
	}

	// Rows below the header start inside the pane border
	row := y - constants.HeaderHeight - 1
	if row < 0 {
		m.setFocus(FocusSearch)
		return m, nil
	}

	if m.showSidebar(m.width) && x < constants.SidebarWidth {
		m.setFocus(FocusSidebar)
		if row < len(m.catalog.Sidebar) {
			return m.activateSidebar(row)
		}
		return m, nil
	}

	// Grid content starts after its title line and a blank line
	gridX := x - 2
	if m.showSidebar(m.width) {
		gridX -= constants.SidebarWidth
	}
	gridRow := row - 2
	if gridRow < 0 || gridX < 0 {
		return m, nil
	}

	colWidth := max(1, (m.gridWidth(m.width)-4)/max(1, m.gridColumns))
	col := min(gridX/colWidth, m.gridColumns-1)
	idx := (m.scrollOffset+gridRow/cardHeight)*m.gridColumns + col
	if idx > m.getMaxIndex() || len(m.visibleVideos()) == 0 {
		return m, nil
	}

	m.setFocus(FocusGrid)
	if idx == m.selectedIndex {
		return m.handleEnter()
	}
	m.selectedIndex = idx
	m.adjustScroll()
	return m, nil
}
