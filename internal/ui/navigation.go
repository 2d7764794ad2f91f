package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/router"
)

// cardHeight is the number of lines a grid card takes, spacing included
const cardHeight = 4

// moveUp moves the selection of the focused list up one step. In the grid
// a step is one row.
func (m *Model) moveUp() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusSidebar:
		if m.sidebarIndex > 0 {
			m.sidebarIndex--
		}
	case FocusGrid:
		if m.selectedIndex-m.gridColumns >= 0 {
			m.selectedIndex -= m.gridColumns
			m.adjustScroll()
		}
	case FocusDetail:
		if m.detailIndex > 0 {
			m.detailIndex--
			m.adjustDetailScroll()
		}
	}
	return m, nil
}

// moveDown moves the selection of the focused list down one step
func (m *Model) moveDown() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusSidebar:
		if m.sidebarIndex < len(m.catalog.Sidebar)-1 {
			m.sidebarIndex++
		}
	case FocusGrid:
		if m.selectedIndex+m.gridColumns <= m.getMaxIndex() {
			m.selectedIndex += m.gridColumns
			m.adjustScroll()
		}
	case FocusDetail:
		if m.detailIndex < len(m.recommended())-1 {
			m.detailIndex++
			m.adjustDetailScroll()
		}
	}
	return m, nil
}

func (m *Model) moveLeft() (tea.Model, tea.Cmd) {
	if m.selectedIndex > 0 {
		m.selectedIndex--
		m.adjustScroll()
	}
	return m, nil
}

func (m *Model) moveRight() (tea.Model, tea.Cmd) {
	if m.selectedIndex < m.getMaxIndex() {
		m.selectedIndex++
		m.adjustScroll()
	}
	return m, nil
}

// jumpToTop moves selection to the first item.
func (m *Model) jumpToTop() (tea.Model, tea.Cmd) {
	if m.focus == FocusSidebar {
		m.sidebarIndex = 0
		return m, nil
	}
	m.selectedIndex = 0
	m.scrollOffset = 0
	return m, nil
}

// jumpToBottom moves selection to the last item.
func (m *Model) jumpToBottom() (tea.Model, tea.Cmd) {
	if m.focus == FocusSidebar {
		m.sidebarIndex = max(0, len(m.catalog.Sidebar)-1)
		return m, nil
	}
	m.selectedIndex = m.getMaxIndex()
	m.adjustScroll()
	return m, nil
}

// pageUp moves selection up by one screen of grid rows.
func (m *Model) pageUp() (tea.Model, tea.Cmd) {
	m.selectedIndex = max(0, m.selectedIndex-m.getVisibleRows()*m.gridColumns)
	m.adjustScroll()
	return m, nil
}

// pageDown moves selection down by one screen of grid rows.
func (m *Model) pageDown() (tea.Model, tea.Cmd) {
	m.selectedIndex = min(m.getMaxIndex(), m.selectedIndex+m.getVisibleRows()*m.gridColumns)
	m.adjustScroll()
	return m, nil
}

// navigateBack leaves the video page, or hands focus back to the grid
func (m *Model) navigateBack() (tea.Model, tea.Cmd) {
	logger.Debug("navigateBack called: route=%s, focus=%s", m.route.View, m.focus)

	switch {
	case m.onDetailPage():
		m.systems.Location.Navigate(router.HomeFragment)
	case m.focus != FocusGrid:
		m.setFocus(FocusGrid)
	default:
		logger.Debug("navigateBack: already home, ignoring")
	}
	return m, nil
}

// goHome resets the category and query and returns to the grid
func (m *Model) goHome() (tea.Model, tea.Cmd) {
	m.category = constants.CategoryAll
	m.query = ""
	m.sidebarIndex = m.sidebarIndexOf(constants.CategoryAll)
	m.selectedIndex = 0
	m.scrollOffset = 0
	m.setFocus(FocusGrid)
	m.systems.Location.Navigate(router.HomeFragment)
	return m, nil
}

func (m *Model) startSearch() (tea.Model, tea.Cmd) {
	m.setFocus(FocusSearch)
	if m.onDetailPage() {
		m.systems.Location.Navigate(router.HomeFragment)
	}
	return m, nil
}

// setQuery changes the search query and resets the grid selection
func (m *Model) setQuery(q string) {
	m.query = q
	m.selectedIndex = 0
	m.scrollOffset = 0
}

func (m *Model) sidebarIndexOf(id string) int {
	for i, item := range m.catalog.Sidebar {
		if item.ID == id {
			return i
		}
	}
	return 0
}

// getMaxIndex returns the last selectable grid index
func (m *Model) getMaxIndex() int {
	return max(0, len(m.visibleVideos())-1)
}

// getVisibleRows returns how many card rows fit in the content area
func (m *Model) getVisibleRows() int {
	return max(1, (m.contentHeight-2)/cardHeight)
}

// adjustScroll keeps the selected card's row on screen
func (m *Model) adjustScroll() {
	if m.gridColumns < 1 {
		m.gridColumns = 1
	}
	row := m.selectedIndex / m.gridColumns
	rows := m.getVisibleRows()

	if row < m.scrollOffset {
		m.scrollOffset = row
	} else if row >= m.scrollOffset+rows {
		m.scrollOffset = row - rows + 1
	}
}

// adjustDetailScroll keeps the selected recommendation on screen
func (m *Model) adjustDetailScroll() {
	visible := max(1, min(constants.MaxRecommended, m.contentHeight-constants.ScrollPadding*2))
	if m.detailIndex < m.detailScroll {
		m.detailScroll = m.detailIndex
	} else if m.detailIndex >= m.detailScroll+visible {
		m.detailScroll = m.detailIndex - visible + 1
	}
}
