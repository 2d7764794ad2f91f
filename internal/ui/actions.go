package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/filter"
	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/router"
	"github.com/haryoiro/ytfront/internal/structures"
)

// handleEnter activates whatever is selected in the focused pane
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusSidebar:
		return m.activateSidebar(m.sidebarIndex)
	case FocusGrid:
		videos := m.visibleVideos()
		if m.selectedIndex >= 0 && m.selectedIndex < len(videos) {
			return m.openVideo(string(videos[m.selectedIndex].ID))
		}
	case FocusDetail:
		recs := m.recommended()
		if m.detailIndex >= 0 && m.detailIndex < len(recs) {
			return m.openVideo(string(recs[m.detailIndex].ID))
		}
	}
	return m, nil
}

// activateSidebar selects a category and shows the grid
func (m *Model) activateSidebar(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.catalog.Sidebar) {
		return m, nil
	}

	item := m.catalog.Sidebar[index]
	logger.Debug("Sidebar activated: %s", item.ID)
	m.sidebarIndex = index
	m.category = item.ID
	m.selectedIndex = 0
	m.scrollOffset = 0
	m.setFocus(FocusGrid)
	m.systems.Location.Navigate(router.HomeFragment)
	return m, nil
}

func (m *Model) openVideo(id string) (tea.Model, tea.Cmd) {
	logger.Debug("Opening video %s", id)
	m.systems.Location.Navigate(router.VideoFragment(id))
	return m, nil
}

// openNotification opens the notification under the dropdown cursor
func (m *Model) openNotification() (tea.Model, tea.Cmd) {
	items := m.notify.Items()
	if m.notifyIndex < 0 || m.notifyIndex >= len(items) {
		return m, nil
	}

	if n, ok := m.notify.Open(string(items[m.notifyIndex].ID)); ok {
		logger.Debug("Opened notification %s (video %q)", n.ID, n.VideoID)
	}
	m.notifyIndex = 0
	return m, nil
}

// submitComment posts the comment input as the current user
func (m *Model) submitComment() (tea.Model, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}

	if !m.detail.SubmitComment(m.commentInput, m.user.Name) {
		m.commentMessage = "Comment is empty"
		return m, nil
	}
	m.commentInput = ""
	m.commentMessage = ""
	m.setFocus(FocusDetail)
	return m, nil
}

// visibleVideos is the grid content for the current category and query
func (m *Model) visibleVideos() []structures.Video {
	return filter.Visible(m.systems.Store, m.catalog.Videos, m.category, m.query)
}

// recommended is the video page's recommendation list
func (m *Model) recommended() []structures.Video {
	if m.detail == nil || !m.detail.Found() {
		return nil
	}
	return m.detail.Recommended()
}

// categoryLabel names the active category for the grid title
func (m *Model) categoryLabel() string {
	for _, item := range m.catalog.Sidebar {
		if item.ID == m.category {
			return item.Label
		}
	}
	if m.category == constants.CategoryAll {
		return "Home"
	}
	return m.category
}
