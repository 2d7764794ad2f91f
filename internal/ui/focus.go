package ui

// FocusPane represents which pane currently has focus
type FocusPane int

const (
	FocusGrid FocusPane = iota
	FocusSidebar
	FocusSearch
	FocusDetail
	FocusComment
)

func (f FocusPane) String() string {
	switch f {
	case FocusGrid:
		return "grid"
	case FocusSidebar:
		return "sidebar"
	case FocusSearch:
		return "search"
	case FocusDetail:
		return "detail"
	case FocusComment:
		return "comment"
	default:
		return "unknown"
	}
}

// focusOrder lists the panes Tab cycles through on each page
func (m *Model) focusOrder() []FocusPane {
	if m.onDetailPage() {
		return []FocusPane{FocusDetail, FocusComment, FocusSearch}
	}
	return []FocusPane{FocusGrid, FocusSidebar, FocusSearch}
}

// cycleFocus moves focus to the next or previous pane of the page
func (m *Model) cycleFocus(forward bool) {
	order := m.focusOrder()
	idx := 0
	for i, pane := range order {
		if pane == m.focus {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(order)
	} else {
		idx = (idx + len(order) - 1) % len(order)
	}
	m.setFocus(order[idx])
}

func (m *Model) setFocus(pane FocusPane) {
	m.focus = pane
}

// hasFocus returns true if the specified pane has focus and no overlay
// is capturing input
func (m *Model) hasFocus(pane FocusPane) bool {
	if m.profile.IsOpen() || m.notify.IsOpen() {
		return false
	}
	return m.focus == pane
}

// isTextInput reports whether printable keys are typed into a field
func (m *Model) isTextInput() bool {
	return m.profile.IsOpen() || m.focus == FocusSearch || m.focus == FocusComment
}

// defaultFocus is the pane a page starts with
func (m *Model) defaultFocus() FocusPane {
	if m.onDetailPage() {
		return FocusDetail
	}
	return FocusGrid
}
