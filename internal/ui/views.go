package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/profile"
	"github.com/haryoiro/ytfront/internal/structures"
)

// cardWidth is the column width of one grid card
const cardWidth = 32

// gridColumnsFor returns how many cards fit side by side in width
func gridColumnsFor(width int) int {
	return max(1, width/cardWidth)
}

// gridWidth is the width left for the grid next to the sidebar
func (m *Model) gridWidth(width int) int {
	if m.showSidebar(width) {
		return width - constants.SidebarWidth
	}
	return width
}

func (m *Model) showSidebar(width int) bool {
	return width >= constants.SidebarWidth+constants.MinContentWidth
}

func (m *Model) renderHeader(width int) string {
	tm := m.themeManager
	box := tm.BorderStyle(m.hasFocus(FocusSearch)).Padding(0, 1)
	inner := max(0, width-box.GetHorizontalFrameSize())

	title := tm.AccentStyle().Bold(true).Render(constants.AppName)

	bell := BellIcon
	if n := m.notify.UnreadCount(); n > 0 {
		bell += tm.UnreadStyle().Render(" " + m.printer.Sprintf("%d", n))
	}

	name := m.user.Name
	if name == "" {
		name = m.config.AnonymousName
	}
	right := bell + "  " + tm.BaseStyle().Render(truncate(name, 16))

	searchWidth := max(8, inner-lipgloss.Width(title)-lipgloss.Width(right)-4)
	search := m.renderSearchBox(searchWidth)

	line := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", search, "  ", right)
	return box.Width(inner + box.GetHorizontalPadding()).Render(clipBlock(line, inner, 1))
}

func (m *Model) renderSearchBox(width int) string {
	tm := m.themeManager
	if m.focus == FocusSearch {
		return tm.SelectedStyle().Render(padToWidth(truncateLeft("Search: "+m.query+CursorGlyph, width), width))
	}
	if m.query == "" {
		hint := m.shortcutFormatter.GetEmptyStateHint("search", m.config.KeyBindings.Search)
		return tm.SubtitleStyle().Render(padToWidth(truncate(hint, width), width))
	}
	return tm.BaseStyle().Render(padToWidth(truncate("Search: "+m.query, width), width))
}

func (m *Model) renderHome(width, height int) string {
	grid := m.renderGrid(m.gridWidth(width), height)
	if !m.showSidebar(width) {
		return grid
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(height), grid)
}

func (m *Model) renderSidebar(height int) string {
	tm := m.themeManager
	box := tm.BorderStyle(m.hasFocus(FocusSidebar))
	inner := constants.SidebarWidth - box.GetHorizontalFrameSize()

	var b strings.Builder
	for i, item := range m.catalog.Sidebar {
		label := truncate(item.Label, inner-BulletWidth)
		prefix := "  "
		if i == m.sidebarIndex && m.focus == FocusSidebar {
			prefix = SelectedGlyph
		}

		line := padToWidth(prefix+label, inner)
		switch {
		case i == m.sidebarIndex && m.focus == FocusSidebar:
			line = tm.RenderSelected(line)
		case item.ID == m.category:
			line = tm.RenderActive(line)
		default:
			line = tm.BaseStyle().Render(line)
		}

		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}

	return framed(box, inner, max(1, height-box.GetVerticalFrameSize()), b.String())
}

func (m *Model) renderGrid(width, height int) string {
	tm := m.themeManager
	box := tm.BorderStyle(m.hasFocus(FocusGrid)).Padding(0, 1)
	inner := max(1, width-box.GetHorizontalFrameSize())
	innerHeight := max(1, height-box.GetVerticalFrameSize())

	var b strings.Builder
	b.WriteString(tm.RenderTitle(m.categoryLabel()))
	if m.query != "" {
		b.WriteString(tm.RenderSubtitle(fmt.Sprintf("  matching %q", m.query)))
	}
	b.WriteString("\n\n")

	videos := m.visibleVideos()
	switch {
	case m.loading:
		b.WriteString(tm.RenderSubtitle("Loading catalog..."))
	case m.err != nil && len(m.catalog.Videos) == 0:
		b.WriteString(tm.ErrorStyle().Render(truncate(fmt.Sprintf("Could not load catalog: %v", m.err), inner)))
	case len(videos) == 0:
		b.WriteString(tm.RenderSubtitle("No videos found"))
	default:
		b.WriteString(m.renderCards(videos, inner, innerHeight-2))
	}

	return framed(box, inner, innerHeight, clipBlock(b.String(), inner, innerHeight))
}

// renderCards lays the visible rows of cards out in columns
func (m *Model) renderCards(videos []structures.Video, width, height int) string {
	cols := max(1, m.gridColumns)
	colWidth := max(1, width/cols)
	rows := max(1, height/cardHeight)

	var out []string
	for row := m.scrollOffset; row < m.scrollOffset+rows; row++ {
		start := row * cols
		if start >= len(videos) {
			break
		}

		cards := make([]string, 0, cols)
		for i := start; i < min(start+cols, len(videos)); i++ {
			cards = append(cards, m.renderCard(videos[i], colWidth, i == m.selectedIndex))
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderCard(v structures.Video, width int, selected bool) string {
	tm := m.themeManager
	textWidth := max(1, width-BulletWidth-1)

	prefix := "  "
	titleStyle := tm.TitleStyle()
	if selected && m.focus == FocusGrid {
		prefix = SelectedGlyph
		titleStyle = tm.SelectedStyle()
	}

	lines := []string{
		titleStyle.Render(padToWidth(prefix+truncate(v.Title, textWidth), width)),
		tm.BaseStyle().Render(padToWidth("  "+truncate(v.Author, textWidth), width)),
		tm.SubtitleStyle().Render(padToWidth("  "+truncate(m.viewsLine(v), textWidth), width)),
		strings.Repeat(" ", width),
	}
	return strings.Join(lines, "\n")
}

// viewsLine renders "views • age"
func (m *Model) viewsLine(v structures.Video) string {
	views := m.formatViews(v.Views)
	switch {
	case views == "":
		return v.Age
	case v.Age == "":
		return views
	default:
		return views + Separator + v.Age
	}
}

// formatViews adds thousands separators to numeric view counts and keeps
// preformatted ones as they are
func (m *Model) formatViews(views structures.Text) string {
	s := strings.TrimSpace(string(views))
	if s == "" {
		return ""
	}
	if n, err := strconv.Atoi(s); err == nil {
		return m.printer.Sprintf("%d views", n)
	}
	if strings.HasSuffix(strings.ToLower(s), "views") {
		return s
	}
	return s + " views"
}

func (m *Model) formatCount(n int) string {
	return m.printer.Sprintf("%d", n)
}

func (m *Model) renderDetail(width, height int) string {
	tm := m.themeManager
	box := tm.BorderStyle(m.hasFocus(FocusDetail) || m.hasFocus(FocusComment)).Padding(0, 1)
	inner := max(1, width-box.GetHorizontalFrameSize())
	innerHeight := max(1, height-box.GetVerticalFrameSize())

	if m.loading {
		return framed(box, inner, innerHeight, tm.RenderSubtitle("Loading catalog..."))
	}
	if m.detail == nil || !m.detail.Found() {
		msg := tm.RenderTitle("Video not found") + "\n\n" +
			tm.RenderHelp(m.shortcutFormatter.GetEmptyStateHint("go back", firstOr(m.config.KeyBindings.Back, "esc")))
		return framed(box, inner, innerHeight, msg)
	}

	recWidth := 0
	if inner >= 90 {
		recWidth = 36
	}
	mainWidth := inner - recWidth

	main := m.renderVideoInfo(mainWidth) + "\n\n" + m.renderComments(mainWidth)
	if recWidth == 0 {
		main += "\n\n" + m.renderRecommended(mainWidth)
		return framed(box, inner, innerHeight, clipBlock(main, inner, innerHeight))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(mainWidth).Render(main),
		m.renderRecommended(recWidth))
	return framed(box, inner, innerHeight, clipBlock(content, inner, innerHeight))
}

func (m *Model) renderVideoInfo(width int) string {
	tm := m.themeManager
	d := m.detail
	v := d.Video()

	subscribe := "[Subscribe]"
	if d.Subscribed() {
		subscribe = "[Subscribed]"
	}
	channel := fmt.Sprintf("%s%s%s subscribers  ", v.Author, Separator, m.formatCount(d.SubCount()))

	counts := d.Counts()
	like := fmt.Sprintf("%s %s", LikeIcon, m.formatCount(counts.Likes))
	dislike := fmt.Sprintf("%s %s", DislikeIcon, m.formatCount(counts.Dislikes))

	lines := []string{
		tm.RenderTitle(truncate(v.Title, width)),
		tm.RenderSubtitle(truncate(m.viewsLine(v), width)),
		"",
		tm.BaseStyle().Render(truncate(channel, width-runewidth.StringWidth(subscribe))) + tm.RenderToggle(subscribe, d.Subscribed()),
		tm.RenderToggle(like, d.Liked()) + "   " + tm.RenderToggle(dislike, d.Disliked()),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderComments(width int) string {
	tm := m.themeManager
	comments := m.detail.Comments()

	var b strings.Builder
	b.WriteString(tm.RenderTitle(fmt.Sprintf("Comments (%s)", m.formatCount(len(comments)))))
	b.WriteString("\n")

	if m.focus == FocusComment {
		input := truncateLeft("> "+m.commentInput+CursorGlyph, width)
		b.WriteString(tm.SelectedStyle().Render(input))
	} else {
		b.WriteString(tm.RenderHelp(m.shortcutFormatter.GetEmptyStateHint("comment", m.config.KeyBindings.Comment)))
	}
	if m.commentMessage != "" {
		b.WriteString("\n" + tm.ErrorStyle().Render(m.commentMessage))
	}
	b.WriteString("\n")

	for _, c := range comments {
		line := tm.AccentStyle().Render(c.Username) + tm.BaseStyle().Render(": "+c.Text)
		b.WriteString("\n")
		b.WriteString(clipBlock(line, width, 1))
	}
	return b.String()
}

func (m *Model) renderRecommended(width int) string {
	tm := m.themeManager
	recs := m.recommended()

	var b strings.Builder
	b.WriteString(tm.RenderTitle("Recommended"))
	if len(recs) == 0 {
		b.WriteString("\n" + tm.RenderSubtitle("Nothing else to watch"))
		return b.String()
	}

	end := min(len(recs), m.detailScroll+constants.MaxRecommended)
	for i := m.detailScroll; i < end; i++ {
		v := recs[i]
		prefix := "  "
		title := tm.BaseStyle()
		if i == m.detailIndex && m.focus == FocusDetail {
			prefix = SelectedGlyph
			title = tm.SelectedStyle()
		}
		b.WriteString("\n")
		b.WriteString(title.Render(prefix + truncate(v.Title, width-BulletWidth)))
		b.WriteString("\n")
		b.WriteString(tm.RenderSubtitle("  " + truncate(v.Author+Separator+m.viewsLine(v), width-BulletWidth)))
	}
	if end < len(recs) {
		b.WriteString("\n" + tm.RenderSubtitle(fmt.Sprintf("  +%d more", len(recs)-end)))
	}
	return b.String()
}

func (m *Model) renderNotifications() string {
	tm := m.themeManager
	box := tm.BorderStyle(true).Padding(0, 1)
	inner := constants.DropdownWidth - box.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(tm.RenderTitle("Notifications"))

	items := m.notify.Items()
	if len(items) == 0 {
		b.WriteString("\n\n" + tm.RenderSubtitle("No notifications"))
	}
	for i, n := range items {
		marker := "  "
		if n.Unread {
			marker = tm.UnreadStyle().Render("● ")
		}
		title := tm.BaseStyle()
		if i == m.notifyIndex {
			title = tm.SelectedStyle()
		}
		b.WriteString("\n\n")
		b.WriteString(marker + title.Render(truncate(n.Title, inner-2)))
		b.WriteString("\n")
		b.WriteString(tm.RenderSubtitle("  " + truncate(n.From+Separator+n.Time, inner-2)))
	}

	return box.Width(inner + box.GetHorizontalPadding()).Render(b.String())
}

func (m *Model) renderProfile() string {
	tm := m.themeManager
	box := tm.BorderStyle(true).Padding(1, 2)
	inner := constants.ProfileWidth - box.GetHorizontalFrameSize()
	labelWidth := 8

	var b strings.Builder
	b.WriteString(tm.RenderTitle("Edit profile"))
	b.WriteString("\n")

	for _, f := range profile.Fields {
		value := m.profile.Field(f)
		focused := m.profile.Focus() == f

		display := value
		if f == profile.Avatar && value == "" && !focused {
			display = constants.DefaultAvatar
		}

		label := padToWidth(profileFieldLabel(f), labelWidth)
		b.WriteString("\n")
		if focused {
			b.WriteString(tm.RenderSelected(label + truncateLeft(display+CursorGlyph, inner-labelWidth)))
		} else if f == profile.Avatar && value == "" {
			b.WriteString(tm.BaseStyle().Render(label) + tm.RenderSubtitle(truncate(display, inner-labelWidth)))
		} else {
			b.WriteString(tm.BaseStyle().Render(label + truncate(display, inner-labelWidth)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(tm.RenderHelp(m.shortcutFormatter.FormatHints(m.shortcutFormatter.GetProfileHints())))
	return box.Width(inner + box.GetHorizontalPadding()).Render(b.String())
}

// framed renders content in box sized so the content area is exactly
// width by height
func framed(box lipgloss.Style, width, height int, content string) string {
	return box.
		Width(width + box.GetHorizontalPadding()).
		Height(height + box.GetVerticalPadding()).
		Render(content)
}

func firstOr(keys []string, def string) string {
	if len(keys) == 0 {
		return def
	}
	return keys[0]
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= EllipsisWidth {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// truncateLeft keeps the end of s, which is where the cursor is
func truncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	runes := []rune(s)
	for runewidth.StringWidth(string(runes)) > maxWidth && len(runes) > 0 {
		runes = runes[1:]
	}
	return string(runes)
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	currentWidth := runewidth.StringWidth(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}
