package ui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haryoiro/ytfront/internal/catalog"
	"github.com/haryoiro/ytfront/internal/config"
	"github.com/haryoiro/ytfront/internal/database"
	"github.com/haryoiro/ytfront/internal/filter"
	"github.com/haryoiro/ytfront/internal/store"
	"github.com/haryoiro/ytfront/internal/structures"
	"github.com/haryoiro/ytfront/internal/systems"
)

func testCatalog() structures.Catalog {
	return structures.Catalog{
		Videos: []structures.Video{
			{ID: "a", Title: "Cats", Author: "Ann", Views: "1200", Age: "2 days ago", Categories: []string{"pets"}, Likes: 10},
			{ID: "b", Title: "Dogs", Author: "Bob", Views: "3.4M", Age: "1 week ago", Categories: []string{"pets"}},
			{ID: "c", Title: "Go tips", Author: "Cy", Categories: []string{"coding"}},
		},
		Sidebar: []structures.SidebarItem{
			{ID: "all", Label: "Home"},
			{ID: "pets", Label: "Pets"},
			{ID: "subscriptions", Label: "Subscriptions"},
		},
		Notifications: []structures.Notification{
			{ID: "1", Title: "Bob uploaded", From: "Bob", Time: "1h", VideoID: "b", Unread: true},
		},
		User: structures.User{Name: "Ann"},
	}
}

func newTestModel(t *testing.T, route string) *Model {
	t.Helper()
	s := systems.New(config.Default(), database.NewMemory(), "unused.json", route)
	m := NewModel(s)
	m.applyCatalog(catalog.Result{Catalog: testCatalog()})
	return m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// press feeds keys to the model and delivers the route change a real
// program would receive from the location subscription
func press(m *Model, keys ...string) {
	for _, k := range keys {
		before := m.systems.Location.Hash()
		m.Update(keyMsg(k))
		if hash := m.systems.Location.Hash(); hash != before {
			m.Update(routeChangedMsg(hash))
		}
	}
}

func TestHomeKeyResetsFiltersAndNavigates(t *testing.T) {
	m := newTestModel(t, "#/video/a")
	m.category = "pets"
	m.query = "cat"

	press(m, "h")

	if m.category != "all" || m.query != "" {
		t.Errorf("category/query = %q/%q, expected all/empty", m.category, m.query)
	}
	if got := m.systems.Location.Hash(); got != "#/" {
		t.Errorf("Hash() = %q, expected #/", got)
	}
	if m.onDetailPage() {
		t.Error("still on the video page")
	}
}

func TestSidebarActivationSetsCategory(t *testing.T) {
	m := newTestModel(t, "#/")

	press(m, "tab")
	if m.focus != FocusSidebar {
		t.Fatalf("focus = %s, expected sidebar", m.focus)
	}
	press(m, "down", "enter")

	if m.category != "pets" {
		t.Errorf("category = %q, expected pets", m.category)
	}
	if m.focus != FocusGrid {
		t.Errorf("focus = %s, expected grid", m.focus)
	}
	if got := filter.IDs(m.visibleVideos()); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("visible = %v", got)
	}
}

func TestSearchFiltersGrid(t *testing.T) {
	m := newTestModel(t, "#/")

	press(m, "/", "D", "o", "g")
	if m.query != "Dog" {
		t.Fatalf("query = %q", m.query)
	}
	if got := filter.IDs(m.visibleVideos()); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("visible = %v, expected [b]", got)
	}

	press(m, "backspace", "backspace", "backspace", "enter")
	if m.query != "" || m.focus != FocusGrid {
		t.Errorf("query/focus = %q/%s", m.query, m.focus)
	}
}

func TestVideoPageInteractions(t *testing.T) {
	m := newTestModel(t, "#/")

	press(m, "enter")
	if !m.onDetailPage() || m.detail == nil || !m.detail.Found() {
		t.Fatalf("route = %+v, expected video page of a", m.route)
	}

	press(m, "+")
	if !m.detail.Liked() || m.detail.Counts().Likes != 11 {
		t.Errorf("liked=%v likes=%d", m.detail.Liked(), m.detail.Counts().Likes)
	}

	press(m, "c", "h", "i", " ", "!", "enter")
	comments := m.detail.Comments()
	last := comments[len(comments)-1]
	if last.Username != "Ann" || last.Text != "hi !" {
		t.Errorf("last comment = %+v", last)
	}
	if m.focus != FocusDetail || m.commentInput != "" {
		t.Errorf("focus/input = %s/%q after posting", m.focus, m.commentInput)
	}

	press(m, "c", "enter")
	if m.commentMessage == "" {
		t.Error("empty comment gave no feedback")
	}
	press(m, "esc", "esc")
	if m.onDetailPage() {
		t.Error("Back did not leave the video page")
	}
}

func TestOpenNotificationNavigates(t *testing.T) {
	m := newTestModel(t, "#/")

	press(m, "n")
	if !m.notify.IsOpen() {
		t.Fatal("dropdown not open")
	}
	press(m, "enter")

	if m.notify.IsOpen() || m.notify.UnreadCount() != 0 {
		t.Errorf("open=%v unread=%d", m.notify.IsOpen(), m.notify.UnreadCount())
	}
	if m.route.VideoID != "b" {
		t.Errorf("route = %+v, expected video b", m.route)
	}
	saved := store.Get(m.systems.Store, store.NotificationsKey, []structures.Notification(nil))
	if len(saved) != 1 || saved[0].Unread {
		t.Errorf("persisted notifications = %+v", saved)
	}
}

func TestProfileSaveAndCancel(t *testing.T) {
	m := newTestModel(t, "#/")

	press(m, "p", "!", "esc")
	if m.user.Name != "Ann" {
		t.Errorf("cancel changed user to %+v", m.user)
	}

	press(m, "p", "!", "tab", "a", "@", "b", "enter")
	if m.user.Name != "Ann!" || m.user.Email != "a@b" {
		t.Errorf("user = %+v", m.user)
	}
	if saved := store.Get(m.systems.Store, store.UserKey, structures.User{}); saved != m.user {
		t.Errorf("persisted user = %+v", saved)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, "#/")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	for _, want := range []string{"ytfront", "Cats", "Dogs", "1,200 views", "Pets"} {
		if !strings.Contains(out, want) {
			t.Errorf("home view missing %q", want)
		}
	}

	m.systems.Location.Navigate("#/video/zzz")
	m.Update(routeChangedMsg("#/video/zzz"))
	if out := m.View(); !strings.Contains(out, "Video not found") {
		t.Error("unknown video did not render the not-found page")
	}
}

func TestViewIsStableAcrossFrames(t *testing.T) {
	m := newTestModel(t, "#/")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	before := lipgloss.Height(m.renderHeader(m.width))
	for i := 0; i < 3; i++ {
		if out := m.View(); lipgloss.Height(out) > m.height {
			t.Fatalf("frame %d is %d lines, taller than the %d line window", i, lipgloss.Height(out), m.height)
		}
	}
	if after := lipgloss.Height(m.renderHeader(m.width)); after != before || after != 3 {
		t.Errorf("header height %d before frames, %d after; expected 3", before, after)
	}

	m.systems.Location.Navigate("#/video/zzz")
	m.Update(routeChangedMsg("#/video/zzz"))
	for i := 0; i < 2; i++ {
		if out := m.View(); !strings.Contains(out, "Video not found") {
			t.Errorf("frame %d lost the not-found page", i)
		}
	}

	press(m, "n")
	m.View()
	press(m, "esc", "p")
	m.View()
	press(m, "esc")
	if out := m.View(); !strings.Contains(out, "Video not found") {
		t.Error("overlays left the page body cut off")
	}
}

func TestThemeStylesAreCopies(t *testing.T) {
	tm := NewThemeManager(config.Default().Theme)

	tm.BorderStyle(false).Height(20).Padding(0, 1)
	tm.BorderStyle(true).Width(50)
	tm.AccentStyle().Bold(true)

	if h := tm.BorderStyle(false).GetHeight(); h != 0 {
		t.Errorf("border height = %d after a caller resized its copy", h)
	}
	if p := tm.BorderStyle(false).GetHorizontalPadding(); p != 0 {
		t.Errorf("border padding = %d after a caller padded its copy", p)
	}
	if w := tm.BorderStyle(true).GetWidth(); w != 0 {
		t.Errorf("focused border width = %d after a caller resized its copy", w)
	}
	if tm.AccentStyle().GetBold() {
		t.Error("accent style became bold")
	}
}

func TestCommentsRenderInPostingOrder(t *testing.T) {
	m := newTestModel(t, "#/video/a")

	press(m, "c", "f", "i", "r", "s", "t", "enter")
	press(m, "c", "s", "e", "c", "o", "n", "d", "enter")

	out := m.renderComments(80)
	seed := strings.Index(out, "Great video!")
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	if seed < 0 || first < 0 || second < 0 {
		t.Fatalf("comments missing from %q", out)
	}
	if !(seed < first && first < second) {
		t.Errorf("comment order seed=%d first=%d second=%d, expected oldest first", seed, first, second)
	}
}

func TestViewBeforeCatalogLoads(t *testing.T) {
	s := systems.New(config.Default(), database.NewMemory(), "unused.json", "#/")
	m := NewModel(s)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if out := m.View(); !strings.Contains(out, "Loading catalog") {
		t.Error("pending load not shown")
	}
}

func TestFormatViews(t *testing.T) {
	m := newTestModel(t, "#/")

	tests := []struct {
		in       structures.Text
		expected string
	}{
		{"1200", "1,200 views"},
		{"3.4M", "3.4M views"},
		{"12K views", "12K views"},
		{"", ""},
	}
	for _, test := range tests {
		if got := m.formatViews(test.in); got != test.expected {
			t.Errorf("formatViews(%q) = %q, expected %q", test.in, got, test.expected)
		}
	}
}

func TestQuitStopsBackgroundWork(t *testing.T) {
	s := systems.New(config.Default(), database.NewMemory(), "missing.json", "#/")
	m := NewModel(s)
	m.Init()

	if s.Location.Listeners() != 1 {
		t.Fatalf("Listeners() = %d, expected 1", s.Location.Listeners())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Ctrl+C returned no command")
	}
	if s.Location.Listeners() != 0 {
		t.Errorf("Listeners() = %d after quit", s.Location.Listeners())
	}
	m.shutdown()
}
