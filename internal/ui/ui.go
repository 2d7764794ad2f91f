package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/haryoiro/ytfront/internal/catalog"
	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/detail"
	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/notify"
	"github.com/haryoiro/ytfront/internal/profile"
	"github.com/haryoiro/ytfront/internal/router"
	"github.com/haryoiro/ytfront/internal/structures"
	"github.com/haryoiro/ytfront/internal/systems"
)

func init() {
	runewidth.DefaultCondition.EastAsianWidth = false
}

type Model struct {
	systems           *systems.Systems
	config            *structures.Config
	themeManager      *ThemeManager
	shortcutFormatter *ShortcutFormatter
	keyDebouncer      *KeyDebouncer
	printer           *message.Printer
	width             int
	height            int
	contentHeight     int

	// Root state
	catalog  structures.Catalog
	user     structures.User
	loading  bool
	err      error
	category string
	query    string
	route    router.Route
	focus    FocusPane

	// Home page
	sidebarIndex  int
	selectedIndex int
	scrollOffset  int
	gridColumns   int

	// Video page
	detail         *detail.State
	detailIndex    int
	detailScroll   int
	commentInput   string
	commentMessage string

	// Overlays
	notify      *notify.Center
	notifyIndex int
	profile     *profile.Editor

	// Background sources
	catalogCh   chan catalog.Result
	routeCh     chan string
	stopLoad    func()
	unsubscribe func()

	lastScrollTime time.Time
	scrollCooldown time.Duration
}

type catalogLoadedMsg catalog.Result
type routeChangedMsg string

// NewModel builds the root model. The catalog load and the route
// subscription start in Init.
func NewModel(s *systems.Systems) *Model {
	m := &Model{
		systems:           s,
		config:            s.Config,
		themeManager:      NewThemeManager(s.Config.Theme),
		shortcutFormatter: NewShortcutFormatter(s.Config),
		keyDebouncer:      NewKeyDebouncer(),
		printer:           message.NewPrinter(language.English),
		catalog:           structures.EmptyCatalog(),
		loading:           true,
		category:          constants.CategoryAll,
		route:             s.Location.Route(),
		notify:            notify.New(s.Store, s.Location, nil),
		profile:           profile.New(s.Store),
		catalogCh:         make(chan catalog.Result, 1),
		routeCh:           make(chan string, 16),
		gridColumns:       1,
		scrollCooldown:    20 * time.Millisecond,
	}
	m.focus = m.defaultFocus()
	return m
}

// Run starts the program and blocks until the user quits
func Run(s *systems.Systems) error {
	m := NewModel(s)
	defer m.shutdown()

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !s.Config.DisableAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	m.unsubscribe = m.systems.Location.Subscribe(func(hash string) {
		// Update reads the current location, so a dropped event loses nothing
		select {
		case m.routeCh <- hash:
		default:
		}
	})
	m.stopLoad = m.systems.Loader.Start(context.Background(), func(r catalog.Result) {
		m.catalogCh <- r
	})

	return tea.Batch(
		waitForCatalog(m.catalogCh),
		waitForRoute(m.routeCh),
	)
}

// shutdown stops the catalog load and the route subscription. It is safe
// to call more than once.
func (m *Model) shutdown() {
	if m.stopLoad != nil {
		m.stopLoad()
		m.stopLoad = nil
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.shutdown()
	return m, tea.Quit
}

func waitForCatalog(ch <-chan catalog.Result) tea.Cmd {
	return func() tea.Msg {
		return catalogLoadedMsg(<-ch)
	}
}

func waitForRoute(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return routeChangedMsg(<-ch)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contentHeight = max(1, m.height-constants.HeaderHeight-1)
		m.gridColumns = gridColumnsFor(m.gridWidth(m.width) - 4)
		m.adjustScroll()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case catalogLoadedMsg:
		m.applyCatalog(catalog.Result(msg))
		return m, nil

	case routeChangedMsg:
		logger.Debug("Route changed to %s", string(msg))
		m.applyRoute(m.systems.Location.Route())
		return m, waitForRoute(m.routeCh)
	}

	return m, nil
}

// applyCatalog installs a finished load. The video page is rebuilt since
// its video may only now be resolvable.
func (m *Model) applyCatalog(r catalog.Result) {
	m.loading = false
	m.err = r.Err
	m.catalog = r.Catalog
	m.user = r.Catalog.User
	m.notify.Reset(r.Catalog.Notifications)
	m.sidebarIndex = 0
	for i, item := range m.catalog.Sidebar {
		if item.ID == m.category {
			m.sidebarIndex = i
			break
		}
	}
	m.selectedIndex = 0
	m.scrollOffset = 0
	m.applyRoute(m.systems.Location.Route())
}

// applyRoute switches the page to match route
func (m *Model) applyRoute(route router.Route) {
	m.route = route
	m.commentInput = ""
	m.commentMessage = ""
	m.detailIndex = 0
	m.detailScroll = 0

	if route.View == router.DetailView {
		m.detail = m.systems.OpenVideo(m.catalog.Videos, route.VideoID)
	} else {
		m.detail = nil
	}

	if m.focus != FocusSearch {
		m.setFocus(m.defaultFocus())
	}
}

func (m *Model) onDetailPage() bool {
	return m.route.View == router.DetailView
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := m.renderHeader(m.width)
	footer := m.themeManager.RenderHelp(truncate(m.shortcutFormatter.GetContextualHints(m), m.width))
	bodyHeight := max(1, m.height-lipgloss.Height(header)-1)

	var body string
	switch {
	case m.profile.IsOpen():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.renderProfile())
	case m.onDetailPage():
		body = m.renderDetail(m.width, bodyHeight)
	default:
		body = m.renderHome(m.width, bodyHeight)
	}

	if m.notify.IsOpen() && !m.profile.IsOpen() {
		dropdown := m.renderNotifications()
		mainWidth := max(0, m.width-lipgloss.Width(dropdown))
		body = lipgloss.JoinHorizontal(lipgloss.Top, clipBlock(body, mainWidth, bodyHeight), dropdown)
	}

	body = clipBlock(body, m.width, bodyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// clipBlock cuts a rendered block to at most width columns and height lines
func clipBlock(block string, width, height int) string {
	lines := strings.Split(block, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
