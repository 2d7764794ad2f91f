package router

import (
	"regexp"
	"sync"
)

// View selects which page the root renders
type View int

const (
	HomeView View = iota
	DetailView
)

func (v View) String() string {
	switch v {
	case HomeView:
		return "home"
	case DetailView:
		return "detail"
	}
	return "unknown"
}

// HomeFragment is the fragment the app starts on and returns to
const HomeFragment = "#/"

var videoRoute = regexp.MustCompile(`^#?/video/(.+)$`)

// Route is the parsed form of a location fragment
type Route struct {
	View    View
	VideoID string
}

// Parse maps "#/video/<id>" (the leading '#' is optional) to the detail
// view. Everything else, including the empty string, is home.
func Parse(fragment string) Route {
	if m := videoRoute.FindStringSubmatch(fragment); m != nil {
		return Route{View: DetailView, VideoID: m[1]}
	}
	return Route{View: HomeView}
}

// VideoFragment returns the fragment for a video's detail page
func VideoFragment(id string) string {
	return "#/video/" + id
}

// Location holds the current fragment and tells subscribers when it changes
type Location struct {
	mu        sync.Mutex
	hash      string
	listeners map[int]func(string)
	nextID    int
}

// NewLocation starts at initial, or HomeFragment if initial is empty
func NewLocation(initial string) *Location {
	if initial == "" {
		initial = HomeFragment
	}
	return &Location{
		hash:      initial,
		listeners: make(map[int]func(string)),
	}
}

// Hash returns the current fragment
func (l *Location) Hash() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hash
}

// Route parses the current fragment
func (l *Location) Route() Route {
	return Parse(l.Hash())
}

// Navigate sets the fragment. Listeners run synchronously, outside the
// lock, and only when the value actually changed.
func (l *Location) Navigate(fragment string) {
	if fragment == "" {
		fragment = HomeFragment
	}

	l.mu.Lock()
	if l.hash == fragment {
		l.mu.Unlock()
		return
	}
	l.hash = fragment
	fns := make([]func(string), 0, len(l.listeners))
	for _, fn := range l.listeners {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(fragment)
	}
}

// Subscribe registers fn for change events. The returned func removes it
// and is safe to call more than once.
func (l *Location) Subscribe(fn func(string)) (unsubscribe func()) {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.listeners, id)
			l.mu.Unlock()
		})
	}
}

// Listeners returns the number of active subscriptions
func (l *Location) Listeners() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.listeners)
}
