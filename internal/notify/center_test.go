package notify

import (
	"reflect"
	"testing"

	"github.com/haryoiro/ytfront/internal/database"
	"github.com/haryoiro/ytfront/internal/router"
	"github.com/haryoiro/ytfront/internal/store"
	"github.com/haryoiro/ytfront/internal/structures"
)

type recordingNav struct {
	fragments []string
}

func (r *recordingNav) Navigate(fragment string) {
	r.fragments = append(r.fragments, fragment)
}

func sample() []structures.Notification {
	return []structures.Notification{
		{ID: "1", Title: "New upload", From: "Ann", Time: "1h", VideoID: "a", Unread: true},
		{ID: "2", Title: "Reply", From: "Bob", Time: "2h", Unread: true},
		{ID: "3", Title: "Old news", From: "Cy", Time: "1d", VideoID: "c", Unread: false},
	}
}

func TestUnreadCount(t *testing.T) {
	c := New(nil, nil, sample())
	if c.UnreadCount() != 2 {
		t.Errorf("UnreadCount() = %d, expected 2", c.UnreadCount())
	}
	if New(nil, nil, nil).UnreadCount() != 0 {
		t.Error("empty center should have no unread")
	}
}

func TestOpen_MarksReadAndNavigates(t *testing.T) {
	st := store.New(database.NewMemory())
	nav := &recordingNav{}
	c := New(st, nav, sample())
	c.Toggle()

	n, ok := c.Open("1")
	if !ok {
		t.Fatal("Open(1) = false")
	}
	if n.Unread {
		t.Error("returned notification still unread")
	}
	if c.IsOpen() {
		t.Error("dropdown still open after Open")
	}
	if c.UnreadCount() != 1 {
		t.Errorf("UnreadCount() = %d, expected 1", c.UnreadCount())
	}
	if !reflect.DeepEqual(nav.fragments, []string{"#/video/a"}) {
		t.Errorf("navigated to %v", nav.fragments)
	}

	want := sample()
	want[0].Unread = false
	if !reflect.DeepEqual(c.Items(), want) {
		t.Errorf("Items() = %+v, other notifications must be untouched", c.Items())
	}
	saved := store.Get(st, store.NotificationsKey, []structures.Notification(nil))
	if !reflect.DeepEqual(saved, want) {
		t.Errorf("persisted list = %+v, expected full rewrite", saved)
	}
}

func TestOpen_WithoutVideoStaysPut(t *testing.T) {
	nav := &recordingNav{}
	c := New(store.New(database.NewMemory()), nav, sample())

	if _, ok := c.Open("2"); !ok {
		t.Fatal("Open(2) = false")
	}
	if len(nav.fragments) != 0 {
		t.Errorf("navigated to %v, expected nothing", nav.fragments)
	}
}

func TestOpen_UnknownID(t *testing.T) {
	st := store.New(database.NewMemory())
	nav := &recordingNav{}
	c := New(st, nav, sample())
	c.Toggle()

	if _, ok := c.Open("99"); ok {
		t.Error("Open(99) = true")
	}
	if !c.IsOpen() || c.UnreadCount() != 2 || len(nav.fragments) != 0 {
		t.Error("unknown id changed state")
	}
	if _, found, _ := store.Read[[]structures.Notification](st, store.NotificationsKey); found {
		t.Error("unknown id wrote to the store")
	}
}

func TestOpen_WithLocation(t *testing.T) {
	loc := router.NewLocation("")
	c := New(store.New(database.NewMemory()), loc, sample())

	c.Open("3")
	if got := loc.Route(); got.View != router.DetailView || got.VideoID != "c" {
		t.Errorf("Route() = %+v, expected detail of c", got)
	}
}

func TestToggleAndReset(t *testing.T) {
	c := New(nil, nil, nil)
	c.Toggle()
	if !c.IsOpen() {
		t.Error("Toggle() did not open")
	}
	c.Close()
	if c.IsOpen() {
		t.Error("Close() did not close")
	}

	items := sample()
	c.Reset(items)
	items[0].Title = "mutated"
	if c.Items()[0].Title != "New upload" {
		t.Error("Reset() kept a reference to the caller's slice")
	}
}
