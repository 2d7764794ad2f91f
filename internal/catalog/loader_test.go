package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/haryoiro/ytfront/internal/database"
	"github.com/haryoiro/ytfront/internal/store"
	"github.com/haryoiro/ytfront/internal/structures"
)

const sampleCatalog = `{
	"videos": [
		{"id": "a", "title": "Cats", "author": "Ann", "views": 1200, "age": "2 days ago",
		 "categories": ["pets"], "likes": 10, "dislikes": 2, "channelSubscribers": 500},
		{"id": "b", "title": "Dogs", "author": "Bob", "views": "3.4M", "age": "1 week ago",
		 "categories": ["pets"]}
	],
	"sidebar": [{"id": "all", "label": "Home", "icon": "icons/home.svg"}],
	"notifications": [{"id": 1, "title": "New upload", "from": "Ann", "time": "1h", "videoId": "a", "unread": true}],
	"user": {"name": "Default", "email": "d@example.com"}
}`

type staticFetcher struct {
	data  []byte
	err   error
	delay time.Duration
}

func (f staticFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.data, f.err
}

func assertEmpty(t *testing.T, c structures.Catalog) {
	t.Helper()
	if c.Videos == nil || len(c.Videos) != 0 {
		t.Errorf("Videos = %v, expected empty non-nil", c.Videos)
	}
	if c.Sidebar == nil || len(c.Sidebar) != 0 {
		t.Errorf("Sidebar = %v, expected empty non-nil", c.Sidebar)
	}
	if c.Notifications == nil || len(c.Notifications) != 0 {
		t.Errorf("Notifications = %v, expected empty non-nil", c.Notifications)
	}
	if c.User != (structures.User{}) {
		t.Errorf("User = %+v, expected zero", c.User)
	}
}

func TestDecode(t *testing.T) {
	c, err := Decode([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if len(c.Videos) != 2 {
		t.Fatalf("len(Videos) = %d, expected 2", len(c.Videos))
	}
	if c.Videos[0].Views != "1200" || c.Videos[1].Views != "3.4M" {
		t.Errorf("Views = %q, %q; expected numeric and string forms", c.Videos[0].Views, c.Videos[1].Views)
	}
	if c.Notifications[0].ID != "1" || c.Notifications[0].VideoID != "a" {
		t.Errorf("Notification = %+v", c.Notifications[0])
	}
	if c.Videos[1].Likes != 0 || c.Videos[1].ChannelSubscribers != 0 {
		t.Errorf("absent counts should be zero, got %+v", c.Videos[1])
	}
}

func TestDecode_MissingCollections(t *testing.T) {
	c, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode({}) error: %v", err)
	}
	assertEmpty(t, c)
}

func TestDecode_IgnoresUnknownFields(t *testing.T) {
	c, err := Decode([]byte(`{"version":2,"videos":[{"id":"a","title":"Cats","duration":"3:10"}]}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(c.Videos) != 1 || c.Videos[0].Title != "Cats" {
		t.Errorf("Videos = %+v", c.Videos)
	}
}

func TestLoad_FetchFailureYieldsEmptyCatalog(t *testing.T) {
	l := NewLoader(staticFetcher{err: errors.New("connection refused")}, store.New(database.NewMemory()))

	c, err := l.Load(context.Background())
	if err == nil {
		t.Fatal("Load() error = nil, expected fetch failure")
	}
	assertEmpty(t, c)
}

func TestLoad_DecodeFailureYieldsEmptyCatalog(t *testing.T) {
	l := NewLoader(staticFetcher{data: []byte("<html>")}, store.New(database.NewMemory()))

	c, err := l.Load(context.Background())
	if err == nil {
		t.Fatal("Load() error = nil, expected decode failure")
	}
	assertEmpty(t, c)
}

func TestLoad_OverlaysPersistedState(t *testing.T) {
	db := database.NewMemory()
	st := store.New(db)
	st.Set(store.NotificationsKey, []structures.Notification{{ID: "1", Title: "New upload", Unread: false}})
	st.Set(store.UserKey, structures.User{Name: "Saved"})

	c, err := NewLoader(staticFetcher{data: []byte(sampleCatalog)}, st).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Notifications[0].Unread {
		t.Error("persisted notifications not applied")
	}
	if c.User.Name != "Saved" || c.User.Email != "" {
		t.Errorf("User = %+v, expected persisted user wholesale", c.User)
	}
}

func TestLoad_IgnoresCorruptOverlay(t *testing.T) {
	db := database.NewMemory()
	db.SaveAppState(store.NotificationsKey, "[{broken")
	db.SaveAppState(store.UserKey, "42")

	c, err := NewLoader(staticFetcher{data: []byte(sampleCatalog)}, store.New(db)).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !c.Notifications[0].Unread {
		t.Error("corrupt overlay replaced catalog notifications")
	}
	if c.User.Name != "Default" {
		t.Errorf("User = %+v, expected catalog default", c.User)
	}
}

func TestStart_DeliversResult(t *testing.T) {
	l := NewLoader(staticFetcher{data: []byte(sampleCatalog)}, store.New(database.NewMemory()))

	results := make(chan Result, 1)
	stop := l.Start(context.Background(), func(r Result) { results <- r })
	defer stop()

	select {
	case r := <-results:
		if r.Err != nil || len(r.Catalog.Videos) != 2 {
			t.Errorf("Result = %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
}

func TestStart_StopSuppressesLateResult(t *testing.T) {
	l := NewLoader(staticFetcher{data: []byte(sampleCatalog), delay: 50 * time.Millisecond}, store.New(database.NewMemory()))

	results := make(chan Result, 1)
	stop := l.Start(context.Background(), func(r Result) { results <- r })
	stop()

	select {
	case r := <-results:
		t.Errorf("apply called after stop: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleCatalog))
	}))
	defer srv.Close()

	data, err := NewFetcher(srv.URL+"/dataset.json", time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if _, err := Decode(data); err != nil {
		t.Errorf("Decode(fetched) error: %v", err)
	}

	_, err = NewFetcher(srv.URL+"/missing.json", time.Second).Fetch(context.Background())
	if !errors.Is(err, ErrStatus) {
		t.Errorf("Fetch(404) error = %v, expected ErrStatus", err)
	}
}

func TestFileFetcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(path, time.Second)
	if _, ok := f.(*FileFetcher); !ok {
		t.Fatalf("NewFetcher(path) = %T, expected *FileFetcher", f)
	}
	if _, err := f.Fetch(context.Background()); err != nil {
		t.Errorf("Fetch() error: %v", err)
	}

	if _, err := NewFetcher(path+".nope", time.Second).Fetch(context.Background()); err == nil {
		t.Error("Fetch() of missing file returned nil error")
	}
}
