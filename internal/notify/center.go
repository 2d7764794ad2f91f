// Package notify keeps the notification list, its unread badge and
// dropdown state.
package notify

import (
	"slices"

	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/router"
	"github.com/haryoiro/ytfront/internal/store"
	"github.com/haryoiro/ytfront/internal/structures"
)

// Navigator moves the application to a route fragment
type Navigator interface {
	Navigate(fragment string)
}

// Center owns the notification list shown in the header dropdown
type Center struct {
	store *store.Store
	nav   Navigator
	items []structures.Notification
	open  bool
}

// New creates a center over items. The slice is copied.
func New(st *store.Store, nav Navigator, items []structures.Notification) *Center {
	return &Center{store: st, nav: nav, items: slices.Clone(items)}
}

// Items returns a copy of the notification list
func (c *Center) Items() []structures.Notification {
	return slices.Clone(c.items)
}

// Reset replaces the list, e.g. once the catalog has loaded
func (c *Center) Reset(items []structures.Notification) {
	c.items = slices.Clone(items)
}

// UnreadCount is the number of notifications still marked unread
func (c *Center) UnreadCount() int {
	n := 0
	for _, item := range c.items {
		if item.Unread {
			n++
		}
	}
	return n
}

func (c *Center) Toggle()      { c.open = !c.open }
func (c *Center) Close()       { c.open = false }
func (c *Center) IsOpen() bool { return c.open }

// Open marks the notification read, persists the whole list, closes the
// dropdown and follows the notification's video link when it has one.
// It reports false and changes nothing when id is unknown.
func (c *Center) Open(id string) (structures.Notification, bool) {
	idx := slices.IndexFunc(c.items, func(n structures.Notification) bool {
		return string(n.ID) == id
	})
	if idx < 0 {
		logger.Debug("notify: no notification with id %q", id)
		return structures.Notification{}, false
	}

	for i := range c.items {
		if string(c.items[i].ID) == id {
			c.items[i].Unread = false
		}
	}
	c.store.Set(store.NotificationsKey, c.items)
	c.open = false

	opened := c.items[idx]
	if opened.VideoID != "" && c.nav != nil {
		c.nav.Navigate(router.VideoFragment(string(opened.VideoID)))
	}
	return opened, true
}
