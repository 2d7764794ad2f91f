package structures

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// Text is a display string that also accepts JSON numbers.
// Catalogs written by hand tend to mix "1200" and 1200 for the same field.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Video represents a catalog entry
type Video struct {
	ID                 Text     `json:"id"`
	Title              string   `json:"title"`
	Author             string   `json:"author"`
	Views              Text     `json:"views"`
	Age                string   `json:"age"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	ChannelPicture     string   `json:"channelPicture,omitempty"`
	Categories         []string `json:"categories,omitempty"`
	Likes              int      `json:"likes"`
	Dislikes           int      `json:"dislikes"`
	ChannelSubscribers int      `json:"channelSubscribers"`
}

// HasCategory reports whether the video is tagged with the given category
func (v Video) HasCategory(tag string) bool {
	return slices.Contains(v.Categories, tag)
}

// MatchesQuery reports whether a lowercase query is a substring of the
// title or the author. An empty query matches everything.
func (v Video) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Author), q)
}

// SidebarItem is a static navigation entry; its ID doubles as a category
type SidebarItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// Notification represents an entry in the notification dropdown
type Notification struct {
	ID      Text   `json:"id"`
	Title   string `json:"title"`
	From    string `json:"from"`
	Time    string `json:"time"`
	VideoID Text   `json:"videoId,omitempty"`
	Unread  bool   `json:"unread"`
}

// User is the local profile
type User struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	About  string `json:"about,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Catalog is everything loaded from the catalog resource
type Catalog struct {
	Videos        []Video        `json:"videos"`
	Sidebar       []SidebarItem  `json:"sidebar"`
	Notifications []Notification `json:"notifications"`
	User          User           `json:"user"`
}

// EmptyCatalog returns the catalog rendered before, or instead of, a load
func EmptyCatalog() Catalog {
	return Catalog{
		Videos:        []Video{},
		Sidebar:       []SidebarItem{},
		Notifications: []Notification{},
		User:          User{},
	}
}

// FindVideo returns the video with the given id
func (c Catalog) FindVideo(id string) (Video, bool) {
	return FindVideo(c.Videos, id)
}

// FindVideo returns the first video in videos with the given id
func FindVideo(videos []Video, id string) (Video, bool) {
	for _, v := range videos {
		if string(v.ID) == id {
			return v, true
		}
	}
	return Video{}, false
}

// VoteCounts holds the per-video like and dislike totals
type VoteCounts struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Comment is one entry of a video's comment list
type Comment struct {
	ID       Text   `json:"id"`
	Username string `json:"username"`
	Text     string `json:"text"`
}

// Config represents the application configuration
type Config struct {
	CatalogSource string `toml:"catalog_source"`
	AnonymousName string `toml:"anonymous_name"`

	Storage     Storage     `toml:"storage"`
	Comments    Comments    `toml:"comments"`
	Theme       Theme       `toml:"theme"`
	KeyBindings KeyBindings `toml:"key_bindings"`

	// UI Configuration
	DisableAltScreen bool `toml:"disable_alt_screen"`
}

// Storage selects and configures the persistence backend
type Storage struct {
	Backend     string `toml:"backend"` // sqlite, memory or redis
	Path        string `toml:"path"`    // SQLite file; empty means the data directory
	RedisAddr   string `toml:"redis_addr"`
	RedisPrefix string `toml:"redis_prefix"`
}

// Comments configures comment submission
type Comments struct {
	CensorProfanity bool `toml:"censor_profanity"`
}

// Theme represents the UI theme configuration
type Theme struct {
	Foreground string `toml:"foreground"`
	Selected   string `toml:"selected"`
	Active     string `toml:"active"` // liked, subscribed, active category
	Unread     string `toml:"unread"`
	Border     string `toml:"border"`
	Accent     string `toml:"accent"`
}

// KeyBindings represents configurable keyboard shortcuts
type KeyBindings struct {
	Quit []string `toml:"quit"`

	// Navigation
	MoveUp      []string `toml:"move_up"`
	MoveDown    []string `toml:"move_down"`
	Select      []string `toml:"select"`
	Back        []string `toml:"back"`
	NextSection string   `toml:"next_section"`
	PrevSection string   `toml:"prev_section"`
	Home        string   `toml:"home"`

	// Header
	Search        string `toml:"search"`
	Notifications string `toml:"notifications"`
	Profile       string `toml:"profile"`

	// Video page
	Like      string `toml:"like"`
	Dislike   string `toml:"dislike"`
	Subscribe string `toml:"subscribe"`
	Comment   string `toml:"comment"`
}
