package constants

import "time"

// Reserved category selectors
const (
	CategoryAll           = "all"
	CategorySubscriptions = "subscriptions"
)

// Fallbacks used when the profile or catalog is empty
const (
	AnonymousName  = "Anonymous"
	DefaultAvatar  = "e0af562f1889be281e3052c2aea5ae37.jpeg"
	DefaultCatalog = "dataset.json"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Timing constants
const (
	FetchTimeout     = 15 * time.Second
	StoreCallTimeout = 2 * time.Second
	BackKeyDebounce  = 300 * time.Millisecond
)

// UI constants
const (
	HeaderHeight     = 3
	SidebarWidth     = 22
	MinContentWidth  = 30
	DropdownWidth    = 44
	ProfileWidth     = 48
	MaxRecommended   = 8
	ScrollPadding    = 2
	MaxCommentLength = 500
)

// File names under the XDG directories
const (
	AppName        = "ytfront"
	ConfigFileName = "config.toml"
	DBFileName     = "ytfront.db"
	LogFileName    = "ytfront.log"
)
