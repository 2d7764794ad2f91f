package store

import "regexp"

// Root-level keys
const (
	NotificationsKey = "yt_notifications"
	UserKey          = "yt_user"
	SubscriptionsKey = "yt_subscriptions"
)

// Whitespace runs, including NBSP, BOM and the Unicode space separators
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`)

func LikeKey(videoID string) string     { return "like_" + videoID }
func DislikeKey(videoID string) string  { return "dislike_" + videoID }
func CountsKey(videoID string) string   { return "counts_" + videoID }
func CommentsKey(videoID string) string { return "comments_" + videoID }

// SubKey is the per-channel subscribed flag, with whitespace runs in the
// author name replaced by underscores.
func SubKey(author string) string {
	return "sub_" + whitespaceRun.ReplaceAllString(author, "_")
}

// SubCountKey uses the author name verbatim, unlike SubKey
func SubCountKey(author string) string {
	return "subcount_" + author
}
