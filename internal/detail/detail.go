// Package detail holds the per-video state behind the video page: votes,
// the channel subscription, and comments. Every mutation is written to the
// store before the method returns.
package detail

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/store"
	"github.com/haryoiro/ytfront/internal/structures"
)

// SeedComments is the comment list of a video nobody has commented on yet
var SeedComments = []structures.Comment{
	{ID: "1", Username: "User12", Text: "Great video!"},
	{ID: "2", Username: "Lucky123", Text: "Really informative, thanks!"},
	{ID: "3", Username: "!6xUser", Text: "Loved this part."},
	{ID: "4", Username: "Rose Watcher", Text: "Can you make a follow-up video?"},
}

// Option configures a State
type Option func(*State)

// WithIDGenerator replaces the comment id generator
func WithIDGenerator(fn func() string) Option {
	return func(s *State) { s.newID = fn }
}

// WithCommentFilter transforms comment text before it is stored
func WithCommentFilter(fn func(string) string) Option {
	return func(s *State) { s.filterText = fn }
}

// WithAnonymousName sets the author used when the profile has no name
func WithAnonymousName(name string) Option {
	return func(s *State) {
		if name != "" {
			s.anonymous = name
		}
	}
}

// State is the detail page of one video
type State struct {
	store  *store.Store
	videos []structures.Video
	id     string
	video  structures.Video
	found  bool

	liked      bool
	disliked   bool
	counts     structures.VoteCounts
	subscribed bool
	subCount   int
	comments   []structures.Comment

	newID      func() string
	filterText func(string) string
	anonymous  string
}

// storedCounts tells an absent field apart from a zero one
type storedCounts struct {
	Likes    *int `json:"likes"`
	Dislikes *int `json:"dislikes"`
}

// New seeds the state for id from the store, falling back to the catalog.
// When id is not in videos the state is not-found and inert.
func New(st *store.Store, videos []structures.Video, id string, opts ...Option) *State {
	s := &State{
		store:     st,
		videos:    videos,
		id:        id,
		newID:     uuid.NewString,
		anonymous: constants.AnonymousName,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.video, s.found = structures.FindVideo(videos, id)
	if !s.found {
		logger.Debug("detail: video %q not in catalog", id)
		return s
	}

	s.liked = store.Get(st, store.LikeKey(id), false)
	s.disliked = store.Get(st, store.DislikeKey(id), false)
	if s.liked && s.disliked {
		s.disliked = false
	}

	s.counts = structures.VoteCounts{Likes: s.video.Likes, Dislikes: s.video.Dislikes}
	if saved := store.Get(st, store.CountsKey(id), storedCounts{}); saved.Likes != nil {
		s.counts.Likes = *saved.Likes
		if saved.Dislikes != nil {
			s.counts.Dislikes = *saved.Dislikes
		}
	}
	s.counts.Likes = max(0, s.counts.Likes)
	s.counts.Dislikes = max(0, s.counts.Dislikes)

	author := s.video.Author
	s.subscribed = store.Get(st, store.SubKey(author), false)
	s.subCount = max(0, store.Get(st, store.SubCountKey(author), s.video.ChannelSubscribers))

	s.comments = store.Get(st, store.CommentsKey(id), []structures.Comment(nil))
	if s.comments == nil {
		s.comments = slices.Clone(SeedComments)
	}

	return s
}

// Found reports whether the id resolved to a catalog video
func (s *State) Found() bool { return s.found }

// ID returns the requested video id, found or not
func (s *State) ID() string { return s.id }

func (s *State) Video() structures.Video { return s.video }
func (s *State) Liked() bool { return s.liked }
func (s *State) Disliked() bool { return s.disliked }
func (s *State) Counts() structures.VoteCounts { return s.counts }
func (s *State) Subscribed() bool { return s.subscribed }
func (s *State) SubCount() int { return s.subCount }
func (s *State) Comments() []structures.Comment { return slices.Clone(s.comments) }

// Recommended returns every other catalog video, in catalog order
func (s *State) Recommended() []structures.Video {
	out := make([]structures.Video, 0, len(s.videos))
	for _, v := range s.videos {
		if string(v.ID) != s.id {
			out = append(out, v)
		}
	}
	return out
}

// ToggleLike likes the video, or removes an existing like. Liking clears
// a dislike and takes its vote back.
func (s *State) ToggleLike() {
	if !s.found {
		return
	}

	if s.liked {
		s.liked = false
		s.counts.Likes = max(0, s.counts.Likes-1)
	} else {
		if s.disliked {
			s.counts.Dislikes = max(0, s.counts.Dislikes-1)
		}
		s.liked = true
		s.disliked = false
		s.counts.Likes++
	}
	s.persistVotes()
}

// ToggleDislike mirrors ToggleLike
func (s *State) ToggleDislike() {
	if !s.found {
		return
	}

	if s.disliked {
		s.disliked = false
		s.counts.Dislikes = max(0, s.counts.Dislikes-1)
	} else {
		if s.liked {
			s.counts.Likes = max(0, s.counts.Likes-1)
		}
		s.disliked = true
		s.liked = false
		s.counts.Dislikes++
	}
	s.persistVotes()
}

func (s *State) persistVotes() {
	s.store.Set(store.LikeKey(s.id), s.liked)
	s.store.Set(store.DislikeKey(s.id), s.disliked)
	s.store.Set(store.CountsKey(s.id), s.counts)
}

// ToggleSubscribe flips the channel subscription and keeps the global
// author list in step with it.
func (s *State) ToggleSubscribe() {
	if !s.found {
		return
	}

	author := s.video.Author
	s.subscribed = !s.subscribed
	if s.subscribed {
		s.subCount++
	} else {
		s.subCount = max(0, s.subCount-1)
	}

	s.store.Set(store.SubKey(author), s.subscribed)
	s.store.Set(store.SubCountKey(author), s.subCount)

	if author == "" {
		return
	}

	list, err := s.store.Subscriptions()
	if err != nil {
		logger.Debug("detail: rewriting unreadable subscription list: %v", err)
		list = nil
	}
	if s.subscribed {
		if !slices.Contains(list, author) {
			list = append(list, author)
		}
	} else {
		list = slices.DeleteFunc(list, func(a string) bool { return a == author })
	}
	s.store.SetSubscriptions(list)
}

// SubmitComment appends a comment by username, or by the anonymous name
// when username is blank. Blank text is rejected and nothing changes.
func (s *State) SubmitComment(text, username string) bool {
	if !s.found {
		return false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if s.filterText != nil {
		text = s.filterText(text)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = s.anonymous
	}

	s.comments = append(s.comments, structures.Comment{
		ID:       structures.Text(s.newID()),
		Username: username,
		Text:     text,
	})
	s.store.Set(store.CommentsKey(s.id), s.comments)
	return true
}
