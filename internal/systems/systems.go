package systems

import (
	"fmt"
	"time"

	goaway "github.com/TwiN/go-away"

	"github.com/haryoiro/ytfront/internal/catalog"
	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/database"
	"github.com/haryoiro/ytfront/internal/detail"
	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/router"
	"github.com/haryoiro/ytfront/internal/store"
	"github.com/haryoiro/ytfront/internal/structures"
)

// Systems contains all the core systems of the application
type Systems struct {
	Config   *structures.Config
	Database database.DB
	Store    *store.Store
	Location *router.Location
	Loader   *catalog.Loader

	censor *goaway.ProfanityDetector
}

// New creates a new Systems instance. source overrides the configured
// catalog source and route is the fragment to start on.
func New(cfg *structures.Config, db database.DB, source, route string) *Systems {
	if source == "" {
		source = cfg.CatalogSource
	}
	if source == "" {
		source = constants.DefaultCatalog
	}

	s := &Systems{
		Config:   cfg,
		Database: db,
		Store:    store.New(db),
		Location: router.NewLocation(route),
	}
	s.Loader = catalog.NewLoader(catalog.NewFetcher(source, constants.FetchTimeout), s.Store)

	if cfg.Comments.CensorProfanity {
		s.censor = goaway.NewProfanityDetector()
		logger.Debug("Comment profanity filter enabled")
	}

	logger.Debug("Systems ready: catalog=%s backend=%s route=%s", source, cfg.Storage.Backend, s.Location.Hash())
	return s
}

// DetailOptions returns the options every video page is built with
func (s *Systems) DetailOptions() []detail.Option {
	opts := []detail.Option{detail.WithAnonymousName(s.Config.AnonymousName)}
	if s.censor != nil {
		opts = append(opts, detail.WithCommentFilter(s.censor.Censor))
	}
	return opts
}

// OpenVideo builds the detail state for id against videos
func (s *Systems) OpenVideo(videos []structures.Video, id string) *detail.State {
	return detail.New(s.Store, videos, id, s.DetailOptions()...)
}

// ClearState removes every persisted key and reports how many were removed
func (s *Systems) ClearState() (int, error) {
	m, ok := s.Database.(database.Maintainer)
	if !ok {
		return 0, fmt.Errorf("storage backend %T cannot be cleared", s.Database)
	}

	keys, err := m.Keys()
	if err != nil {
		return 0, fmt.Errorf("list keys: %w", err)
	}
	if err := m.Clear(); err != nil {
		return 0, fmt.Errorf("clear state: %w", err)
	}
	return len(keys), nil
}

// Stop stops all systems
func (s *Systems) Stop() error {
	start := time.Now()
	if err := s.Database.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	logger.Debug("Database closed in %v", time.Since(start))
	return nil
}
