package menu

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"HelpMenu/dashboard"
)

const refreshKey = "refresh"

// Source is where the command tree comes from. *dashboard.Client implements it.
type Source interface {
	Login(ctx context.Context, username, password string) (string, error)
	FetchCommands(ctx context.Context, token string) ([]dashboard.CommandNode, error)
}

// CredentialStore hands out the dashboard credentials and can wipe them from
// wherever they are persisted.
type CredentialStore interface {
	Credentials() (username, password string)
	ClearCredentials() error
}

// Options tunes a Service. The zero value is usable.
type Options struct {
	// Debug keeps credentials in place after a successful refresh.
	Debug  bool
	Labels Labels
	Now    func() time.Time
}

// RefreshResult reports the outcome of a refresh. Message holds the error
// text when OK is false.
type RefreshResult struct {
	OK       bool
	Message  string
	Items    int
	Pages    int
	Duration time.Duration
}

// snapshot is the rendered page cache. It is replaced as a whole, never edited.
type snapshot struct {
	pages   []string
	total   int
	updated time.Time
}

// Service owns the page cache and the session cursors.
type Service struct {
	source  Source
	creds   CredentialStore
	debug   bool
	labels  Labels
	now     func() time.Time
	cursors *CursorStore
	group   singleflight.Group

	mu   sync.RWMutex
	snap snapshot
}

// NewService creates a Service with a single placeholder page.
func NewService(source Source, creds CredentialStore, opts Options) *Service {
	if opts.Labels == (Labels{}) {
		opts.Labels = DefaultLabels
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		source:  source,
		creds:   creds,
		debug:   opts.Debug,
		labels:  opts.Labels,
		now:     opts.Now,
		cursors: NewCursorStore(),
		snap: snapshot{
			pages: BuildPages(nil, time.Time{}, opts.Labels),
		},
	}
}

// Refresh reloads the command list from the dashboard. Concurrent callers
// share the run already in flight and all receive its result.
func (s *Service) Refresh(ctx context.Context) RefreshResult {
	v, _, shared := s.group.Do(refreshKey, func() (interface{}, error) {
		return s.refresh(ctx), nil
	})
	if shared {
		log.Debug().Msg("joined in-flight command list refresh")
	}
	return v.(RefreshResult)
}

func (s *Service) refresh(ctx context.Context) RefreshResult {
	start := time.Now()
	log.Info().Msg("refreshing command list")

	items, err := s.load(ctx)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("command list refresh failed")
		return RefreshResult{OK: false, Message: err.Error(), Duration: time.Since(start)}
	}

	updated := s.now()
	pages := BuildPages(items, updated, s.labels)

	s.mu.Lock()
	s.snap = snapshot{pages: pages, total: len(items), updated: updated}
	s.cursors.Clear()
	s.mu.Unlock()

	if !s.debug {
		if err := s.creds.ClearCredentials(); err != nil {
			log.Warn().Err(err).Msg("failed to clear stored dashboard credentials")
		}
	}

	elapsed := time.Since(start)
	log.Info().Int("items", len(items)).Int("pages", len(pages)).Dur("elapsed", elapsed).Msg("command list refreshed")

	return RefreshResult{
		OK:       true,
		Message:  fmt.Sprintf("Loaded %d commands into %d pages.", len(items), len(pages)),
		Items:    len(items),
		Pages:    len(pages),
		Duration: elapsed,
	}
}

func (s *Service) load(ctx context.Context) ([]Item, error) {
	username, password := s.creds.Credentials()

	token, err := s.source.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("dashboard login: %w", err)
	}

	nodes, err := s.source.FetchCommands(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch commands: %w", err)
	}

	return Extract(nodes), nil
}

// Page returns the page a session asked for with arg (empty, a page number,
// or next/prev). Unrecognised arguments show page 1 behind a warning line.
func (s *Service) Page(sessionID, arg string) string {
	// cursors are resolved under the read lock so a refresh cannot clear
	// them between reading the page count and storing the new cursor
	s.mu.RLock()
	pages := s.snap.pages
	page, warning := s.cursors.Resolve(sessionID, arg, len(pages))
	s.mu.RUnlock()

	text := pages[page-1]
	if warning != "" {
		return warning + "\n\n" + text
	}
	return text
}

// PageCount returns the number of pages currently cached.
func (s *Service) PageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snap.pages)
}

// Pages returns a copy of every cached page.
func (s *Service) Pages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.snap.pages...)
}

// TotalItems returns the number of commands in the cache.
func (s *Service) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.total
}

// LastRefresh returns when the cache was last replaced, or the zero time.
func (s *Service) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.updated
}

// Cursors exposes the session cursor store.
func (s *Service) Cursors() *CursorStore {
	return s.cursors
}
