package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"

	"servi-search/internal/search"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

var ErrNotLoaded = errors.New("catalog not loaded")

type Source interface {
	Name() string
	Load(ctx context.Context) (*search.Catalog, error)
}

// Store hands out the current catalog. A reload builds a new catalog and
// swaps it in; catalogs already handed out are never modified.
type Store struct {
	source Source
	logger zerolog.Logger

	current atomic.Pointer[search.Catalog]

	mu        sync.Mutex
	listeners []func(*search.Catalog)
}

func NewStore(source Source, logger zerolog.Logger) *Store {
	return &Store{source: source, logger: logger}
}

// NewStaticStore wraps an already built catalog.
func NewStaticStore(c *search.Catalog) *Store {
	s := &Store{logger: zerolog.Nop()}
	s.current.Store(c)
	return s
}

func (s *Store) Current() *search.Catalog {
	if s == nil {
		return nil
	}
	return s.current.Load()
}

// OnReload registers fn to be called after every successful Load.
func (s *Store) OnReload(fn func(*search.Catalog)) {
	if s == nil || fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Load reads the source and swaps the result in. On error the previous
// catalog stays in place.
func (s *Store) Load(ctx context.Context) error {
	if s == nil || s.source == nil {
		return ErrNotLoaded
	}

	c, err := s.source.Load(ctx)
	if err != nil {
		return err
	}
	s.current.Store(c)

	for _, col := range c.Collisions() {
		s.logger.Warn().
			Str("keyword", col.Keyword).
			Int("kept_category_id", col.KeptCategoryID).
			Int("dropped_category_id", col.DroppedCategoryID).
			Msg("synonym declared by more than one category")
	}
	s.logger.Info().
		Str("source", s.source.Name()).
		Str("version", c.Version()).
		Int("categories", c.Len()).
		Msg("catalog loaded")

	s.mu.Lock()
	listeners := make([]func(*search.Catalog), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(c)
	}
	return nil
}

// Watch reloads the catalog whenever the file at path is written or
// replaced. It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are seen too.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := s.Load(ctx); err != nil {
				s.logger.Error().Err(err).Str("path", path).Msg("catalog reload failed, keeping previous version")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Error().Err(err).Str("path", path).Msg("catalog watch error")
		}
	}
}
