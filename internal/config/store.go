package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Observer is called with the new snapshot after a configuration change.
type Observer func(cfg Config)

// Store holds the current configuration snapshot and reloads it when the
// backing file changes. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	path      string
	loader    Loader
	cfg       Config
	observers map[uint64]Observer
	nextID    uint64
	debounce  time.Duration

	watcher *fsnotify.Watcher
	closeCh chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithDebounce sets the quiet period after a file event before reloading.
func WithDebounce(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithLoader substitutes the file loader, primarily for tests.
func WithLoader(l Loader) StoreOption {
	return func(s *Store) {
		s.loader = l
	}
}

// NewStore creates a store for the given config path and performs the
// initial load. A missing file leaves the defaults in place; a malformed
// one is an error.
func NewStore(path string, opts ...StoreOption) (*Store, error) {
	s := &Store{
		path:      path,
		cfg:       Default(),
		observers: make(map[uint64]Observer),
		debounce:  100 * time.Millisecond,
		closeCh:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		loader, err := LoaderForPath(path)
		if err != nil {
			return nil, err
		}
		s.loader = loader
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the active snapshot.
func (s *Store) Current() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Subscribe registers an observer for configuration changes. Returns a
// function to unsubscribe.
func (s *Store) Subscribe(obs Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = obs

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Reload re-reads the file and notifies observers when the snapshot
// changed. The previous snapshot stays active on error.
func (s *Store) Reload() error {
	fc, err := s.loader.Load()
	if err != nil {
		return err
	}
	next := fc.apply(Default())

	s.mu.Lock()
	if next == s.cfg {
		s.mu.Unlock()
		return nil
	}
	s.cfg = next
	observers := make([]Observer, 0, len(s.observers))
	for _, obs := range s.observers {
		observers = append(observers, obs)
	}
	s.mu.Unlock()

	for _, obs := range observers {
		obs(next)
	}
	return nil
}

// Watch starts hot reload. The watch is on the containing directory so
// editors that replace the file by rename are still observed. Reload
// failures keep the previous snapshot; the file is retried on its next
// change.
func (s *Store) Watch() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if s.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	s.watcher = watcher
	s.wg.Add(1)
	go s.watchLoop(watcher)
	return nil
}

// watchLoop debounces file events and triggers reloads.
func (s *Store) watchLoop(watcher *fsnotify.Watcher) {
	defer s.wg.Done()

	base := filepath.Base(s.path)
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(s.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			_ = s.Reload()

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}

		case <-s.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Close stops the watcher. Safe to call multiple times.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	watcher := s.watcher
	s.mu.Unlock()

	close(s.closeCh)
	var err error
	if watcher != nil {
		err = watcher.Close()
	}
	s.wg.Wait()
	return err
}
