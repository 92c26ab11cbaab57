package project

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/jarospm/folio/internal/core/logging"
)

const (
	debounceDelay   = 100 * time.Millisecond
	eventBufferSize = 1
)

// Event reports that a catalog source changed on disk.
type Event struct {
	Path      string
	Timestamp time.Time
}

// Watcher watches the directories behind a set of catalog patterns and emits
// a debounced Event when a matching file is written, created, renamed, or
// removed.
type Watcher struct {
	patterns []string
	watcher  *fsnotify.Watcher
	events   chan Event
	log      zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher starts watching the directories that can hold files matching
// patterns.
func NewWatcher(patterns []string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs, err := watchDirs(patterns)
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		patterns: patterns,
		watcher:  watcher,
		events:   make(chan Event, eventBufferSize),
		log:      logging.Component("project-watcher"),
		ctx:      ctx,
		cancel:   cancel,
	}

	w.log.Debug().Strs("dirs", dirs).Msg("watching catalog sources")

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// watchDirs returns the existing directories a pattern can match in: the
// static prefix of each pattern and the parent of every current match.
func watchDirs(patterns []string) ([]string, error) {
	var dirs []string
	for _, pattern := range patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		if info, err := os.Stat(base); err == nil && info.IsDir() {
			dirs = append(dirs, filepath.Clean(base))
		}
	}

	files, err := Files(patterns)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		dirs = append(dirs, filepath.Dir(f))
	}

	slices.Sort(dirs)
	return slices.Compact(dirs), nil
}

// Events returns the channel debounced change events are delivered on. The
// channel is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops watching and closes the events channel.
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.closed = true
	close(w.events)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	if !w.matches(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.pending = event.Name
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, w.flush)
}

func (w *Watcher) matches(name string) bool {
	for _, pattern := range w.patterns {
		if ok, _ := doublestar.PathMatch(pattern, name); ok {
			return true
		}
	}
	return false
}

// flush delivers the pending event. A full buffer already holds an
// undelivered change, so the new one is dropped.
func (w *Watcher) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	select {
	case w.events <- Event{Path: w.pending, Timestamp: time.Now()}:
	default:
	}
	w.timer = nil
}
