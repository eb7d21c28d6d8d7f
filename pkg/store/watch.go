package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventDocumentChanged indicates the stored document was rewritten,
	// possibly by another process.
	EventDocumentChanged EventType = iota

	// EventWatchError signals the watcher could not classify a change;
	// callers should reload to stay in sync.
	EventWatchError
)

// Event is emitted by Watch when underlying storage changes.
type Event struct {
	Type EventType
}

// ErrNotWatchable is returned by Watch for backends without files.
var ErrNotWatchable = errors.New("store: backend cannot be watched")

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel. The channel is closed once ctx is done or the watcher
// stops.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.backend.(watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	dir, name := w.WatchTarget()
	if dir == "" {
		return nil, errors.New("store: watch directory unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure watch dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				s.logger.Warn("watcher close", "err", err)
			}
		}()

		var sendMu sync.Mutex
		stopped := false
		send := func(ev Event) {
			sendMu.Lock()
			defer sendMu.Unlock()
			if stopped {
				return
			}
			select {
			case events <- ev:
			default:
				// Consumer is behind; it will reload on the next event anyway.
			}
		}
		defer func() {
			sendMu.Lock()
			stopped = true
			sendMu.Unlock()
		}()

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Debug("watcher error", "err", err)
				throttle.Enqueue(Event{Type: EventWatchError}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if !strings.HasPrefix(filepath.Base(evt.Name), name) {
					continue
				}
				if strings.HasSuffix(evt.Name, quarantineKey) {
					continue
				}
				throttle.Enqueue(Event{Type: EventDocumentChanged}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a burst of writes
// produces one reload.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType := range pending {
		send(Event{Type: eventType})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
