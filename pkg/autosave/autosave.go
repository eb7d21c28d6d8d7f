// Package autosave funnels edit notifications, periodic ticks and explicit
// flushes into a single goroutine that performs the saves.
package autosave

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/logging"
	"tableflip.dev/dayplan/pkg/store"
)

// DefaultInterval is the periodic save cadence.
const DefaultInterval = 30 * time.Second

// SaveFunc persists one day.
type SaveFunc func(key string, rec day.Record) store.Result

// Loop saves submitted snapshots. Snapshots for the same day coalesce: only
// the latest one is written. Saving the same snapshot again is harmless, which
// is what the periodic tick does.
type Loop struct {
	save     SaveFunc
	interval time.Duration
	logger   *log.Logger

	// OnResult, when set, receives every save outcome from the loop goroutine.
	OnResult func(store.Result)

	// saveMu is held from taking a batch until it is written, so batches
	// land in the order they were taken and Flush waits for in-flight saves.
	saveMu sync.Mutex

	mu       sync.Mutex
	pending  map[string]day.Record
	lastKey  string
	lastRec  day.Record
	hasLast  bool
	running  bool
	wake     chan struct{}
	flushReq chan chan []store.Result
	done     chan struct{}
}

// New returns a loop that calls save. A non-positive interval uses
// DefaultInterval.
func New(save SaveFunc, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		save:     save,
		interval: interval,
		logger:   logging.Discard(),
		pending:  make(map[string]day.Record),
		wake:     make(chan struct{}, 1),
		flushReq: make(chan chan []store.Result),
		done:     make(chan struct{}),
	}
}

// SetLogger replaces the diagnostic logger.
func (l *Loop) SetLogger(logger *log.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// Submit queues rec for key and wakes the loop. It never blocks.
func (l *Loop) Submit(key string, rec day.Record) {
	l.mu.Lock()
	l.pending[key] = rec.Clone()
	l.lastKey, l.lastRec, l.hasLast = key, rec.Clone(), true
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Flush saves everything pending and waits for the results. It is safe to
// call whether or not Run is active.
func (l *Loop) Flush() []store.Result {
	l.mu.Lock()
	running := l.running
	l.mu.Unlock()
	if !running {
		return l.flushPending()
	}

	reply := make(chan []store.Result, 1)
	select {
	case l.flushReq <- reply:
		return <-reply
	case <-l.done:
		return l.flushPending()
	}
}

// Run processes saves until ctx is done, then flushes once more.
func (l *Loop) Run(ctx context.Context) {
	l.mu.Lock()
	l.running = true
	l.mu.Unlock()

	ticker := time.NewTicker(l.interval)
	defer func() {
		ticker.Stop()
		l.flushPending()
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		close(l.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
			l.flushPending()
		case reply := <-l.flushReq:
			reply <- l.flushPending()
		case <-ticker.C:
			if len(l.flushPending()) == 0 {
				l.resaveLast()
			}
		}
	}
}

func (l *Loop) flushPending() []store.Result {
	l.saveMu.Lock()
	defer l.saveMu.Unlock()

	l.mu.Lock()
	batch := l.pending
	l.pending = make(map[string]day.Record)
	l.mu.Unlock()

	keys := make([]string, 0, len(batch))
	for k := range batch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]store.Result, 0, len(keys))
	for _, k := range keys {
		results = append(results, l.persist(k, batch[k]))
	}
	return results
}

func (l *Loop) resaveLast() {
	l.saveMu.Lock()
	defer l.saveMu.Unlock()

	l.mu.Lock()
	key, rec, ok := l.lastKey, l.lastRec, l.hasLast
	l.mu.Unlock()
	if ok {
		l.persist(key, rec)
	}
}

func (l *Loop) persist(key string, rec day.Record) store.Result {
	res := l.save(key, rec)
	if !res.OK {
		l.logger.Warn("autosave failed", "key", key, "err", res.Err)
	}
	if l.OnResult != nil {
		l.OnResult(res)
	}
	return res
}
