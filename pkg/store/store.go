// Package store persists day records as one JSON document in a local
// key-value backend.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"tableflip.dev/dayplan/pkg/day"
	"tableflip.dev/dayplan/pkg/logging"
)

// DocumentKey is the single backend key holding the whole document.
const DocumentKey = "planning-du-jour-v2"

// ErrCorruptDocument wraps decode failures of the stored document.
var ErrCorruptDocument = errors.New("store: stored document is corrupt")

// Notifier is told about every successful save.
type Notifier interface {
	Saved(key string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(key string)

func (f NotifierFunc) Saved(key string) { f(key) }

// Store loads and saves day records. Every save re-reads the document,
// replaces one key and writes the whole document back; the cycle is
// serialized so saves to different days cannot drop each other.
type Store struct {
	mu        sync.Mutex
	backend   Backend
	logger    *log.Logger
	notifiers []Notifier
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithNotifier registers a save listener.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifiers = append(s.notifiers, n)
		}
	}
}

// New wraps backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, logger: logging.Discard()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open builds the backend named by cfg.
func Open(cfg Config, opts ...Option) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	var (
		backend Backend
		err     error
	)
	switch cfg.Backend() {
	case BackendSQLite:
		backend, err = OpenSQLite(cfg.BasePath())
	case BackendDiskv, "":
		backend, err = NewDiskv(cfg.BasePath())
	default:
		err = fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
	if err != nil {
		return nil, err
	}
	return New(backend, opts...), nil
}

// Subscribe adds a save listener after construction.
func (s *Store) Subscribe(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifiers = append(s.notifiers, n)
}

// Close releases the backend if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Load returns the record stored under key, or an empty record. A missing
// or unreadable document is treated as empty; the returned Result says why.
func (s *Store) Load(key string) (day.Record, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		s.logger.Warn("load failed, using empty document", "key", key, "err", err)
		return day.Empty(), failed(OpLoad, key, err)
	}
	rec, found := doc[key]
	if !found {
		return day.Empty(), ok(OpLoad, key)
	}
	return rec.Repair(), ok(OpLoad, key)
}

// Save replaces the record for key. The record is normalized first so blank
// slots and tasks never reach storage. On failure the persisted document is
// left as it was.
func (s *Store) Save(key string, rec day.Record) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		if !errors.Is(err, ErrCorruptDocument) {
			s.logger.Error("save aborted, document unreadable", "key", key, "err", err)
			return failed(OpSave, key, err)
		}
		if berr := s.quarantine(); berr != nil {
			s.logger.Error("save aborted, cannot preserve corrupt document", "key", key, "err", berr)
			return failed(OpSave, key, fmt.Errorf("%w: %v", err, berr))
		}
		s.logger.Warn("corrupt document moved aside, starting fresh", "key", key, "err", err)
		doc = day.Document{}
	}

	doc[key] = rec.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error("save failed", "key", key, "err", err)
		return failed(OpSave, key, fmt.Errorf("store: encode document: %w", err))
	}
	if err := s.backend.Put(DocumentKey, data); err != nil {
		s.logger.Error("save failed", "key", key, "err", err)
		return failed(OpSave, key, fmt.Errorf("store: write document: %w", err))
	}
	s.logger.Debug("saved", "key", key, "bytes", len(data))

	for _, n := range s.notifiers {
		n.Saved(key)
	}
	return ok(OpSave, key)
}

// Document returns a copy of every stored day.
func (s *Store) Document() (day.Document, Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		s.logger.Warn("load failed, using empty document", "err", err)
		return day.Document{}, failed(OpLoad, "", err)
	}
	out := make(day.Document, len(doc))
	for k, v := range doc {
		out[k] = v.Repair()
	}
	return out, ok(OpLoad, "")
}

// Keys returns the stored day keys in ascending order. An unreadable
// document yields no keys and a failed Result.
func (s *Store) Keys() ([]string, Result) {
	doc, res := s.Document()
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, res
}

func (s *Store) readDocument() (day.Document, error) {
	raw, err := s.backend.Get(DocumentKey)
	if errors.Is(err, ErrNotFound) {
		return day.Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read document: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return day.Document{}, nil
	}
	var doc day.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if doc == nil {
		doc = day.Document{}
	}
	return doc, nil
}

// quarantineKey holds the last document that failed to decode.
const quarantineKey = DocumentKey + ".corrupt"

func (s *Store) quarantine() error {
	raw, err := s.backend.Get(DocumentKey)
	if err != nil {
		return err
	}
	return s.backend.Put(quarantineKey, raw)
}
