package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Backend is a local key-value store. Put must be all-or-nothing: after a
// failed Put the previous value is still readable.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// watchable backends expose the directory and file name prefix that change
// when the document is rewritten.
type watchable interface {
	WatchTarget() (dir string, name string)
}

// DiskvBackend keeps each key as a file under a base directory.
type DiskvBackend struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv returns a diskv backend rooted at basePath. Writes go through a
// temp directory and a rename. Reads always go to disk since other processes
// rewrite the same document.
func NewDiskv(basePath string) (*DiskvBackend, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvBackend{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}, nil
}

func (b *DiskvBackend) Get(key string) ([]byte, error) {
	rc, err := b.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (b *DiskvBackend) Put(key string, value []byte) error {
	return b.d.Write(key, value)
}

func (b *DiskvBackend) WatchTarget() (string, string) {
	return b.basePath, DocumentKey
}

// SQLiteBackend keeps keys in a single kv table.
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (and creates if needed) the database at path.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if path == "" {
		return nil, errors.New("store: database path unknown")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: migration: %w", err)
	}
	return &SQLiteBackend{db: db, path: path}, nil
}

func (b *SQLiteBackend) Get(key string) ([]byte, error) {
	var val []byte
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (b *SQLiteBackend) Put(key string, value []byte) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	_, err = tx.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) WatchTarget() (string, string) {
	return filepath.Dir(b.path), filepath.Base(b.path)
}

// MemoryBackend is an in-process backend. GetErr and PutErr, when set, are
// returned instead of touching the map.
type MemoryBackend struct {
	mu     sync.Mutex
	data   map[string][]byte
	GetErr error
	PutErr error
	puts   int
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.data[key] = append([]byte(nil), value...)
	m.puts++
	return nil
}

// Raw returns the stored bytes for key, or nil.
func (m *MemoryBackend) Raw(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data[key]...)
}

// SetRaw overwrites key without going through Put.
func (m *MemoryBackend) SetRaw(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
}

// Puts counts successful writes.
func (m *MemoryBackend) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}
