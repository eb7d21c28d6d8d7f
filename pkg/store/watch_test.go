package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWatchEmitsDocumentChanges(t *testing.T) {
	s, err := Open(testConfig{path: t.TempDir(), backend: BackendDiskv})
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if res := s.Save("2024-03-05", sampleRecord()); !res.OK {
		t.Fatalf("save: %v", res.AsError())
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventDocumentChanged || evt.Type == EventWatchError {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for document change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	s, err := Open(testConfig{path: t.TempDir(), backend: BackendDiskv})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("expected channel to close after cancel")
		}
	}
}

func TestWatchMemoryBackend(t *testing.T) {
	s := New(NewMemory())
	if _, err := s.Watch(context.Background()); !errors.Is(err, ErrNotWatchable) {
		t.Fatalf("expected ErrNotWatchable, got %v", err)
	}
}
