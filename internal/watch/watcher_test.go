package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeRegen struct {
	calls atomic.Int64
}

func (f *fakeRegen) Regenerate(ctx context.Context) error {
	f.calls.Add(1)
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	sections []string
	regens   int
}

func (f *fakeNotifier) PublishContentEvent(section string) {
	f.mu.Lock()
	f.sections = append(f.sections, section)
	f.mu.Unlock()
}

func (f *fakeNotifier) PublishRegenerated() {
	f.mu.Lock()
	f.regens++
	f.mu.Unlock()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatcher_EditTriggersRegenerate(t *testing.T) {
	dataDir := t.TempDir()
	regen := &fakeRegen{}
	notifier := &fakeNotifier{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, dataDir, regen, notifier, quietLogger())
	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(dataDir, "hero.json"), []byte(`{"title":"x"}`), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return regen.calls.Load() == 1
	}, "edit did not trigger a regeneration")

	eventually(t, 2*time.Second, 50*time.Millisecond, func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		for _, s := range notifier.sections {
			if s == "hero" {
				return true
			}
		}
		return false
	}, "expected a content event for hero")

	eventually(t, 2*time.Second, 50*time.Millisecond, func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		return notifier.regens == 1
	}, "expected one regenerated notification")
}

func TestWatcher_BurstDebouncedToOneRebuild(t *testing.T) {
	dataDir := t.TempDir()
	regen := &fakeRegen{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, dataDir, regen, nil, quietLogger())
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		_ = os.WriteFile(filepath.Join(dataDir, "portfolio.json"), []byte(`{"items":[]}`), 0o644)
		time.Sleep(20 * time.Millisecond)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return regen.calls.Load() >= 1
	}, "burst did not trigger a regeneration")

	// Allow a second debounce window to elapse; no further rebuilds expected.
	time.Sleep(2 * Debounce)
	if got := regen.calls.Load(); got != 1 {
		t.Errorf("regenerations = %d, want 1 (debounced)", got)
	}
}

func TestWatcher_IgnoresNonSectionFiles(t *testing.T) {
	dataDir := t.TempDir()
	regen := &fakeRegen{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, dataDir, regen, nil, quietLogger())
	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(dataDir, "notes.txt"), []byte("scratch"), 0o644)
	_ = os.WriteFile(filepath.Join(dataDir, ".vitrine-tmp-123"), []byte("{}"), 0o644)

	time.Sleep(2 * Debounce)
	if got := regen.calls.Load(); got != 0 {
		t.Errorf("regenerations = %d, want 0 for non-section files", got)
	}
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	dataDir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dataDir, nil, nil, quietLogger())
	}()
	time.Sleep(100 * time.Millisecond)

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned error on cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after context cancel")
	}
}

func TestSectionFromPath(t *testing.T) {
	cases := []struct {
		path    string
		section string
		ok      bool
	}{
		{"/data/hero.json", "hero", true},
		{"/data/coming-soon.json", "coming-soon", true},
		{"/data/notes.txt", "", false},
		{"/data/.vitrine-tmp-42.json", "", false},
		{"/data/Hero.json", "", false},
	}
	for _, tc := range cases {
		section, ok := sectionFromPath(tc.path)
		if section != tc.section || ok != tc.ok {
			t.Errorf("sectionFromPath(%q) = (%q, %v), want (%q, %v)", tc.path, section, ok, tc.section, tc.ok)
		}
	}
}
