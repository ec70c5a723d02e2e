package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/store"
)

// Debounce is how long the watcher waits after the last data file event
// before regenerating the page. Rapid edit bursts collapse into one rebuild.
const Debounce = 500 * time.Millisecond

// Notifier receives change notifications after the watcher reacts to
// on-disk edits.
type Notifier interface {
	PublishContentEvent(section string)
	PublishRegenerated()
}

// Watch starts an fsnotify watcher on the content data directory and
// regenerates the public page when section documents change out-of-band,
// for example when an operator edits a JSON file directly. It runs until
// ctx is cancelled.
func Watch(ctx context.Context, dataDir string, regen content.Regenerator, notifier Notifier, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dataDir); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("dir", dataDir))

	// rebuildTimer debounces bursts of writes into a single regeneration.
	var rebuildTimer *time.Timer
	var rebuildCh <-chan time.Time
	pending := make(map[string]struct{})

	scheduleRebuild := func() {
		if rebuildTimer == nil {
			rebuildTimer = time.NewTimer(Debounce)
			rebuildCh = rebuildTimer.C
		} else {
			rebuildTimer.Reset(Debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if rebuildTimer != nil {
				rebuildTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-rebuildCh:
			sections := pending
			pending = make(map[string]struct{})
			rebuild(ctx, sections, regen, notifier, logger)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			section, ok := sectionFromPath(ev.Name)
			if !ok {
				continue
			}
			logger.Debug("watcher: data file changed",
				slog.String("section", section),
				slog.String("op", ev.Op.String()))
			pending[section] = struct{}{}
			scheduleRebuild()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

func rebuild(ctx context.Context, sections map[string]struct{}, regen content.Regenerator, notifier Notifier, logger *slog.Logger) {
	if notifier != nil {
		for section := range sections {
			notifier.PublishContentEvent(section)
		}
	}
	if regen == nil {
		return
	}
	if err := regen.Regenerate(ctx); err != nil {
		logger.Warn("watcher: regenerate failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("watcher: page regenerated", slog.Int("sections", len(sections)))
	if notifier != nil {
		notifier.PublishRegenerated()
	}
}

// sectionFromPath maps a data file path to its section name. Temp files
// from atomic writes and non-JSON files are ignored.
func sectionFromPath(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".json") {
		return "", false
	}
	section := strings.TrimSuffix(base, ".json")
	if !store.ValidSection(section) {
		return "", false
	}
	return section, true
}
