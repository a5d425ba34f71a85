// Package watcher reports when the files behind a dashboard change.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/anomredux/dashfmt/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// stamp identifies a file version. A missing file has the zero stamp.
type stamp struct {
	size    int64
	modTime time.Time
}

type Watcher struct {
	files        map[string]stamp // path -> last seen version
	mu           sync.Mutex
	pollInterval time.Duration
	onChange     func([]string)
	log          zerolog.Logger
	fsw          *fsnotify.Watcher
	reset        chan struct{} // poll interval changed
	stop         chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

// New returns a watcher over paths. onChange receives the changed paths
// and is called from the watcher's goroutines.
func New(paths []string, pollInterval time.Duration, onChange func([]string)) *Watcher {
	w := &Watcher{
		files:        make(map[string]stamp),
		pollInterval: pollInterval,
		onChange:     onChange,
		log:          zerolog.Nop(),
		reset:        make(chan struct{}, 1),
		stop:         make(chan struct{}),
	}
	w.SetFiles(paths)
	return w
}

// SetFiles replaces the watched set, keeping what is already known about
// paths that stay. New paths are recorded as they are now, so only later
// edits are reported.
func (w *Watcher) SetFiles(paths []string) {
	next := make(map[string]stamp, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		w.mu.Lock()
		s, known := w.files[p]
		w.mu.Unlock()
		if !known {
			s = current(p)
		}
		next[p] = s
	}

	w.mu.Lock()
	w.files = next
	fsw := w.fsw
	w.mu.Unlock()

	if fsw != nil {
		w.addDirs(fsw, paths)
	}
}

// SetPollInterval changes how often the polling fallback runs. A running
// poll loop picks it up at once. Non-positive intervals are ignored.
func (w *Watcher) SetPollInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	w.mu.Lock()
	w.pollInterval = d
	w.mu.Unlock()
	select {
	case w.reset <- struct{}{}:
	default:
	}
}

// PollInterval returns the current polling interval.
func (w *Watcher) PollInterval() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pollInterval
}

// Files returns the watched paths in sorted order.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.files))
	for p := range w.files {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Start begins watching with fsnotify + polling fallback.
func (w *Watcher) Start(ctx context.Context) error {
	w.log = logging.FromContext(ctx).With().Str("component", "watcher").Logger()

	// Directories are watched rather than files so that editors which
	// replace a file on save keep being seen.
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Warn().Err(err).Msg("fsnotify unavailable, polling only")
	} else {
		w.mu.Lock()
		w.fsw = fsw
		w.mu.Unlock()
		w.addDirs(fsw, w.Files())

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
						w.check([]string{filepath.Clean(event.Name)})
					}
				case err, ok := <-fsw.Errors:
					if !ok {
						return
					}
					w.log.Error().Err(err).Msg("fsnotify")
				case <-w.stop:
					fsw.Close()
					return
				}
			}
		}()
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.PollInterval())
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.check(w.Files())
			case <-w.reset:
				ticker.Reset(w.PollInterval())
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *Watcher) addDirs(fsw *fsnotify.Watcher, paths []string) {
	seen := make(map[string]bool)
	for _, p := range paths {
		dir := filepath.Dir(p)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := fsw.Add(dir); err != nil {
			w.log.Warn().Err(err).Str("dir", dir).Msg("watch dir")
		}
	}
}

// check compares the given paths against their last stamps and reports
// the ones that changed. Untracked paths are ignored.
func (w *Watcher) check(paths []string) {
	// Stat without holding the lock
	stamps := make(map[string]stamp, len(paths))
	for _, p := range paths {
		stamps[p] = current(p)
	}

	w.mu.Lock()
	var changed []string
	for p, s := range stamps {
		last, tracked := w.files[p]
		if !tracked || last == s {
			continue
		}
		w.files[p] = s
		changed = append(changed, p)
	}
	w.mu.Unlock()

	if len(changed) > 0 && w.onChange != nil {
		slices.Sort(changed)
		w.log.Debug().Strs("paths", changed).Msg("files changed")
		w.onChange(changed)
	}
}

func current(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{size: info.Size(), modTime: info.ModTime()}
}
