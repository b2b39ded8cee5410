// Package watch turns filesystem events into a channel of settled file
// paths: a path is emitted only after it has been quiet for the settle
// delay, so files still being written are not picked up early.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches one directory for arriving files.
type Watcher struct {
	// Dir is the directory to watch. Subdirectories are not followed.
	Dir string

	// Ext filters events by file extension, e.g. ".xml". Empty matches
	// every file.
	Ext string

	// Settle is the quiet period a path must survive before it is
	// emitted. Every further write restarts the period. Defaults to one
	// second.
	Settle time.Duration
}

// Run watches until ctx is done, sending each settled path on out. The
// consumer drains out and converts synchronously; Run never converts
// anything itself.
func (w *Watcher) Run(ctx context.Context, out chan<- string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(w.Dir); err != nil {
		return err
	}

	settle := w.Settle
	if settle <= 0 {
		settle = time.Second
	}

	pending := make(map[string]*time.Timer)
	settled := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.wants(ev) {
				continue
			}
			path := ev.Name
			if t, exists := pending[path]; exists {
				t.Reset(settle)
				continue
			}
			pending[path] = time.AfterFunc(settle, func() {
				select {
				case settled <- path:
				case <-ctx.Done():
				}
			})

		case path := <-settled:
			delete(pending, path)
			select {
			case out <- path:
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "dir", w.Dir, "error", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) wants(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return false
	}
	if w.Ext != "" && !strings.EqualFold(filepath.Ext(ev.Name), w.Ext) {
		return false
	}
	return true
}
