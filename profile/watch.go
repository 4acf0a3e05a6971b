// SPDX-License-Identifier: Unlicense OR MIT

package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long Watch waits for a burst of file events to end
// before reloading. Editors often write a file in several steps.
var settle = 100 * time.Millisecond

// Watch reloads the profile file at path whenever it changes and calls fn
// with the new set, or with the error of the failed load. fn runs on the
// goroutine calling Watch. Watch returns when ctx is done or the watcher
// fails.
func Watch(ctx context.Context, path string, fn func(*Set, error)) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("profile: watch: %w", err)
	}
	defer w.Close()
	// Watch the directory: saving by rename replaces the file's inode.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("profile: watch %s: %w", path, err)
	}

	settle := settle
	timer := time.NewTimer(settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("profile: watch %s: %w", path, err)
		case <-timer.C:
			fn(Load(path))
		}
	}
}
