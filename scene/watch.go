package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before a change is
// reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a scene file. Its directory is watched rather
// than the file so editors that save by rename are still seen. Saves that
// leave the content unchanged are not reported.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	sum      uint64
	Events   chan string
	Errors   chan error
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewWatcher watches the scene file at path.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	if !isSpecFile(path) {
		return nil, fmt.Errorf("scene: watch %s: not a yaml file", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		watcher:  w,
		path:     abs,
		debounce: debounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	if data, err := os.ReadFile(abs); err == nil {
		watcher.sum = xxhash.Sum64(data)
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// report once the file has been quiet for the debounce period
			timer.Reset(w.debounce)

		case <-timer.C:
			data, err := os.ReadFile(w.path)
			if err != nil {
				w.report(err)
				continue
			}
			sum := xxhash.Sum64(data)
			if sum == w.sum {
				continue
			}
			w.sum = sum

			select {
			case w.Events <- w.path:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)

		case <-w.closeCh:
			return
		}
	}
}

// report drops err if the previous one has not been read.
func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
