package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/debugdraw/engine/core"
)

// Watcher reports changes to individual files. It watches the parent
// directory of every file, since editors often save by replacing the file,
// which would drop a watch placed on the file itself.
//
// Changes are buffered; when the buffer is full further changes are dropped,
// as the reader reloads from disk anyway.
type Watcher struct {
	files map[string]struct{}
	dirs  map[string]int

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	changes  chan string
	errors   chan error
}

func NewWatcher() (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		files:    make(map[string]struct{}),
		dirs:     make(map[string]int),
		fsnotify: fsWatch,
		changes:  make(chan string, 8),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	return w, nil
}

// Watch starts reporting changes to the named file.
func (w *Watcher) Watch(name string) error {
	path, err := filepath.Abs(name)
	if err != nil {
		return err
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return errors.New("watcher already closed")
	}
	if _, ok := w.files[path]; ok {
		return nil
	}
	dir := filepath.Dir(path)
	if w.dirs[dir] == 0 {
		if err := w.fsnotify.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[path] = struct{}{}
	core.LogDebug("watching %s", path)
	return nil
}

// Unwatch stops reporting changes to the named file.
func (w *Watcher) Unwatch(name string) error {
	path, err := filepath.Abs(name)
	if err != nil {
		return err
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()
	if _, ok := w.files[path]; !ok {
		return nil
	}
	delete(w.files, path)
	dir := filepath.Dir(path)
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		return w.fsnotify.Remove(dir)
	}
	return nil
}

// Changes delivers the absolute path of every changed file.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return nil
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {

		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			path, err := filepath.Abs(e.Name)
			if err != nil {
				continue
			}
			w.mutex.RLock()
			_, watched := w.files[path]
			w.mutex.RUnlock()
			if watched {
				w.notify(path)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			select {
			case w.errors <- err:
			default:
			}

		case <-w.done:
			w.fsnotify.Close()
			close(w.changes)
			close(w.errors)
			return
		}
	}
}

func (w *Watcher) notify(path string) {
	select {
	case w.changes <- path:
	default:
		// the reader has not caught up, a change is already queued
		core.LogDebug("dropping change of %s", path)
	}
}
