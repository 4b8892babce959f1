package layoutfile

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reloads a layout file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching path. The parent directory is watched rather
// than the file itself, so editors that save by renaming a temporary file
// over the old one are still seen.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve layout path")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create watcher")
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", filepath.Dir(abs))
	}
	return &Watcher{path: abs, watcher: fsw}, nil
}

// Run calls fn with the reloaded document, or the load error, after every
// write to the file. It returns when ctx is cancelled or the watcher fails.
func (w *Watcher) Run(ctx context.Context, fn func(*Document, error)) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fn(Load(w.path))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "layout watcher failed")
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Watch is NewWatcher followed by Run.
func Watch(ctx context.Context, path string, fn func(*Document, error)) error {
	w, err := NewWatcher(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Run(ctx, fn)
}
