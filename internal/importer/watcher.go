package importer

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/d3ku010/macroo/internal/store"
)

// Watcher re-imports CSV drops whenever a file in the watched directory is
// written, so exports from other apps land in the log without a manual step.
type Watcher struct {
	repo    store.Repository
	watcher *fsnotify.Watcher
}

func NewWatcher(dir string, repo store.Repository) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{repo: repo, watcher: w}, nil
}

func (w *Watcher) Watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if filepath.Ext(event.Name) == ".csv" {
					w.handleFile(event.Name)
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) handleFile(path string) {
	count, err := Import(w.repo, path)
	if err != nil {
		log.Printf("importing %s: %v", path, err)
		return
	}
	log.Printf("imported %d meals from %s", count, path)
}
