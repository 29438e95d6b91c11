package tui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// tasksChangedMsg is sent when task files change on disk
type tasksChangedMsg struct{}

// watchErrMsg is sent when the storage watcher fails
type watchErrMsg struct {
	err error
}

// storageWatcher watches the tasks directory so the list refreshes when
// tasks are changed by the CLI or another process while the TUI is open.
// fsnotify does not recurse, and each task.md lives inside its own task
// folder, so every task folder is watched alongside the root.
type storageWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

func newStorageWatcher(path string) *storageWatcher {
	return &storageWatcher{path: path}
}

// start opens the watcher on the tasks root and every existing task
// folder, then begins waiting for events
func (w *storageWatcher) start() tea.Cmd {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return func() tea.Msg { return watchErrMsg{err: err} }
	}

	if err := watcher.Add(w.path); err != nil {
		watcher.Close()
		return func() tea.Msg { return watchErrMsg{err: err} }
	}

	entries, err := os.ReadDir(w.path)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				watcher.Add(filepath.Join(w.path, entry.Name()))
			}
		}
	}

	w.watcher = watcher
	return w.waitForChange()
}

// waitForChange blocks on the next filesystem event
func (w *storageWatcher) waitForChange() tea.Cmd {
	if w.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				// A created task folder must be watched too, so edits
				// to the task.md inside it are seen
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						w.watcher.Add(event.Name)
					}
				}
				// Writes, creates, removes and renames all change the list
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					return tasksChangedMsg{}
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

// close releases the watcher
func (w *storageWatcher) close() {
	if w.watcher != nil {
		w.watcher.Close()
		w.watcher = nil
	}
}
