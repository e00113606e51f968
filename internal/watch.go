package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	tt "jslin/internal/types"
)

// debounce window after a write event so rapid editor saves coalesce
const watchSettle = 100 * time.Millisecond

type watcher = *fsnotify.Watcher

// IssueReporter receives the issues found after a watched file changed.
type IssueReporter func(filename string, issues []tt.Issue)

// StartWatching registers the given directories (recursively) with an
// fsnotify watcher and re-lints JavaScript files as they change. Results
// go to report. The loop runs until StopWatching is called.
func (e *Engine) StartWatching(dirs []string, report IssueReporter) error {
	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	e.watcher = w

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			e.watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.isWatching = true
	go e.watchLoop(report)
	return nil
}

// StopWatching shuts the watch loop down.
func (e *Engine) StopWatching() error {
	if !e.isWatching {
		return nil
	}
	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop(report IssueReporter) {
	for e.isWatching {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event, report)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event, report IssueReporter) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !isJSFile(event.Name) {
		return
	}

	time.Sleep(watchSettle)
	issues, err := e.Run(event.Name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		return
	}
	report(event.Name, issues)
}

func isJSFile(path string) bool {
	switch filepath.Ext(path) {
	case ".js", ".mjs", ".cjs":
		return true
	}
	return false
}
