// Package assets resolves asset files across the standard search
// locations.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Locator finds asset files by trying each search directory in order.
// Successful lookups are cached by name.
type Locator struct {
	mu       sync.RWMutex
	dirs     []string
	resolved map[string]string
}

// NewLocator creates a locator over the given search directories. The
// working directory is always tried first.
func NewLocator(dirs ...string) *Locator {
	return &Locator{
		dirs:     append([]string{"."}, dirs...),
		resolved: make(map[string]string),
	}
}

// AddDir appends a search directory with lowest priority.
func (l *Locator) AddDir(dir string) {
	l.mu.Lock()
	l.dirs = append(l.dirs, dir)
	l.mu.Unlock()
}

// Resolve returns the path of the first existing candidate for name.
// Absolute paths skip the search and only get an existence check.
func (l *Locator) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("asset %s: %w", name, err)
		}
		return name, nil
	}

	l.mu.RLock()
	if path, ok := l.resolved[name]; ok {
		l.mu.RUnlock()
		return path, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, dir := range l.dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			l.resolved[name] = path
			return path, nil
		}
	}
	return "", fmt.Errorf("asset not found: %s", name)
}
