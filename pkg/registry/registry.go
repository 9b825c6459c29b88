/*
Package registry maintains the index of module names that the search
engines run against.

Names are stored in a Patricia trie keyed by the full dotted name, with the
module's source file path as the item when the enumerator knows it. The
first enumeration of a Python environment is slow, so the registry keeps a
sorted snapshot of all names and hands the same slice to every query until
the index changes.
*/
package registry

import (
	"sort"
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is a single enumerated module: its dotted name and, when known,
// the path to its source file.
type Entry struct {
	Name       string
	SourcePath string
}

// Source enumerates module entries. Enumeration may be arbitrarily slow;
// the registry caches results so sources are only consulted on load and
// explicit reload.
type Source interface {
	Entries() ([]Entry, error)
}

// Registry is a trie-backed module name index, safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	trie  *patricia.Trie
	count int
	names []string
	dirty bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{trie: patricia.NewTrie()}
}

// Add indexes a module name with its source path. Returns false for empty
// names and duplicates; a duplicate keeps the path it was first seen with.
func (r *Registry) Add(name, sourcePath string) bool {
	if name == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.trie.Insert(patricia.Prefix(name), sourcePath) {
		return false
	}
	r.count++
	r.dirty = true
	return true
}

// Len reports how many names are indexed.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// TopLevelCount counts indexed names without submodule segments.
func (r *Registry) TopLevelCount() int {
	cnt := 0
	for _, name := range r.Names() {
		if !containsDelimiter(name) {
			cnt++
		}
	}
	return cnt
}

// Names returns a sorted snapshot of every indexed name. The slice is
// shared across calls until the index changes; callers must not mutate it.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.names == nil || r.dirty {
		names := make([]string, 0, r.count)
		_ = r.trie.Visit(func(prefix patricia.Prefix, _ patricia.Item) error {
			names = append(names, string(prefix))
			return nil
		})
		sort.Strings(names)
		r.names = names
		r.dirty = false
	}
	return r.names
}

// SourcePath returns the source file path recorded for a name, if any.
func (r *Registry) SourcePath(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item := r.trie.Get(patricia.Prefix(name))
	if item == nil {
		return "", false
	}
	path, ok := item.(string)
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// Reload replaces the index with entries from the given sources. On error
// the previous index is left untouched. Returns the new name count.
func (r *Registry) Reload(sources ...Source) (int, error) {
	trie := patricia.NewTrie()
	count := 0
	for _, src := range sources {
		entries, err := src.Entries()
		if err != nil {
			return 0, err
		}
		for _, e := range entries {
			if e.Name == "" {
				continue
			}
			if trie.Insert(patricia.Prefix(e.Name), e.SourcePath) {
				count++
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.trie = trie
	r.count = count
	r.names = nil
	r.dirty = false
	return count, nil
}

func containsDelimiter(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return true
		}
	}
	return false
}
