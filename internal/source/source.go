// Package source loads Pure3D asset files from disk, transparently
// unpacking xz-compressed dumps, and caches their bytes.
package source

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ulikunitz/xz"
)

// xzExt marks files stored as xz streams.
const xzExt = ".xz"

// Loader reads asset files. It is safe for concurrent use.
type Loader struct {
	cache    *Cache
	maxEntry int
}

// NewLoader creates a loader that caches files up to maxEntry bytes after
// decompression. A maxEntry of 0 disables caching.
func NewLoader(maxEntry int) *Loader {
	return &Loader{
		cache:    NewCache(),
		maxEntry: maxEntry,
	}
}

// Load returns the contents of path, decompressed when the name ends in
// ".xz".
func (l *Loader) Load(path string) ([]byte, error) {
	if data, ok := l.cache.Get(path); ok {
		return data, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), xzExt) {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream %s: %w", path, err)
		}
		r = xr
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	data := buf.Bytes()
	if l.maxEntry > 0 && len(data) <= l.maxEntry {
		l.cache.Set(path, data)
	}
	return data, nil
}

// Cache returns the loader's cache.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Find walks root and returns every regular file whose name ends in one of
// exts, sorted by path.
func Find(root string, exts []string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if Match(d.Name(), exts) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	sort.Strings(out)
	return out, nil
}

// Match reports whether name ends in one of exts, ignoring case.
func Match(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// Cache is a simple in-memory cache for loaded files.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	data, ok := c.data[key]
	c.mu.RUnlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
