package source

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ulikunitz/xz"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("P3D\xff\x0c\x00\x00\x00\x0c\x00\x00\x00")

	plain := filepath.Join(dir, "plain.p3d")
	packed := filepath.Join(dir, "packed.p3d.xz")
	writeFile(t, plain, payload)
	writeFile(t, packed, compress(t, payload))

	l := NewLoader(1 << 20)
	for _, path := range []string{plain, packed} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			got, err := l.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("got %x, want %x", got, payload)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.p3d.xz")
	writeFile(t, bad, []byte("not xz at all"))

	l := NewLoader(1 << 20)
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "absent.p3d")},
		{"corrupt xz", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.Load(tt.path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadCaches(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.p3d")
	large := filepath.Join(dir, "large.p3d")
	writeFile(t, small, make([]byte, 8))
	writeFile(t, large, make([]byte, 64))

	l := NewLoader(16)
	for i := 0; i < 3; i++ {
		if _, err := l.Load(small); err != nil {
			t.Fatal(err)
		}
		if _, err := l.Load(large); err != nil {
			t.Fatal(err)
		}
	}

	if n := l.Cache().Len(); n != 1 {
		t.Errorf("expected 1 cached entry, got %d", n)
	}
	hits, misses := l.Cache().Stats()
	if hits != 2 || misses != 4 {
		t.Errorf("expected 2 hits and 4 misses, got %d and %d", hits, misses)
	}

	l.Cache().Clear()
	if hits, misses := l.Cache().Stats(); hits != 0 || misses != 0 || l.Cache().Len() != 0 {
		t.Error("Clear did not reset the cache")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%2))
			c.Set(key, []byte{byte(i)})
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if hits, _ := c.Stats(); hits != 8 {
		t.Errorf("expected 8 hits, got %d", hits)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"b.p3d",
		"art/a.P3D",
		"art/c.p3d.xz",
		"art/readme.txt",
		"d.p3dx",
	} {
		writeFile(t, filepath.Join(dir, name), nil)
	}

	got, err := Find(dir, []string{".p3d", ".p3d.xz"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := []string{
		filepath.Join(dir, "art", "a.P3D"),
		filepath.Join(dir, "art", "c.p3d.xz"),
		filepath.Join(dir, "b.p3d"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("file %d: got %s, want %s", i, got[i], want[i])
		}
	}

	if _, err := Find(filepath.Join(dir, "missing"), []string{".p3d"}); err == nil {
		t.Error("expected error for missing root")
	}
}
