package catalog

import (
	"context"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestScanLifecycle(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	id, err := s.BeginScan(ctx, "/art")
	if err != nil {
		t.Fatalf("BeginScan: %v", err)
	}

	files := []File{
		{
			Path: "/art/b.p3d", Variant: "Pure3D", Records: 12, Meshes: 1,
			Textures: []Texture{
				{Name: "brick", Format: "PNG", Width: 4, Height: 4, Digest: "aa"},
				{Name: "moss", Format: "DXT1", Digest: "bb"},
			},
		},
		{
			Path: "/art/a.p3d", Variant: "Pure3D", Records: 3, Unknown: 1, Skins: 1,
			Textures: []Texture{{Name: "brick_copy", Format: "PNG", Width: 4, Height: 4, Digest: "aa"}},
		},
		{Path: "/art/c.p3d", Variant: "", Err: "unrecognized file format"},
	}
	for _, f := range files {
		if err := s.RecordFile(ctx, id, f); err != nil {
			t.Fatalf("RecordFile(%s): %v", f.Path, err)
		}
	}
	if err := s.FinishScan(ctx, id); err != nil {
		t.Fatalf("FinishScan: %v", err)
	}

	got, err := s.Files(ctx, id)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 files, got %d", len(got))
	}
	if got[0].Path != "/art/a.p3d" || got[0].Unknown != 1 || got[0].Skins != 1 {
		t.Errorf("unexpected first file %+v", got[0])
	}
	if got[2].Err != "unrecognized file format" {
		t.Errorf("expected error to round trip, got %q", got[2].Err)
	}

	hits, err := s.Textures(ctx, "aa")
	if err != nil {
		t.Fatalf("Textures: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Path != "/art/a.p3d" || hits[0].Name != "brick_copy" || hits[0].ScanID != id {
		t.Errorf("unexpected first hit %+v", hits[0])
	}
	if hits[1].Width != 4 || hits[1].Format != "PNG" {
		t.Errorf("unexpected second hit %+v", hits[1])
	}

	if hits, _ := s.Textures(ctx, "zz"); len(hits) != 0 {
		t.Errorf("expected no hits, got %d", len(hits))
	}
}

func TestRecordFileErrors(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	if err := s.RecordFile(ctx, "not-a-uuid", File{Path: "x"}); err == nil {
		t.Error("expected invalid scan id error")
	}

	id, err := s.BeginScan(ctx, "/art")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RecordFile(ctx, id, File{Path: "dup.p3d"}); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordFile(ctx, id, File{Path: "dup.p3d"}); err == nil {
		t.Error("expected duplicate path to fail")
	}
}

func TestFinishUnknownScan(t *testing.T) {
	s := openStore(t)
	if err := s.FinishScan(context.Background(), "6f1c3c1e-8d3a-4a55-9d1f-0f4f6c1e2b3a"); err == nil {
		t.Error("expected error for unknown scan")
	}
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	id, err := s.BeginScan(ctx, "/art")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RecordFile(ctx, id, File{Path: "a.p3d", Textures: []Texture{{Name: "t", Digest: "cc"}}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	hits, err := s.Textures(ctx, "cc")
	if err != nil || len(hits) != 1 {
		t.Errorf("expected one hit after reopen, got %d (%v)", len(hits), err)
	}
}
