package batch

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Faultbox/pure3d/internal/p3dtest"
	"github.com/Faultbox/pure3d/internal/source"
	"github.com/Faultbox/pure3d/pkg/p3d"
	"github.com/Faultbox/pure3d/pkg/texture"
)

func chunk(kind p3d.Kind, payload []byte, children ...[]byte) []byte {
	return p3dtest.Chunk(uint32(kind), payload, children...)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func textureChunk(name string, format p3d.ImageFormat, data []byte) []byte {
	img := chunk(p3d.KindImage, p3dtest.NewWriter().
		String(name).U32(0).U32(4).U32(2).U32(32).U32(0).U32(1).U32(uint32(format)).Bytes(),
		chunk(p3d.KindImageData, p3dtest.NewWriter().U32(uint32(len(data))).Raw(data...).Bytes()))
	return chunk(p3d.KindTexture, p3dtest.NewWriter().
		String(name).U32(0).U32(4).U32(2).U32(32).U32(8).U32(1).U32(0).U32(0).U32(0).Bytes(), img)
}

func meshFile(t *testing.T) []byte {
	group := chunk(p3d.KindOldPrimGroup, p3dtest.NewWriter().
		U32(0).String("shader1").U32(uint32(p3d.TriangleList)).U32(0).U32(1).U32(1).U32(0).Bytes(),
		chunk(p3d.KindPositionList, p3dtest.NewWriter().U32(1).Vec3(0, 0, 0).Bytes()))
	mesh := chunk(p3d.KindMesh, p3dtest.NewWriter().String("crate").U32(0).U32(1).Bytes(), group)
	return chunk(p3d.KindDataFile, nil,
		mesh,
		textureChunk("wood", p3d.ImageFormatPNG, pngBytes(t, 4, 2)),
		textureChunk("metal", p3d.ImageFormatDXT1, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
		chunk(0x00ABCDEF, []byte{9, 9}),
	)
}

func writeFiles(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRun(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"good.p3d":    meshFile(t),
		"magic.p3d":   []byte("RIFF0000"),
		"corrupt.p3d": append(p3dtest.Header(uint32(p3d.KindDataFile), 12, 24), p3dtest.Header(0x1000, 4, 4)...),
	})
	paths := []string{
		filepath.Join(dir, "good.p3d"),
		filepath.Join(dir, "magic.p3d"),
		filepath.Join(dir, "absent.p3d"),
		filepath.Join(dir, "corrupt.p3d"),
	}

	var mu sync.Mutex
	var calls, maxDone int
	results, err := Run(context.Background(), Config{
		Workers: 3,
		Loader:  source.NewLoader(1 << 20),
		Progress: func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			if done > maxDone {
				maxDone = done
			}
			if total != len(paths) {
				t.Errorf("total = %d", total)
			}
		},
	}, paths)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != len(paths) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d is for %s, want %s", i, r.Path, paths[i])
		}
	}
	if calls != len(paths) || maxDone != len(paths) {
		t.Errorf("progress called %d times, max %d", calls, maxDone)
	}

	good := results[0]
	if good.Err != nil {
		t.Fatalf("good file: %v", good.Err)
	}
	if good.Type != p3d.FileTypePure3D {
		t.Errorf("type = %v", good.Type)
	}
	if meshes, skins := good.Counts(); meshes != 1 || skins != 0 {
		t.Errorf("counts = %d meshes, %d skins", meshes, skins)
	}
	if n := good.Unknown(); n != 1 {
		t.Errorf("unknown = %d, want 1", n)
	}
	if len(good.Textures) != 2 {
		t.Fatalf("got %d textures", len(good.Textures))
	}
	wood, metal := good.Textures[0], good.Textures[1]
	if wood.Name != "wood" || wood.Err != nil || wood.Info.Width != 4 || wood.Info.Height != 2 {
		t.Errorf("wood = %+v", wood)
	}
	if !wood.Info.Matches(wood.Width, wood.Height) {
		t.Error("wood size should match its image record")
	}
	if metal.Name != "metal" || !errors.Is(metal.Err, texture.ErrNoDecoder) || metal.Info.Digest == "" {
		t.Errorf("metal = %+v", metal)
	}

	if !errors.Is(results[1].Err, p3d.ErrUnrecognizedFormat) {
		t.Errorf("magic: %v", results[1].Err)
	}
	if results[2].Err == nil {
		t.Error("absent: expected error")
	}
	var ce *p3d.ChunkError
	if !errors.As(results[3].Err, &ce) {
		t.Errorf("corrupt: expected *p3d.ChunkError, got %v", results[3].Err)
	}
	if results[3].Unknown() != 0 {
		t.Error("failed file should report no unknown records")
	}
}

func TestRunCancelled(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{"good.p3d": meshFile(t)})
	paths := make([]string, 10)
	for i := range paths {
		paths[i] = filepath.Join(dir, "good.p3d")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Run(ctx, Config{Workers: 2}, paths)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result %d: err = %v", i, r.Err)
		}
		if r.Path != paths[i] {
			t.Errorf("result %d: path = %s", i, r.Path)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	results, err := Run(context.Background(), Config{}, nil)
	if err != nil || len(results) != 0 {
		t.Errorf("Run(nil) = %v, %v", results, err)
	}
}
