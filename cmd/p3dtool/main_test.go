package main

import (
	"errors"
	"testing"

	"github.com/Faultbox/pure3d/internal/batch"
	"github.com/Faultbox/pure3d/internal/p3dtest"
	"github.com/Faultbox/pure3d/pkg/p3d"
	"github.com/Faultbox/pure3d/pkg/scene"
	"github.com/Faultbox/pure3d/pkg/texture"
)

func TestDescribe(t *testing.T) {
	shader := p3dtest.Chunk(uint32(p3d.KindShader), p3dtest.NewWriter().
		String("brick").U32(0).String("simple").U32(0).U32(0).U32(0).U32(0).Bytes())
	data := p3dtest.Chunk(uint32(p3d.KindDataFile), nil,
		shader,
		p3dtest.Chunk(0x00ABCDEF, []byte{1, 2, 3}),
	)
	f, err := p3d.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		index   int
		offsets bool
		want    string
	}{
		{0, false, "DataFile [2]"},
		{1, false, `Shader "brick"`},
		{2, false, "Kind(0x00ABCDEF) <3 bytes undecoded>"},
		{1, true, `0x0000000C Shader "brick"`},
	}
	for _, tt := range tests {
		if got := describe(f, tt.index, tt.offsets); got != tt.want {
			t.Errorf("describe(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestFileRecord(t *testing.T) {
	failed := &batch.Result{Path: "bad.p3d", Err: errors.New("boom")}
	rec := fileRecord(failed)
	if rec.Path != "bad.p3d" || rec.Err != "boom" || rec.Variant != "" || rec.Records != 0 {
		t.Errorf("failed record = %+v", rec)
	}

	ok := &batch.Result{
		Path: "good.p3d",
		Type: p3d.FileTypePure3D,
		Objects: []scene.Object{
			&scene.Mesh{Name: "a"},
			&scene.Skin{Name: "b"},
			&scene.Mesh{Name: "c"},
		},
		Textures: []batch.Texture{{
			Texture: &scene.Texture{Name: "wood", Width: 4, Height: 2, Format: p3d.ImageFormatPNG},
			Info:    texture.Info{Digest: "abc"},
		}},
	}
	rec = fileRecord(ok)
	if rec.Variant != "Pure3D" || rec.Meshes != 2 || rec.Skins != 1 {
		t.Errorf("record = %+v", rec)
	}
	if len(rec.Textures) != 1 || rec.Textures[0].Format != "PNG" || rec.Textures[0].Width != 4 || rec.Textures[0].Digest != "abc" {
		t.Errorf("textures = %+v", rec.Textures)
	}
}

func TestJoinOrDash(t *testing.T) {
	if got := joinOrDash(nil); got != "-" {
		t.Errorf("joinOrDash(nil) = %q", got)
	}
	if got := joinOrDash([]string{"a", "b"}); got != "a,b" {
		t.Errorf("joinOrDash = %q", got)
	}
}
