package scene

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/pure3d/internal/p3dtest"
	p3dmath "github.com/Faultbox/pure3d/pkg/math"
	"github.com/Faultbox/pure3d/pkg/p3d"
)

func chunk(kind p3d.Kind, payload []byte, children ...[]byte) []byte {
	return p3dtest.Chunk(uint32(kind), payload, children...)
}

func file(children ...[]byte) []byte {
	return chunk(p3d.KindDataFile, nil, children...)
}

func primGroup(shader string, children ...[]byte) []byte {
	return chunk(p3d.KindOldPrimGroup, p3dtest.NewWriter().
		U32(0).String(shader).U32(uint32(p3d.TriangleList)).U32(0).U32(1).U32(1).U32(0).Bytes(),
		children...)
}

func positions() []byte {
	return chunk(p3d.KindPositionList, p3dtest.NewWriter().U32(1).Vec3(0, 0, 0).Bytes())
}

func indices() []byte {
	return chunk(p3d.KindIndexList, p3dtest.NewWriter().U32(1).U32(1).Bytes())
}

func mesh(name string, children ...[]byte) []byte {
	return chunk(p3d.KindMesh, p3dtest.NewWriter().String(name).U32(0).U32(uint32(len(children))).Bytes(), children...)
}

func skin(name, skeleton string, children ...[]byte) []byte {
	return chunk(p3d.KindSkin, p3dtest.NewWriter().
		String(name).U32(0).String(skeleton).U32(uint32(len(children))).Bytes(), children...)
}

func shader(name string, params ...[]byte) []byte {
	return chunk(p3d.KindShader, p3dtest.NewWriter().
		String(name).U32(0).String("simple").U32(0).U32(0).U32(0).U32(uint32(len(params))).Bytes(), params...)
}

func skeleton(name string, joints ...[]byte) []byte {
	return chunk(p3d.KindP3DSkeleton, p3dtest.NewWriter().String(name).U32(0).U32(uint32(len(joints))).Bytes(), joints...)
}

func joint(name string, parent uint32, rest [16]float32) []byte {
	return chunk(p3d.KindP3DSkeletonJoint, p3dtest.NewWriter().
		String(name).U32(parent).I32(0).I32(0).I32(0).I32(0).I32(0).Matrix(rest).Bytes())
}

func texture(name string, format p3d.ImageFormat, data []byte) []byte {
	img := chunk(p3d.KindImage, p3dtest.NewWriter().
		String(name).U32(0).U32(4).U32(2).U32(32).U32(0).U32(1).U32(uint32(format)).Bytes(),
		chunk(p3d.KindImageData, p3dtest.NewWriter().U32(uint32(len(data))).Raw(data...).Bytes()))
	return chunk(p3d.KindTexture, p3dtest.NewWriter().
		String(name).U32(0).U32(4).U32(2).U32(32).U32(8).U32(1).U32(0).U32(0).U32(0).Bytes(), img)
}

var identity = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

func translation(x, y, z float32) [16]float32 {
	m := identity
	m[12], m[13], m[14] = x, y, z
	return m
}

func build(t *testing.T, data []byte, opts ...Option) []Object {
	t.Helper()
	f, err := p3d.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	objs, err := Build(f, opts...)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return objs
}

func TestBuild_Mesh(t *testing.T) {
	objs := build(t, file(
		mesh("testMesh1", primGroup("shader1", positions(), indices())),
		shader("shader1"),
	))

	if len(objs) != 2 {
		t.Fatalf("got %d objects, want mesh and catalogue", len(objs))
	}
	m, ok := objs[0].(*Mesh)
	if !ok {
		t.Fatalf("objs[0] is %T", objs[0])
	}
	if m.Name != "testMesh1" || m.ObjectName() != "testMesh1" {
		t.Errorf("name = %q", m.Name)
	}
	if len(m.Shaders) != 1 || m.Shaders[0].Name != "shader1" || m.Shaders[0].Texture != "" {
		t.Errorf("shaders = %+v", m.Shaders)
	}
	if m.Shaders[0].Lit != nil || m.Shaders[0].TwoSided != nil {
		t.Errorf("absent LIT/2SID decoded as %v, %v", m.Shaders[0].Lit, m.Shaders[0].TwoSided)
	}
	if len(m.Textures) != 0 {
		t.Errorf("textures = %+v", m.Textures)
	}
	if len(m.PrimGroups) != 1 {
		t.Fatalf("got %d prim groups", len(m.PrimGroups))
	}

	g := m.PrimGroups[0]
	if len(g.Positions) != 1 || g.Positions[0] != (p3dmath.Vec3{}) {
		t.Errorf("positions = %v", g.Positions)
	}
	if len(g.Indices) != 1 || g.Indices[0] != 1 {
		t.Errorf("indices = %v", g.Indices)
	}
	if g.Normals != nil || g.Tangents != nil || g.Binormals != nil || g.UVs != nil ||
		g.Colours != nil || g.MatrixIndices != nil || g.MatrixPalette != nil || g.Weights != nil {
		t.Errorf("unexpected attributes in %+v", g)
	}
	if g.ShaderName != "shader1" || g.PrimitiveType != p3d.TriangleList {
		t.Errorf("group header = %q %v", g.ShaderName, g.PrimitiveType)
	}

	if cat, ok := objs[1].(*TextureCatalogue); !ok || len(cat.Textures) != 0 {
		t.Errorf("objs[1] = %#v", objs[1])
	}
}

func TestBuild_Skin(t *testing.T) {
	objs := build(t, file(
		skin("skin1", "skeleton1", primGroup("shader1", positions())),
		skeleton("skeleton1", joint("root", 0, identity)),
		shader("shader1"),
	))

	s, ok := objs[0].(*Skin)
	if !ok {
		t.Fatalf("objs[0] is %T", objs[0])
	}
	if s.Skeleton == nil {
		t.Fatal("skeleton not joined")
	}
	if len(s.Skeleton.Joints) != 1 {
		t.Fatalf("got %d joints", len(s.Skeleton.Joints))
	}
	j := s.Skeleton.Joints[0]
	if j.World != p3dmath.Identity() || j.InverseWorld != p3dmath.Identity() {
		t.Errorf("world %v, inverse %v; want identity", j.World, j.InverseWorld)
	}
	if len(s.Shaders) != 1 {
		t.Errorf("shaders = %+v", s.Shaders)
	}
}

func TestBuild_SkinWithoutSkeleton(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	objs := build(t, file(skin("skin1", "nowhere")), WithLogger(zap.New(core)))

	if s := objs[0].(*Skin); s.Skeleton != nil {
		t.Errorf("skeleton = %+v, want nil", s.Skeleton)
	}
	if logs.FilterMessage("skeleton not found").Len() != 1 {
		t.Error("missing skeleton not logged")
	}
}

func TestBuild_SkeletonErrors(t *testing.T) {
	tests := []struct {
		name    string
		joints  [][]byte
		wantErr error
	}{
		{
			name:    "parent after child",
			joints:  [][]byte{joint("root", 0, identity), joint("a", 2, identity), joint("b", 1, identity)},
			wantErr: ErrJointOrder,
		},
		{
			name:    "self parent",
			joints:  [][]byte{joint("root", 0, identity), joint("a", 1, identity)},
			wantErr: ErrJointOrder,
		},
		{
			name:    "singular rest pose",
			joints:  [][]byte{joint("root", 0, [16]float32{})},
			wantErr: ErrSingularTransform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := p3d.Parse(file(skin("skin1", "skel"), skeleton("skel", tt.joints...)))
			if err != nil {
				t.Fatal(err)
			}
			_, err = Build(f)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			var je *JoinError
			if !errors.As(err, &je) {
				t.Fatalf("error %T is not a *JoinError", err)
			}
			if je.Join != "skeleton" || je.Target != "skel" || je.Name != "skin1" || je.Index != 1 {
				t.Errorf("got %+v", *je)
			}
		})
	}
}

func TestBuildSkeleton_WorldTransforms(t *testing.T) {
	f, err := p3d.Parse(file(skeleton("skel",
		joint("root", 0, translation(1, 0, 0)),
		joint("child", 0, translation(0, 2, 0)),
		joint("grandchild", 1, translation(0, 0, 3)),
	)))
	if err != nil {
		t.Fatal(err)
	}

	s, err := BuildSkeleton(f, 1)
	if err != nil {
		t.Fatalf("BuildSkeleton: %v", err)
	}
	want := []p3dmath.Vec3{{X: 1}, {X: 1, Y: 2}, {X: 1, Y: 2, Z: 3}}
	for i, j := range s.Joints {
		if got := j.World.Translation(); got != want[i] {
			t.Errorf("joint %d world translation = %+v, want %+v", i, got, want[i])
		}
		if !j.World.Mul(j.InverseWorld).ApproxEqual(p3dmath.Identity(), 1e-5) {
			t.Errorf("joint %d: world * inverse is not identity", i)
		}
	}
	if i, ok := s.JointByName("grandchild"); !ok || i != 2 {
		t.Errorf("JointByName = %d, %v", i, ok)
	}

	if _, err := BuildSkeleton(f, 0); err == nil {
		t.Error("BuildSkeleton on the root chunk succeeded")
	}
}

func TestBuild_ShaderParamsAndTextures(t *testing.T) {
	tex := chunk(p3d.KindShaderTextureParam, p3dtest.NewWriter().FourCC("TEX").String("brick").Bytes())
	lit := chunk(p3d.KindShaderIntParam, p3dtest.NewWriter().FourCC("LIT").U32(1).Bytes())
	twoSided := chunk(p3d.KindShaderIntParam, p3dtest.NewWriter().FourCC("2SID").U32(0).Bytes())
	spec := chunk(p3d.KindShaderColourParam, p3dtest.NewWriter().FourCC("SPEC").Raw(0, 0, 0, 0xFF).Bytes())
	shin := chunk(p3d.KindShaderFloatParam, p3dtest.NewWriter().FourCC("SHIN").F32(8).Bytes())

	core, logs := observer.New(zap.WarnLevel)
	objs := build(t, file(
		texture("brick", p3d.ImageFormatPNG, []byte{1, 2, 3}),
		texture("unused", p3d.ImageFormatBMP, []byte{4}),
		chunk(p3d.KindTexture, p3dtest.NewWriter().String("empty").U32(0).U32(0).U32(0).U32(0).U32(0).U32(0).U32(0).U32(0).U32(0).Bytes()),
		shader("wall", tex, lit, twoSided, spec, shin),
		shader("glass", chunk(p3d.KindShaderTextureParam, p3dtest.NewWriter().FourCC("TEX").String("missing").Bytes())),
		mesh("house",
			primGroup("wall", positions()),
			primGroup("wall", positions()),
			primGroup("glass", positions()),
			primGroup("nothing", positions()),
		),
	), WithLogger(zap.New(core)))

	m := objs[0].(*Mesh)
	if len(m.Shaders) != 2 {
		t.Fatalf("got %d shaders, want wall and glass once each", len(m.Shaders))
	}
	wall := m.Shaders[0]
	if wall.Texture != "brick" || wall.Lit == nil || !*wall.Lit || wall.TwoSided == nil || *wall.TwoSided {
		t.Errorf("wall = %+v", wall)
	}
	if wall.Specular == nil || *wall.Specular != (p3d.Colour{0xFF, 0, 0, 0}) || wall.Emissive != nil {
		t.Errorf("wall colours = %v, %v", wall.Specular, wall.Emissive)
	}
	if len(wall.Params) != 5 || wall.Params[4].Param != "SHIN" {
		t.Errorf("params = %+v", wall.Params)
	}
	if v, ok := wall.Param("SHIN"); !ok || v.Float != 8 {
		t.Errorf("Param(SHIN) = %+v, %v", v, ok)
	}

	if len(m.Textures) != 1 || m.Textures[0].Name != "brick" || m.Textures[0].Format != p3d.ImageFormatPNG {
		t.Fatalf("textures = %+v", m.Textures)
	}
	if string(m.Textures[0].Data) != "\x01\x02\x03" || m.Textures[0].Width != 4 || m.Textures[0].Height != 2 {
		t.Errorf("brick = %+v", m.Textures[0])
	}

	if logs.FilterMessage("shader not found").Len() != 1 {
		t.Error("missing shader not logged once")
	}
	if logs.FilterMessage("texture not found").Len() != 1 {
		t.Error("missing texture not logged once")
	}
	if logs.FilterMessage("texture has no image data").Len() != 1 {
		t.Error("texture without image not logged once")
	}

	cat := objs[len(objs)-1].(*TextureCatalogue)
	if len(cat.Textures) != 2 || cat.Textures[0].Name != "brick" || cat.Textures[1].Name != "unused" {
		t.Errorf("catalogue = %+v", cat.Textures)
	}
	if cat.Textures[0] != m.Textures[0] {
		t.Error("catalogue and mesh do not share the texture")
	}
}

func TestBuild_ObjectOrder(t *testing.T) {
	objs := build(t, file(
		mesh("a"),
		skin("b", "none"),
		mesh("c"),
	))
	var names []string
	for _, o := range objs {
		names = append(names, o.ObjectName())
	}
	want := []string{"a", "b", "c", "textures"}
	if len(names) != len(want) {
		t.Fatalf("objects = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("objects = %v, want %v", names, want)
			break
		}
	}
}

func texParam(name string) []byte {
	return chunk(p3d.KindShaderTextureParam, p3dtest.NewWriter().FourCC("TEX").String(name).Bytes())
}

func TestBuild_ShaderWithSeveralTextures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	objs := build(t, file(
		texture("base", p3d.ImageFormatPNG, []byte{1}),
		texture("detail", p3d.ImageFormatPNG, []byte{2}),
		shader("s", texParam("base"), texParam("detail"), texParam("gone"), texParam("base")),
		mesh("m", primGroup("s", positions())),
	), WithLogger(zap.New(core)))

	m := objs[0].(*Mesh)
	var names []string
	for _, tex := range m.Textures {
		names = append(names, tex.Name)
	}
	if len(names) != 2 || names[0] != "base" || names[1] != "detail" {
		t.Errorf("textures = %v, want [base detail]", names)
	}
	if got := m.Shaders[0].TextureNames(); len(got) != 4 {
		t.Errorf("TextureNames = %v", got)
	}
	if m.Shaders[0].Texture != "base" {
		t.Errorf("Texture = %q, want first TEX value", m.Shaders[0].Texture)
	}
	if logs.FilterMessage("texture not found").Len() != 1 {
		t.Error("missing texture not logged once")
	}
}

func TestBuild_UndecodedJoint(t *testing.T) {
	// A truncated joint payload becomes *p3d.Unknown under tolerant parsing.
	broken := chunk(p3d.KindP3DSkeletonJoint, p3dtest.NewWriter().String("a").Bytes())
	f, err := p3d.Parse(file(
		skin("skin1", "skel"),
		skeleton("skel", joint("root", 0, identity), broken, joint("b", 1, identity)),
	), p3d.WithTolerantPayloads(true))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := f.Chunk(4).Payload.(*p3d.Unknown); !ok {
		t.Fatalf("chunk 4 is %T, want *p3d.Unknown", f.Chunk(4).Payload)
	}

	_, err = Build(f)
	if !errors.Is(err, ErrUndecodedJoint) {
		t.Fatalf("got %v, want ErrUndecodedJoint", err)
	}
	var je *JoinError
	if !errors.As(err, &je) || je.Join != "skeleton" {
		t.Errorf("error %v is not a skeleton *JoinError", err)
	}
}

func TestBuild_FirstUVListWins(t *testing.T) {
	uv := func(channel uint32, u float32) []byte {
		return chunk(p3d.KindUVList, p3dtest.NewWriter().U32(1).U32(channel).F32(u).F32(0).Bytes())
	}
	objs := build(t, file(mesh("m", primGroup("s", positions(), uv(0, 0.25), uv(1, 0.75)))))

	g := objs[0].(*Mesh).PrimGroups[0]
	if len(g.UVs) != 1 || g.UVs[0] != (p3dmath.Vec2{X: 0.25}) {
		t.Errorf("UVs = %v, want channel 0", g.UVs)
	}
}
