package p3d

import (
	"errors"
	"testing"

	"github.com/Faultbox/pure3d/internal/p3dtest"
	p3dmath "github.com/Faultbox/pure3d/pkg/math"
)

func decodeAll(t *testing.T, kind Kind, data []byte) Payload {
	t.Helper()
	p, consumed, err := DecodePayload(kind, data)
	if err != nil {
		t.Fatalf("DecodePayload(%v): %v", kind, err)
	}
	if consumed != len(data) {
		t.Fatalf("DecodePayload(%v) consumed %d of %d bytes", kind, consumed, len(data))
	}
	return p
}

func TestDecodeShader(t *testing.T) {
	data := p3dtest.NewWriter().
		String("shader1").U32(0).String("simple").
		U32(1).U32(2).U32(3).U32(4).Bytes()
	s, ok := decodeAll(t, KindShader, data).(*Shader)
	if !ok {
		t.Fatal("not a *Shader")
	}
	want := Shader{Name: "shader1", PddiShaderName: "simple", HasTranslucency: 1, VertexNeeds: 2, VertexMask: 3, NumParams: 4}
	if *s != want {
		t.Errorf("got %+v, want %+v", *s, want)
	}
}

func TestDecodeShaderParam(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		data []byte
		want ShaderParam
	}{
		{
			name: "texture",
			kind: KindShaderTextureParam,
			data: p3dtest.NewWriter().FourCC("TEX").String("brick.bmp").Bytes(),
			want: ShaderParam{Param: "TEX", Value: ParamValue{Kind: ParamTexture, Texture: "brick.bmp"}},
		},
		{
			name: "int",
			kind: KindShaderIntParam,
			data: p3dtest.NewWriter().FourCC("LIT").U32(1).Bytes(),
			want: ShaderParam{Param: "LIT", Value: ParamValue{Kind: ParamInt, Int: 1}},
		},
		{
			name: "float",
			kind: KindShaderFloatParam,
			data: p3dtest.NewWriter().FourCC("SHIN").F32(0.25).Bytes(),
			want: ShaderParam{Param: "SHIN", Value: ParamValue{Kind: ParamFloat, Float: 0.25}},
		},
		{
			name: "colour",
			kind: KindShaderColourParam,
			data: p3dtest.NewWriter().FourCC("SPEC").Raw(0x10, 0x20, 0x30, 0xFF).Bytes(),
			want: ShaderParam{Param: "SPEC", Value: ParamValue{Kind: ParamColour, Colour: Colour{0xFF, 0x30, 0x20, 0x10}}},
		},
		{
			name: "vector",
			kind: KindShaderVectorParam,
			data: p3dtest.NewWriter().FourCC("VEC").Vec3(1, 2, 3).Bytes(),
			want: ShaderParam{Param: "VEC", Value: ParamValue{Kind: ParamVector, Vector: p3dmath.Vec3{X: 1, Y: 2, Z: 3}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := decodeAll(t, tt.kind, tt.data).(*ShaderParam)
			if !ok {
				t.Fatal("not a *ShaderParam")
			}
			if *p != tt.want {
				t.Errorf("got %+v, want %+v", *p, tt.want)
			}
		})
	}
}

func TestDecodePrimGroup(t *testing.T) {
	vt := uint32(1 | 1<<4 | 1<<13 | 2<<15)
	data := p3dtest.NewWriter().
		U32(0).String("shader1").U32(uint32(TriangleStrip)).U32(vt).U32(3).U32(4).U32(0).Bytes()
	g, ok := decodeAll(t, KindOldPrimGroup, data).(*PrimGroup)
	if !ok {
		t.Fatal("not a *PrimGroup")
	}
	if g.ShaderName != "shader1" || g.PrimitiveType != TriangleStrip || g.NumVertices != 3 || g.NumIndices != 4 {
		t.Errorf("got %+v", *g)
	}
	if g.VertexType.UVCount() != 1 || !g.VertexType.HasNormal() || !g.VertexType.HasPosition() ||
		g.VertexType.HasColour() || g.VertexType.ColourCount() != 2 {
		t.Errorf("vertex type %#x decoded wrong", vt)
	}
	if g.PrimitiveType.String() != "TriangleStrip" {
		t.Errorf("String() = %q", g.PrimitiveType.String())
	}
}

func TestDecodeLists(t *testing.T) {
	pos := decodeAll(t, KindPositionList, p3dtest.NewWriter().U32(2).Vec3(0, 0, 0).Vec3(1, 2, 3).Bytes()).(*PositionList)
	if len(pos.Positions) != 2 || pos.Positions[1] != (p3dmath.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("positions = %+v", pos.Positions)
	}

	idx := decodeAll(t, KindIndexList, p3dtest.NewWriter().U32(3).U32(0).U32(1).U32(2).Bytes()).(*IndexList)
	if len(idx.Indices) != 3 || idx.Indices[2] != 2 {
		t.Errorf("indices = %v", idx.Indices)
	}

	// UV lists store the count before the channel.
	uv := decodeAll(t, KindUVList, p3dtest.NewWriter().U32(1).U32(2).F32(0.5).F32(1).Bytes()).(*UVList)
	if uv.Channel != 2 || len(uv.UVs) != 1 || uv.UVs[0] != (p3dmath.Vec2{X: 0.5, Y: 1}) {
		t.Errorf("uv list = %+v", *uv)
	}

	cols := decodeAll(t, KindColourList, p3dtest.NewWriter().U32(1).Raw(0, 0, 0, 0xFF).Bytes()).(*ColourList)
	if cols.Colours[0] != (Colour{0xFF, 0, 0, 0}) {
		t.Errorf("colour = %v", cols.Colours[0])
	}
}

func TestDecodeListCountOverrun(t *testing.T) {
	data := p3dtest.NewWriter().U32(1000).Vec3(0, 0, 0).Bytes()
	_, _, err := DecodePayload(KindPositionList, data)
	if !errors.Is(err, ErrOverrun) {
		t.Errorf("got %v, want ErrOverrun", err)
	}
}

func TestDecodeChannel(t *testing.T) {
	t.Run("float1", func(t *testing.T) {
		data := p3dtest.NewWriter().U32(0).FourCC("TRAN").U32(2).U16(0).U16(10).F32(1).F32(2).Bytes()
		ch := decodeAll(t, KindFloat1Channel, data).(*Channel)
		if ch.Param != "TRAN" || len(ch.Frames) != 2 || ch.Frames[1] != 10 || len(ch.Floats) != 2 || ch.Floats[1] != 2 {
			t.Errorf("got %+v", *ch)
		}
	})

	t.Run("vector1dof", func(t *testing.T) {
		data := p3dtest.NewWriter().U32(0).FourCC("TRAN").U16(1).Vec3(1, 2, 3).U32(1).U16(0).F32(5).Bytes()
		ch := decodeAll(t, KindVector1DOFChannel, data).(*Channel)
		if ch.Mapping != 1 || ch.Constants.Z != 3 || len(ch.Floats) != 1 || ch.Floats[0] != 5 {
			t.Errorf("got %+v", *ch)
		}
	})

	t.Run("compressed quaternion", func(t *testing.T) {
		data := p3dtest.NewWriter().U32(0).FourCC("ROT").U32(1).U16(0).I16(32767).I16(0).I16(0).I16(0).Bytes()
		ch := decodeAll(t, KindCompressedQuaternionChannel, data).(*Channel)
		if len(ch.Quats) != 1 || ch.Quats[0] != p3dmath.QuatIdentity() {
			t.Errorf("got %+v", ch.Quats)
		}
	})

	t.Run("bool", func(t *testing.T) {
		data := p3dtest.NewWriter().U32(0).FourCC("VIS").U16(1).U32(2).U16(3).U16(9).Bytes()
		ch := decodeAll(t, KindBoolChannel, data).(*Channel)
		if ch.StartState != 1 || len(ch.Bools) != 2 || ch.Bools[1] != 9 || ch.Frames != nil {
			t.Errorf("got %+v", *ch)
		}
	})
}

func TestDecodeSkeletonJoint(t *testing.T) {
	data := p3dtest.NewWriter().String("root").U32(0).
		I32(1).I32(2).I32(3).I32(4).I32(5).Identity().Bytes()
	j := decodeAll(t, KindP3DSkeletonJoint, data).(*SkeletonJoint)
	if j.Name != "root" || j.Parent != 0 || j.TwistAxis != 5 || j.RestPose != p3dmath.Identity() {
		t.Errorf("got %+v", *j)
	}
}

func TestDecodeWorldPayloads(t *testing.T) {
	loc := decodeAll(t, KindWBLocator, p3dtest.NewWriter().
		String("coin1").U32(uint32(LocatorCoin)).U32(1).U32(7).Vec3(1, 2, 3).U32(0).Bytes()).(*WBLocator)
	if loc.Type != LocatorCoin || loc.Type.String() != "Coin" || len(loc.Data) != 1 || loc.Position.Y != 2 {
		t.Errorf("locator = %+v", *loc)
	}

	attr := decodeAll(t, KindGameAttrFloatParam, p3dtest.NewWriter().String("speed").F32(4).Bytes()).(*GameAttrParam)
	if attr.Param != "speed" || attr.Value.Kind != ParamFloat || attr.Value.Float != 4 {
		t.Errorf("game attr = %+v", *attr)
	}

	hist := decodeAll(t, KindP3DHistory, p3dtest.NewWriter().U16(2).String("a").String("bc").Bytes()).(*History)
	if len(hist.Lines) != 2 || hist.Lines[1] != "bc" {
		t.Errorf("history = %v", hist.Lines)
	}

	cyl := decodeAll(t, KindCollisionCylinder, p3dtest.NewWriter().F32(1).F32(2).U16(1).Bytes()).(*CollisionCylinder)
	if cyl.Radius != 1 || cyl.Length != 2 || cyl.FlatEnd != 1 {
		t.Errorf("cylinder = %+v", *cyl)
	}
}

func TestDecodeImageData(t *testing.T) {
	data := p3dtest.NewWriter().U32(3).Raw(1, 2, 3).Bytes()
	img := decodeAll(t, KindImageData, data).(*ImageData)
	if string(img.Data) != "\x01\x02\x03" {
		t.Errorf("data = % X", img.Data)
	}
}

func TestDecodeRootKinds(t *testing.T) {
	for _, k := range []Kind{KindDataFile, KindDataFileCompressed, KindOldScenegraphRoot} {
		if _, ok := decodeAll(t, k, nil).(*None); !ok {
			t.Errorf("%v did not decode to *None", k)
		}
	}
}

func TestDecodeUnknown(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"unregistered", Kind(0x12345678)},
		{"registered without decoder", KindOldParticleSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte{1, 2, 3}
			p := decodeAll(t, tt.kind, data)
			u, ok := p.(*Unknown)
			if !ok {
				t.Fatalf("got %T, want *Unknown", p)
			}
			if u.Kind != tt.kind || len(u.Data) != 3 || u.Err != nil {
				t.Errorf("got %+v", *u)
			}
		})
	}
}

func TestDecodePartialConsumption(t *testing.T) {
	// Trailing bytes are reported, not rejected.
	data := append(p3dtest.NewWriter().U32(7).Bytes(), 0xAA, 0xBB)
	p, consumed, err := DecodePayload(KindRenderStatus, data)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != 4 {
		t.Errorf("consumed = %d, want 4", consumed)
	}
	if rs := p.(*RenderStatus); rs.CastShadow != 7 {
		t.Errorf("CastShadow = %d", rs.CastShadow)
	}
}

func TestNameOf(t *testing.T) {
	if name, ok := NameOf(&Mesh{Name: "m"}); !ok || name != "m" {
		t.Errorf("NameOf(Mesh) = %q, %v", name, ok)
	}
	if _, ok := NameOf(&IndexList{}); ok {
		t.Error("IndexList reported a name")
	}
}
