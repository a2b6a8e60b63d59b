package scene

import (
	p3dmath "github.com/Faultbox/pure3d/pkg/math"
	"github.com/Faultbox/pure3d/pkg/p3d"
)

// PrimGroup is one drawable piece of a mesh or skin. Every attribute is
// optional; a nil slice means the group has no list of that kind.
type PrimGroup struct {
	Index         int // Chunk index of the primitive group record
	ShaderName    string
	PrimitiveType p3d.PrimitiveType
	VertexType    p3d.VertexType

	Positions []p3dmath.Vec3
	Normals   []p3dmath.Vec3
	Tangents  []p3dmath.Vec3
	Binormals []p3dmath.Vec3
	Indices   []uint32
	UVs       []p3dmath.Vec2 // First UV list in file order; later channels are dropped
	Colours   []p3d.Colour

	MatrixIndices []p3d.Colour // Four palette slots per vertex
	MatrixPalette []uint32     // Palette slot to skeleton joint
	Weights       []p3dmath.Vec3
}

func buildPrimGroup(f *p3d.Forest, index int, g *p3d.PrimGroup) PrimGroup {
	out := PrimGroup{
		Index:         index,
		ShaderName:    g.ShaderName,
		PrimitiveType: g.PrimitiveType,
		VertexType:    g.VertexType,
	}
	for _, c := range f.Children(index) {
		switch v := f.Chunk(c).Payload.(type) {
		case *p3d.PositionList:
			out.Positions = firstOf(out.Positions, v.Positions)
		case *p3d.NormalList:
			out.Normals = firstOf(out.Normals, v.Normals)
		case *p3d.TangentList:
			out.Tangents = firstOf(out.Tangents, v.Tangents)
		case *p3d.BinormalList:
			out.Binormals = firstOf(out.Binormals, v.Binormals)
		case *p3d.IndexList:
			out.Indices = firstOf(out.Indices, v.Indices)
		case *p3d.UVList:
			out.UVs = firstOf(out.UVs, v.UVs)
		case *p3d.ColourList:
			out.Colours = firstOf(out.Colours, v.Colours)
		case *p3d.MatrixList:
			out.MatrixIndices = firstOf(out.MatrixIndices, v.Matrices)
		case *p3d.MatrixPalette:
			out.MatrixPalette = firstOf(out.MatrixPalette, v.Matrices)
		case *p3d.WeightList:
			out.Weights = firstOf(out.Weights, v.Weights)
		}
	}
	return out
}

// firstOf keeps the first list seen for an attribute.
func firstOf[T any](have, next []T) []T {
	if have != nil {
		return have
	}
	return next
}

func buildPrimGroups(f *p3d.Forest, parent int) []PrimGroup {
	var out []PrimGroup
	for _, c := range f.ChildrenOfKind(parent, p3d.KindOldPrimGroup) {
		if g, ok := f.Chunk(c).Payload.(*p3d.PrimGroup); ok {
			out = append(out, buildPrimGroup(f, c, g))
		}
	}
	return out
}
