package p3d

import (
	"fmt"

	p3dmath "github.com/Faultbox/pure3d/pkg/math"
)

// PrimitiveType is the topology of a primitive group.
type PrimitiveType uint32

const (
	TriangleList  PrimitiveType = 0
	TriangleStrip PrimitiveType = 1
	LineList      PrimitiveType = 2
	LineStrip     PrimitiveType = 3
)

// String returns the topology name.
func (p PrimitiveType) String() string {
	switch p {
	case TriangleList:
		return "TriangleList"
	case TriangleStrip:
		return "TriangleStrip"
	case LineList:
		return "LineList"
	case LineStrip:
		return "LineStrip"
	default:
		return fmt.Sprintf("PrimitiveType(%d)", uint32(p))
	}
}

// VertexType is the vertex format bitfield of a primitive group.
//
//	bits 0-3   UV channel count
//	bit  4     normal
//	bit  5     colour
//	bit  6     specular
//	bit  7     indices
//	bit  8     weight
//	bit  9     size
//	bit  10    w
//	bit  11    binormal
//	bit  12    tangent
//	bit  13    position
//	bit  14    colour2
//	bits 15-17 colour count
type VertexType uint32

func (v VertexType) bit(n uint) bool { return v&(1<<n) != 0 }

func (v VertexType) UVCount() int      { return int(v & 0xF) }
func (v VertexType) HasNormal() bool   { return v.bit(4) }
func (v VertexType) HasColour() bool   { return v.bit(5) }
func (v VertexType) HasSpecular() bool { return v.bit(6) }
func (v VertexType) HasIndices() bool  { return v.bit(7) }
func (v VertexType) HasWeight() bool   { return v.bit(8) }
func (v VertexType) HasSize() bool     { return v.bit(9) }
func (v VertexType) HasW() bool        { return v.bit(10) }
func (v VertexType) HasBinormal() bool { return v.bit(11) }
func (v VertexType) HasTangent() bool  { return v.bit(12) }
func (v VertexType) HasPosition() bool { return v.bit(13) }
func (v VertexType) HasColour2() bool  { return v.bit(14) }
func (v VertexType) ColourCount() int  { return int(v>>15) & 0x7 }

// Mesh is a static mesh. Its PrimGroup children hold the geometry.
type Mesh struct {
	Name          string
	Version       uint32
	NumPrimGroups uint32
}

// Skin is a mesh bound to a named skeleton.
type Skin struct {
	Name          string
	Version       uint32
	SkeletonName  string
	NumPrimGroups uint32
}

// PrimGroup is a primitive group header. Attribute lists follow as
// children.
type PrimGroup struct {
	Version       uint32
	ShaderName    string
	PrimitiveType PrimitiveType
	VertexType    VertexType
	NumVertices   uint32
	NumIndices    uint32
	NumMatrices   uint32
}

type PositionList struct {
	Positions []p3dmath.Vec3
}

type NormalList struct {
	Normals []p3dmath.Vec3
}

type TangentList struct {
	Tangents []p3dmath.Vec3
}

type BinormalList struct {
	Binormals []p3dmath.Vec3
}

// PackedNormalList holds normals quantised to an index byte each.
type PackedNormalList struct {
	Normals []uint8
}

// UVList holds one texture coordinate channel.
type UVList struct {
	Channel uint32
	UVs     []p3dmath.Vec2
}

type ColourList struct {
	Colours []Colour
}

type IndexList struct {
	Indices []uint32
}

// MatrixList holds, per vertex, four indices into the group's matrix
// palette, stored like a colour.
type MatrixList struct {
	Matrices []Colour
}

// MatrixPalette maps palette slots to skeleton joint indices.
type MatrixPalette struct {
	Matrices []uint32
}

// WeightList holds three blend weights per vertex; the fourth is implied.
type WeightList struct {
	Weights []p3dmath.Vec3
}

type RenderStatus struct {
	CastShadow uint32
}

type BoundingBox struct {
	Low  p3dmath.Vec3
	High p3dmath.Vec3
}

type BoundingSphere struct {
	Centre p3dmath.Vec3
	Radius float32
}

// CompositeDrawable groups skins, props and effects around a skeleton.
type CompositeDrawable struct {
	Name         string
	SkeletonName string
}

// CompositeDrawableList is the header of a skin, prop or effect list. The
// chunk kind tells which.
type CompositeDrawableList struct {
	NumElements uint32
}

type CompositeDrawableSkin struct {
	Name          string
	IsTranslucent uint32
}

// CompositeDrawableProp is a prop or effect attached to a skeleton joint.
type CompositeDrawableProp struct {
	Name            string
	IsTranslucent   uint32
	SkeletonJointID uint32
}

// SortOrder is the draw sort key of a composite drawable element or
// scenegraph node.
type SortOrder struct {
	Order float32
}

func decodeMesh(c *Cursor, _ Kind) (Payload, error) {
	var m Mesh
	var err error
	if m.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &m.Version, &m.NumPrimGroups); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeSkin(c *Cursor, _ Kind) (Payload, error) {
	var s Skin
	var err error
	if s.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if s.Version, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if s.SkeletonName, err = c.ReadString(); err != nil {
		return nil, err
	}
	if s.NumPrimGroups, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodePrimGroup(c *Cursor, _ Kind) (Payload, error) {
	var g PrimGroup
	var err error
	if g.Version, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if g.ShaderName, err = c.ReadString(); err != nil {
		return nil, err
	}
	var prim, vt uint32
	if err := readU32s(c, &prim, &vt, &g.NumVertices, &g.NumIndices, &g.NumMatrices); err != nil {
		return nil, err
	}
	g.PrimitiveType = PrimitiveType(prim)
	g.VertexType = VertexType(vt)
	return &g, nil
}

func decodePositionList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 12, c.ReadVec3)
	if err != nil {
		return nil, err
	}
	return &PositionList{Positions: v}, nil
}

func decodeNormalList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 12, c.ReadVec3)
	if err != nil {
		return nil, err
	}
	return &NormalList{Normals: v}, nil
}

func decodeTangentList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 12, c.ReadVec3)
	if err != nil {
		return nil, err
	}
	return &TangentList{Tangents: v}, nil
}

func decodeBinormalList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 12, c.ReadVec3)
	if err != nil {
		return nil, err
	}
	return &BinormalList{Binormals: v}, nil
}

func decodePackedNormalList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 1, c.ReadU8)
	if err != nil {
		return nil, err
	}
	return &PackedNormalList{Normals: v}, nil
}

func decodeUVList(c *Cursor, _ Kind) (Payload, error) {
	n, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	channel, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	if err := c.need(n, 8); err != nil {
		return nil, err
	}
	uvs := make([]p3dmath.Vec2, n)
	for i := range uvs {
		if uvs[i], err = c.ReadVec2(); err != nil {
			return nil, err
		}
	}
	return &UVList{Channel: channel, UVs: uvs}, nil
}

func decodeColourList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 4, c.ReadColour)
	if err != nil {
		return nil, err
	}
	return &ColourList{Colours: v}, nil
}

func decodeIndexList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 4, c.ReadU32)
	if err != nil {
		return nil, err
	}
	return &IndexList{Indices: v}, nil
}

func decodeMatrixList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 4, c.ReadColour)
	if err != nil {
		return nil, err
	}
	return &MatrixList{Matrices: v}, nil
}

func decodeMatrixPalette(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 4, c.ReadU32)
	if err != nil {
		return nil, err
	}
	return &MatrixPalette{Matrices: v}, nil
}

func decodeWeightList(c *Cursor, _ Kind) (Payload, error) {
	v, err := readList(c, 12, c.ReadVec3)
	if err != nil {
		return nil, err
	}
	return &WeightList{Weights: v}, nil
}

func decodeRenderStatus(c *Cursor, _ Kind) (Payload, error) {
	v, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	return &RenderStatus{CastShadow: v}, nil
}

func decodeBoundingBox(c *Cursor, _ Kind) (Payload, error) {
	var b BoundingBox
	if err := readVec3s(c, &b.Low, &b.High); err != nil {
		return nil, err
	}
	return &b, nil
}

func decodeBoundingSphere(c *Cursor, _ Kind) (Payload, error) {
	var s BoundingSphere
	var err error
	if s.Centre, err = c.ReadVec3(); err != nil {
		return nil, err
	}
	if s.Radius, err = c.ReadF32(); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeCompositeDrawable(c *Cursor, _ Kind) (Payload, error) {
	var d CompositeDrawable
	if err := readStrings(c, &d.Name, &d.SkeletonName); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeCompositeDrawableList(c *Cursor, _ Kind) (Payload, error) {
	n, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	return &CompositeDrawableList{NumElements: n}, nil
}

func decodeCompositeDrawableSkin(c *Cursor, _ Kind) (Payload, error) {
	var s CompositeDrawableSkin
	var err error
	if s.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if s.IsTranslucent, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeCompositeDrawableProp(c *Cursor, _ Kind) (Payload, error) {
	var p CompositeDrawableProp
	var err error
	if p.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &p.IsTranslucent, &p.SkeletonJointID); err != nil {
		return nil, err
	}
	return &p, nil
}

func decodeSortOrder(c *Cursor, _ Kind) (Payload, error) {
	v, err := c.ReadF32()
	if err != nil {
		return nil, err
	}
	return &SortOrder{Order: v}, nil
}
