package p3d

import (
	"encoding/binary"
	"math"

	"github.com/Faultbox/pure3d/pkg/encoding"
	p3dmath "github.com/Faultbox/pure3d/pkg/math"
)

// Cursor is a bounds-checked little-endian reader over a byte slice.
// Every read fails with ErrOverrun instead of panicking when the slice
// is exhausted. Sub-cursors returned by Slice share the backing array.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Bytes returns the unread bytes without consuming them.
func (c *Cursor) Bytes() []byte {
	return c.data[c.pos:]
}

func (c *Cursor) take(n int) ([]byte, error) {
	if n < 0 || c.Len() < n {
		return nil, overrun(n, c.Len())
	}
	b := c.data[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances past n bytes.
func (c *Cursor) Skip(n int) error {
	_, err := c.take(n)
	return err
}

// Slice returns a sub-cursor over the next n bytes and advances past them.
func (c *Cursor) Slice(n int) (*Cursor, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	return NewCursor(b), nil
}

// ReadBytes returns the next n bytes. The result aliases the input.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	return c.take(n)
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	return math.Float32frombits(v), err
}

// ReadString reads a length byte followed by that many bytes. NUL and
// non-ASCII bytes are dropped from the result.
func (c *Cursor) ReadString() (string, error) {
	n, err := c.ReadU8()
	if err != nil {
		return "", err
	}
	b, err := c.take(int(n))
	if err != nil {
		return "", err
	}
	return encoding.ASCII(b), nil
}

// ReadFourCC reads a four character code with the same filtering as
// ReadString.
func (c *Cursor) ReadFourCC() (string, error) {
	b, err := c.take(4)
	if err != nil {
		return "", err
	}
	return encoding.ASCII(b), nil
}

// ReadColour reads four bytes stored B, G, R, A and returns them as
// A, R, G, B.
func (c *Cursor) ReadColour() (Colour, error) {
	b, err := c.take(4)
	if err != nil {
		return Colour{}, err
	}
	return Colour{b[3], b[2], b[1], b[0]}, nil
}

func (c *Cursor) ReadVec2() (p3dmath.Vec2, error) {
	b, err := c.take(8)
	if err != nil {
		return p3dmath.Vec2{}, err
	}
	return p3dmath.Vec2{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
	}, nil
}

func (c *Cursor) ReadVec3() (p3dmath.Vec3, error) {
	b, err := c.take(12)
	if err != nil {
		return p3dmath.Vec3{}, err
	}
	return p3dmath.Vec3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	}, nil
}

// ReadQuaternion reads four floats in W, X, Y, Z order.
func (c *Cursor) ReadQuaternion() (p3dmath.Quat, error) {
	var v [4]float32
	for i := range v {
		f, err := c.ReadF32()
		if err != nil {
			return p3dmath.Quat{}, err
		}
		v[i] = f
	}
	return p3dmath.Quat{W: v[0], X: v[1], Y: v[2], Z: v[3]}, nil
}

// ReadCompressedQuaternion reads four int16 components in W, X, Y, Z
// order, each scaled by 1/32767.
func (c *Cursor) ReadCompressedQuaternion() (p3dmath.Quat, error) {
	var v [4]int16
	for i := range v {
		s, err := c.ReadI16()
		if err != nil {
			return p3dmath.Quat{}, err
		}
		v[i] = s
	}
	return p3dmath.QuatFromCompressed(v[0], v[1], v[2], v[3]), nil
}

// ReadMatrix reads sixteen floats in M11..M44 order.
func (c *Cursor) ReadMatrix() (p3dmath.Mat4, error) {
	b, err := c.take(64)
	if err != nil {
		return p3dmath.Mat4{}, err
	}
	var v [16]float32
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return p3dmath.FromRowMajor(v), nil
}

// count reads a u32 element count and checks that count*size bytes
// remain, so a corrupt count cannot trigger a huge allocation.
func (c *Cursor) count(size int) (int, error) {
	n, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	if err := c.need(n, size); err != nil {
		return 0, err
	}
	return int(n), nil
}

// need checks that n elements of size bytes each remain.
func (c *Cursor) need(n uint32, size int) error {
	total := uint64(n) * uint64(size)
	if total > uint64(c.Len()) {
		return overrun(int(min(total, math.MaxInt32)), c.Len())
	}
	return nil
}
