package p3d

import (
	"errors"
	"math"
	"testing"

	"github.com/Faultbox/pure3d/internal/p3dtest"
)

func TestCursor_Integers(t *testing.T) {
	data := p3dtest.NewWriter().U8(7).U16(0x1234).U32(0xDEADBEEF).I32(-5).F32(1.5).I16(-2).Bytes()
	c := NewCursor(data)

	if v, err := c.ReadU8(); err != nil || v != 7 {
		t.Fatalf("ReadU8 = %d, %v", v, err)
	}
	if v, err := c.ReadU16(); err != nil || v != 0x1234 {
		t.Fatalf("ReadU16 = %#x, %v", v, err)
	}
	if v, err := c.ReadU32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %#x, %v", v, err)
	}
	if v, err := c.ReadI32(); err != nil || v != -5 {
		t.Fatalf("ReadI32 = %d, %v", v, err)
	}
	if v, err := c.ReadF32(); err != nil || v != 1.5 {
		t.Fatalf("ReadF32 = %g, %v", v, err)
	}
	if v, err := c.ReadI16(); err != nil || v != -2 {
		t.Fatalf("ReadI16 = %d, %v", v, err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after reading everything", c.Len())
	}
}

func TestCursor_Overrun(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(c *Cursor) error
	}{
		{"u8 empty", nil, func(c *Cursor) error { _, err := c.ReadU8(); return err }},
		{"u16 short", []byte{1}, func(c *Cursor) error { _, err := c.ReadU16(); return err }},
		{"u32 short", []byte{1, 2, 3}, func(c *Cursor) error { _, err := c.ReadU32(); return err }},
		{"f32 short", []byte{1, 2}, func(c *Cursor) error { _, err := c.ReadF32(); return err }},
		{"string length past end", []byte{5, 'a', 'b'}, func(c *Cursor) error { _, err := c.ReadString(); return err }},
		{"fourcc short", []byte("TE"), func(c *Cursor) error { _, err := c.ReadFourCC(); return err }},
		{"matrix short", make([]byte, 60), func(c *Cursor) error { _, err := c.ReadMatrix(); return err }},
		{"skip past end", []byte{1}, func(c *Cursor) error { return c.Skip(2) }},
		{"negative skip", []byte{1}, func(c *Cursor) error { return c.Skip(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.data)
			err := tt.read(c)
			if !errors.Is(err, ErrOverrun) {
				t.Fatalf("got %v, want ErrOverrun", err)
			}
			if c.Pos() != 0 && tt.name != "string length past end" {
				t.Errorf("failed read advanced cursor to %d", c.Pos())
			}
		})
	}
}

func TestCursor_OverrunMessage(t *testing.T) {
	_, err := NewCursor([]byte{1}).ReadU32()
	if err == nil || err.Error() != "buffer overrun by 3 bytes" {
		t.Errorf("error = %v, want buffer overrun by 3 bytes", err)
	}
}

func TestCursor_ReadString(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain", p3dtest.NewWriter().String("testMesh1").Bytes(), "testMesh1"},
		{"empty", []byte{0}, ""},
		{"null padded", []byte{8, 'm', 'e', 's', 'h', 0, 0, 0, 0}, "mesh"},
		{"non ascii dropped", []byte{4, 'a', 0xE9, 'b', 0x90}, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.data)
			got, err := c.ReadString()
			if err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadString = %q, want %q", got, tt.want)
			}
			if c.Len() != 0 {
				t.Errorf("%d bytes left, want the whole declared length consumed", c.Len())
			}
		})
	}
}

func TestCursor_ReadFourCC(t *testing.T) {
	c := NewCursor([]byte{'T', 'E', 'X', 0, 'L', 'I', 'T', 0})
	for _, want := range []string{"TEX", "LIT"} {
		got, err := c.ReadFourCC()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ReadFourCC = %q, want %q", got, want)
		}
	}
}

func TestCursor_ReadColour(t *testing.T) {
	tests := []struct {
		data []byte
		want Colour
	}{
		{[]byte{0x00, 0x00, 0x00, 0xFF}, Colour{0xFF, 0x00, 0x00, 0x00}},
		{[]byte{0x10, 0x20, 0x30, 0x40}, Colour{0x40, 0x30, 0x20, 0x10}},
	}

	for _, tt := range tests {
		got, err := NewCursor(tt.data).ReadColour()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("ReadColour(% X) = %v, want %v", tt.data, got, tt.want)
		}
	}

	c := Colour{0xFF, 0x00, 0x00, 0x00}
	if c.A() != 0xFF || c.R() != 0 || c.G() != 0 || c.B() != 0 {
		t.Errorf("accessors of %v wrong", c)
	}
	if c.String() != "#FF000000" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestCursor_ReadCompressedQuaternion(t *testing.T) {
	data := p3dtest.NewWriter().I16(32767).I16(0).I16(-32767).I16(16384).Bytes()
	q, err := NewCursor(data).ReadCompressedQuaternion()
	if err != nil {
		t.Fatal(err)
	}
	if q.W != 1 || q.X != 0 || q.Y != -1 {
		t.Errorf("got %+v", q)
	}
	if math.Abs(float64(q.Z)-16384.0/32767.0) > 1e-6 {
		t.Errorf("Z = %g", q.Z)
	}
}

func TestCursor_ReadMatrix(t *testing.T) {
	var file [16]float32
	for i := range file {
		file[i] = float32(i + 1)
	}
	m, err := NewCursor(p3dtest.NewWriter().Matrix(file).Bytes()).ReadMatrix()
	if err != nil {
		t.Fatal(err)
	}
	// The fourth row of the file matrix holds the translation.
	tr := m.Translation()
	if tr.X != 13 || tr.Y != 14 || tr.Z != 15 {
		t.Errorf("Translation() = %+v, want (13, 14, 15)", tr)
	}
}

func TestCursor_Slice(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	sub, err := c.Slice(3)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Len() != 3 || c.Pos() != 3 {
		t.Fatalf("sub.Len() = %d, parent Pos() = %d", sub.Len(), c.Pos())
	}
	if _, err := sub.ReadU32(); !errors.Is(err, ErrOverrun) {
		t.Errorf("read past slice end: %v, want ErrOverrun", err)
	}
	if v, _ := c.ReadU8(); v != 4 {
		t.Errorf("parent continued at %d, want 4", v)
	}
}

func TestCursor_CountGuardsAllocation(t *testing.T) {
	// A count of 0xFFFFFFFF with four bytes left must fail before any
	// allocation.
	data := p3dtest.NewWriter().U32(0xFFFFFFFF).U32(0).Bytes()
	if _, err := NewCursor(data).count(12); !errors.Is(err, ErrOverrun) {
		t.Errorf("count() = %v, want ErrOverrun", err)
	}
}
