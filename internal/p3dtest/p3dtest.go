// Package p3dtest builds Pure3D byte streams for tests.
package p3dtest

import (
	"encoding/binary"
	"math"
)

// Writer appends little-endian payload fields.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) U8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

func (w *Writer) U16(v uint16) *Writer {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return w
}

func (w *Writer) I16(v int16) *Writer {
	return w.U16(uint16(v))
}

func (w *Writer) U32(v uint32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

func (w *Writer) I32(v int32) *Writer {
	return w.U32(uint32(v))
}

func (w *Writer) F32(v float32) *Writer {
	return w.U32(math.Float32bits(v))
}

// String writes a length byte followed by s.
func (w *Writer) String(s string) *Writer {
	w.buf = append(w.buf, byte(len(s)))
	w.buf = append(w.buf, s...)
	return w
}

// FourCC writes s padded or cut to four bytes.
func (w *Writer) FourCC(s string) *Writer {
	var b [4]byte
	copy(b[:], s)
	w.buf = append(w.buf, b[:]...)
	return w
}

func (w *Writer) Raw(b ...byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

func (w *Writer) Vec3(x, y, z float32) *Writer {
	return w.F32(x).F32(y).F32(z)
}

// Matrix writes sixteen floats in file order.
func (w *Writer) Matrix(m [16]float32) *Writer {
	for _, v := range m {
		w.F32(v)
	}
	return w
}

// Identity writes an identity matrix.
func (w *Writer) Identity() *Writer {
	return w.Matrix([16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1})
}

// Bytes returns the written payload.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Header returns a raw chunk header.
func Header(kind, dataSize, totalSize uint32) []byte {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint32(b[0:], kind)
	binary.LittleEndian.PutUint32(b[4:], dataSize)
	binary.LittleEndian.PutUint32(b[8:], totalSize)
	return b
}

// Chunk frames payload and the already framed children with a correct
// header.
func Chunk(kind uint32, payload []byte, children ...[]byte) []byte {
	dataSize := 12 + len(payload)
	total := dataSize
	for _, c := range children {
		total += len(c)
	}
	out := Header(kind, uint32(dataSize), uint32(total))
	out = append(out, payload...)
	for _, c := range children {
		out = append(out, c...)
	}
	return out
}
