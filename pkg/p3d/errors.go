package p3d

import (
	"errors"
	"fmt"
)

// Pure3D decoding errors.
var (
	ErrOverrun            = errors.New("buffer overrun")
	ErrCorruptHeader      = errors.New("corrupt chunk header")
	ErrUnrecognizedFormat = errors.New("unrecognized file format")
	ErrNoRoot             = errors.New("forest has no root chunk")
)

// overrun reports a read that needed more bytes than were left.
func overrun(need, have int) error {
	return fmt.Errorf("%w by %d bytes", ErrOverrun, need-have)
}

// ChunkError describes a fatal failure while parsing one chunk.
// Lineage names the chunk's ancestors, nearest first.
type ChunkError struct {
	Offset  int    // Absolute offset of the chunk header
	Kind    Kind   // Zero when the header itself could not be read
	Lineage string // Ancestor chain for diagnostics
	Err     error
}

func (e *ChunkError) Error() string {
	if e.Lineage == "" {
		return fmt.Sprintf("chunk %s at offset %d: %v", e.Kind, e.Offset, e.Err)
	}
	return fmt.Sprintf("chunk %s at offset %d (in %s): %v", e.Kind, e.Offset, e.Lineage, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
