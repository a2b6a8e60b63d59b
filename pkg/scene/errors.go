package scene

import (
	"errors"
	"fmt"
)

// Reconstruction errors.
var (
	ErrJointOrder        = errors.New("joint parent does not precede joint")
	ErrSingularTransform = errors.New("joint world transform is not invertible")
	ErrUndecodedJoint    = errors.New("skeleton joint payload was not decoded")
)

// JoinError reports a failed join between records while reconstructing
// an object.
type JoinError struct {
	Object string // Kind of object being built, e.g. "skin"
	Name   string // Name of the object being built
	Index  int    // Chunk index of the object being built
	Join   string // Which join failed: "skeleton", "shader" or "texture"
	Target string // Name the join looked for
	Err    error
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("%s %q (chunk %d): %s join %q: %v", e.Object, e.Name, e.Index, e.Join, e.Target, e.Err)
}

func (e *JoinError) Unwrap() error {
	return e.Err
}
