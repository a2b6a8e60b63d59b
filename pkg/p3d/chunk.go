package p3d

import (
	"slices"
	"strings"
)

// NoParent is the Parent value of the root chunk.
const NoParent = -1

// Span locates a chunk within its forest.
type Span struct {
	Index   int // Position in the forest arena
	Sibling int // Ordinal among the parent's children
}

// Chunk is one decoded record of a Pure3D file.
type Chunk struct {
	Kind     Kind
	Span     Span
	Parent   int   // Arena index of the parent, NoParent for the root
	Children []int // Arena indices of the children, in file order
	Payload  Payload
	Offset   int // Absolute offset of the chunk header
}

// Forest is the flat, index-addressed set of chunks parsed from one
// buffer. Chunks are stored in parse order, so a parent always has a
// lower index than its descendants. A Forest is not modified after Parse
// returns it.
type Forest struct {
	chunks []Chunk
}

// Len returns the number of chunks.
func (f *Forest) Len() int {
	return len(f.chunks)
}

// Chunk returns the chunk at index i. It panics if i is out of range, like
// a slice index. The chunk is shared with the forest and must be treated
// as read-only; use Children for a copy of its child list.
func (f *Forest) Chunk(i int) *Chunk {
	return &f.chunks[i]
}

// Root returns the index of the root chunk.
func (f *Forest) Root() (int, error) {
	if len(f.chunks) == 0 {
		return 0, ErrNoRoot
	}
	return 0, nil
}

// Children returns a copy of the child indices of chunk i.
func (f *Forest) Children(i int) []int {
	return slices.Clone(f.chunks[i].Children)
}

// ChildrenOfKind returns the indices of chunk i's children with the given
// kind, in file order.
func (f *Forest) ChildrenOfKind(i int, kind Kind) []int {
	var out []int
	for _, c := range f.chunks[i].Children {
		if f.chunks[c].Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the index of the first child of chunk i with the given
// kind.
func (f *Forest) Child(i int, kind Kind) (int, bool) {
	for _, c := range f.chunks[i].Children {
		if f.chunks[c].Kind == kind {
			return c, true
		}
	}
	return 0, false
}

// OfKind returns the indices of every chunk with the given kind, in index
// order.
func (f *Forest) OfKind(kind Kind) []int {
	var out []int
	for i := range f.chunks {
		if f.chunks[i].Kind == kind {
			out = append(out, i)
		}
	}
	return out
}

// Depth returns the number of ancestors of chunk i.
func (f *Forest) Depth(i int) int {
	d := 0
	for p := f.chunks[i].Parent; p != NoParent; p = f.chunks[p].Parent {
		d++
	}
	return d
}

// Lineage describes chunk i and its ancestors, nearest first, as
// "Kind(name)->Kind->...".
func (f *Forest) Lineage(i int) string {
	var parts []string
	for ; i != NoParent; i = f.chunks[i].Parent {
		parts = append(parts, f.label(i))
	}
	return strings.Join(parts, "->")
}

func (f *Forest) label(i int) string {
	c := &f.chunks[i]
	if name, ok := NameOf(c.Payload); ok && name != "" {
		return c.Kind.String() + "(" + name + ")"
	}
	return c.Kind.String()
}

// Walk calls fn for chunk i and its descendants in depth-first file order.
// Returning false from fn skips that chunk's children.
func (f *Forest) Walk(i int, fn func(index, depth int) bool) {
	f.walk(i, 0, fn)
}

func (f *Forest) walk(i, depth int, fn func(index, depth int) bool) {
	if !fn(i, depth) {
		return
	}
	for _, c := range f.chunks[i].Children {
		f.walk(c, depth+1, fn)
	}
}
