// Package scene reconstructs meshes, skins, skeletons, shaders and
// textures from a decoded Pure3D forest.
//
// Reconstructed objects share geometry slices with the forest's payloads.
// Treat them as read-only views valid for as long as the forest is.
package scene

import (
	"github.com/Faultbox/pure3d/pkg/p3d"
)

// Object is one reconstructed top-level object: *Mesh, *Skin or
// *TextureCatalogue.
type Object interface {
	ObjectName() string
	isObject()
}

// Mesh is a static mesh with its resolved shaders and textures.
type Mesh struct {
	Name       string
	Index      int // Chunk index of the mesh record
	PrimGroups []PrimGroup
	Shaders    []*Shader  // Resolved shaders, in order of first use
	Textures   []*Texture // Textures named by the shaders' TEX parameters
}

// Skin is a mesh bound to a skeleton. Skeleton is nil when no skeleton
// record carries SkeletonName.
type Skin struct {
	Name         string
	Index        int
	SkeletonName string
	Skeleton     *Skeleton
	PrimGroups   []PrimGroup
	Shaders      []*Shader
	Textures     []*Texture
}

// Texture is an encoded texture image.
type Texture struct {
	Name   string
	Index  int // Chunk index of the texture record
	Width  uint32
	Height uint32
	Format p3d.ImageFormat
	Data   []byte
}

// TextureCatalogue lists every texture in the file that carries image
// data, in file order.
type TextureCatalogue struct {
	Textures []*Texture
}

func (m *Mesh) ObjectName() string             { return m.Name }
func (s *Skin) ObjectName() string             { return s.Name }
func (c *TextureCatalogue) ObjectName() string { return "textures" }

func (*Mesh) isObject()             {}
func (*Skin) isObject()             {}
func (*TextureCatalogue) isObject() {}
