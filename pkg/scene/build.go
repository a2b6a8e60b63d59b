package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/pure3d/pkg/p3d"
)

// Option configures Build.
type Option func(*builder)

// WithLogger sets the logger for unresolved references. The default
// discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.log = l
		}
	}
}

// Build reconstructs every mesh and skin in f, in chunk index order,
// followed by one TextureCatalogue. Missing shaders, textures and
// skeletons are logged and left unresolved; a skeleton that cannot be
// composed fails the build with a *JoinError.
func Build(f *p3d.Forest, opts ...Option) ([]Object, error) {
	b := newBuilder(f, opts)

	var out []Object
	for i := 0; i < f.Len(); i++ {
		switch p := f.Chunk(i).Payload.(type) {
		case *p3d.Mesh:
			out = append(out, b.mesh(i, p))
		case *p3d.Skin:
			s, err := b.skin(i, p)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	out = append(out, b.catalogue())
	return out, nil
}

type builder struct {
	f   *p3d.Forest
	log *zap.Logger

	// First record index per name; later duplicates are ignored.
	shaderIndex   map[string]int
	textureIndex  map[string]int
	skeletonIndex map[string]int

	shaders   map[int]*Shader
	textures  map[int]*Texture
	skeletons map[int]*Skeleton
}

func newBuilder(f *p3d.Forest, opts []Option) *builder {
	b := &builder{
		f:             f,
		log:           zap.NewNop(),
		shaderIndex:   make(map[string]int),
		textureIndex:  make(map[string]int),
		skeletonIndex: make(map[string]int),
		shaders:       make(map[int]*Shader),
		textures:      make(map[int]*Texture),
		skeletons:     make(map[int]*Skeleton),
	}
	for _, opt := range opts {
		opt(b)
	}

	for i := 0; i < f.Len(); i++ {
		switch p := f.Chunk(i).Payload.(type) {
		case *p3d.Shader:
			addFirst(b.shaderIndex, p.Name, i)
		case *p3d.Texture:
			addFirst(b.textureIndex, p.Name, i)
		case *p3d.Skeleton:
			addFirst(b.skeletonIndex, p.Name, i)
		}
	}
	return b
}

func addFirst(m map[string]int, name string, index int) {
	if _, ok := m[name]; !ok {
		m[name] = index
	}
}

func (b *builder) mesh(index int, m *p3d.Mesh) *Mesh {
	out := &Mesh{Name: m.Name, Index: index, PrimGroups: buildPrimGroups(b.f, index)}
	out.Shaders, out.Textures = b.materials(m.Name, out.PrimGroups)
	return out
}

func (b *builder) skin(index int, s *p3d.Skin) (*Skin, error) {
	out := &Skin{
		Name:         s.Name,
		Index:        index,
		SkeletonName: s.SkeletonName,
		PrimGroups:   buildPrimGroups(b.f, index),
	}
	out.Shaders, out.Textures = b.materials(s.Name, out.PrimGroups)

	skel, err := b.skeleton(s.SkeletonName)
	if err != nil {
		return nil, &JoinError{
			Object: "skin",
			Name:   s.Name,
			Index:  index,
			Join:   "skeleton",
			Target: s.SkeletonName,
			Err:    err,
		}
	}
	if skel == nil {
		b.log.Warn("skeleton not found",
			zap.String("skin", s.Name),
			zap.String("skeleton", s.SkeletonName))
	}
	out.Skeleton = skel
	return out, nil
}

func (b *builder) skeleton(name string) (*Skeleton, error) {
	index, ok := b.skeletonIndex[name]
	if !ok {
		return nil, nil
	}
	if s, ok := b.skeletons[index]; ok {
		return s, nil
	}
	s, err := BuildSkeleton(b.f, index)
	if err != nil {
		return nil, err
	}
	b.skeletons[index] = s
	return s, nil
}

// materials resolves the shaders named by groups and every texture named
// by a TEX parameter of those shaders, each in order of first use.
func (b *builder) materials(object string, groups []PrimGroup) ([]*Shader, []*Texture) {
	var shaders []*Shader
	seen := make(map[int]bool)
	for _, g := range groups {
		index, ok := b.shaderIndex[g.ShaderName]
		if !ok {
			b.log.Warn("shader not found",
				zap.String("object", object),
				zap.String("shader", g.ShaderName),
				zap.Int("primgroup", g.Index))
			continue
		}
		if seen[index] {
			continue
		}
		seen[index] = true
		shaders = append(shaders, b.shader(index))
	}

	var textures []*Texture
	seenTex := make(map[int]bool)
	for _, s := range shaders {
		for _, name := range s.TextureNames() {
			index, ok := b.textureIndex[name]
			if !ok {
				b.log.Warn("texture not found",
					zap.String("object", object),
					zap.String("shader", s.Name),
					zap.String("texture", name))
				continue
			}
			if seenTex[index] {
				continue
			}
			seenTex[index] = true
			if t := b.texture(index); t != nil {
				textures = append(textures, t)
			}
		}
	}
	return shaders, textures
}

func (b *builder) shader(index int) *Shader {
	if s, ok := b.shaders[index]; ok {
		return s
	}
	s := buildShader(b.f, index, b.f.Chunk(index).Payload.(*p3d.Shader))
	b.shaders[index] = s
	return s
}

func (b *builder) texture(index int) *Texture {
	if t, ok := b.textures[index]; ok {
		return t
	}
	t, ok := buildTexture(b.f, index, b.f.Chunk(index).Payload.(*p3d.Texture))
	if !ok {
		b.log.Warn("texture has no image data",
			zap.String("texture", b.f.Chunk(index).Payload.(*p3d.Texture).Name),
			zap.Int("index", index))
	}
	b.textures[index] = t
	return t
}

// catalogue lists every texture with image data in index order.
func (b *builder) catalogue() *TextureCatalogue {
	out := &TextureCatalogue{}
	for _, i := range b.f.OfKind(p3d.KindTexture) {
		if _, ok := b.f.Chunk(i).Payload.(*p3d.Texture); !ok {
			continue
		}
		if t := b.texture(i); t != nil {
			out.Textures = append(out.Textures, t)
		}
	}
	return out
}
