package scene

import (
	"github.com/Faultbox/pure3d/pkg/p3d"
)

// Well-known shader parameter keys.
const (
	ParamTexture  = "TEX"
	ParamLit      = "LIT"
	ParamTwoSided = "2SID"
	ParamSpecular = "SPEC"
	ParamEmissive = "EMIS"
)

// Shader is a material with its parameters in file order and the
// well-known ones extracted.
type Shader struct {
	Name     string
	Index    int
	Pddi     string // Renderer shader program, e.g. "simple"
	Params   []p3d.ShaderParam
	Texture  string // First TEX parameter, "" when absent
	Lit      *bool  // nil when the shader has no LIT parameter
	TwoSided *bool
	Specular *p3d.Colour
	Emissive *p3d.Colour
}

func buildShader(f *p3d.Forest, index int, s *p3d.Shader) *Shader {
	out := &Shader{Name: s.Name, Index: index, Pddi: s.PddiShaderName}
	for _, c := range f.Children(index) {
		p, ok := f.Chunk(c).Payload.(*p3d.ShaderParam)
		if !ok {
			continue
		}
		out.Params = append(out.Params, *p)

		switch v := p.Value; {
		case p.Param == ParamTexture && v.Kind == p3d.ParamTexture:
			if out.Texture == "" {
				out.Texture = v.Texture
			}
		case p.Param == ParamLit && v.Kind == p3d.ParamInt:
			lit := v.Int > 0
			out.Lit = &lit
		case p.Param == ParamTwoSided && v.Kind == p3d.ParamInt:
			twoSided := v.Int > 0
			out.TwoSided = &twoSided
		case p.Param == ParamSpecular && v.Kind == p3d.ParamColour:
			c := v.Colour
			out.Specular = &c
		case p.Param == ParamEmissive && v.Kind == p3d.ParamColour:
			c := v.Colour
			out.Emissive = &c
		}
	}
	return out
}

// Param returns the first parameter with the given key.
func (s *Shader) Param(key string) (p3d.ParamValue, bool) {
	for _, p := range s.Params {
		if p.Param == key {
			return p.Value, true
		}
	}
	return p3d.ParamValue{}, false
}

// TextureNames returns the value of every TEX parameter in file order.
func (s *Shader) TextureNames() []string {
	var out []string
	for _, p := range s.Params {
		if p.Param == ParamTexture && p.Value.Kind == p3d.ParamTexture {
			out = append(out, p.Value.Texture)
		}
	}
	return out
}
