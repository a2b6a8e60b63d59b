package p3d

import (
	"fmt"

	p3dmath "github.com/Faultbox/pure3d/pkg/math"
)

// ImageFormat identifies the encoding of an ImageData payload.
type ImageFormat uint32

const (
	ImageFormatRaw       ImageFormat = 0x00
	ImageFormatPNG       ImageFormat = 0x01
	ImageFormatTGA       ImageFormat = 0x02
	ImageFormatBMP       ImageFormat = 0x03
	ImageFormatIPU       ImageFormat = 0x04
	ImageFormatDXT       ImageFormat = 0x05
	ImageFormatDXT1      ImageFormat = 0x06
	ImageFormatDXT2      ImageFormat = 0x07
	ImageFormatDXT3      ImageFormat = 0x08
	ImageFormatDXT4      ImageFormat = 0x09
	ImageFormatDXT5      ImageFormat = 0x0A
	ImageFormatPS2_4Bit  ImageFormat = 0x0B
	ImageFormatPS2_8Bit  ImageFormat = 0x0C
	ImageFormatPS2_16Bit ImageFormat = 0x0D
	ImageFormatPS2_32Bit ImageFormat = 0x0E
	ImageFormatGC_4Bit   ImageFormat = 0x0F
	ImageFormatGC_8Bit   ImageFormat = 0x10
	ImageFormatGC_16Bit  ImageFormat = 0x11
	ImageFormatGC_32Bit  ImageFormat = 0x12
	ImageFormatGC_DXT1   ImageFormat = 0x13
	ImageFormatOther     ImageFormat = 0x14
	ImageFormatInvalid   ImageFormat = 0x15
	ImageFormatUnknown   ImageFormat = 0x16
	ImageFormatP3DI2     ImageFormat = 0x19
)

var imageFormatNames = map[ImageFormat]string{
	ImageFormatRaw:       "Raw",
	ImageFormatPNG:       "PNG",
	ImageFormatTGA:       "TGA",
	ImageFormatBMP:       "BMP",
	ImageFormatIPU:       "IPU",
	ImageFormatDXT:       "DXT",
	ImageFormatDXT1:      "DXT1",
	ImageFormatDXT2:      "DXT2",
	ImageFormatDXT3:      "DXT3",
	ImageFormatDXT4:      "DXT4",
	ImageFormatDXT5:      "DXT5",
	ImageFormatPS2_4Bit:  "PS2_4Bit",
	ImageFormatPS2_8Bit:  "PS2_8Bit",
	ImageFormatPS2_16Bit: "PS2_16Bit",
	ImageFormatPS2_32Bit: "PS2_32Bit",
	ImageFormatGC_4Bit:   "GC_4Bit",
	ImageFormatGC_8Bit:   "GC_8Bit",
	ImageFormatGC_16Bit:  "GC_16Bit",
	ImageFormatGC_32Bit:  "GC_32Bit",
	ImageFormatGC_DXT1:   "GC_DXT1",
	ImageFormatOther:     "Other",
	ImageFormatInvalid:   "Invalid",
	ImageFormatUnknown:   "Unknown",
	ImageFormatP3DI2:     "P3DI2",
}

// String returns the format name.
func (f ImageFormat) String() string {
	if name, ok := imageFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ImageFormat(%d)", uint32(f))
}

// Extension returns the usual file extension for the format, or "" when
// the data is not a standalone image file.
func (f ImageFormat) Extension() string {
	switch f {
	case ImageFormatRaw:
		return "raw"
	case ImageFormatPNG:
		return "png"
	case ImageFormatTGA:
		return "tga"
	case ImageFormatBMP:
		return "bmp"
	case ImageFormatIPU:
		return "ipu"
	case ImageFormatDXT, ImageFormatDXT1, ImageFormatDXT2, ImageFormatDXT3, ImageFormatDXT4, ImageFormatDXT5:
		return "dds"
	default:
		return ""
	}
}

// Texture describes a texture. Its Image children hold the pixel data.
type Texture struct {
	Name        string
	Version     uint32
	Width       uint32
	Height      uint32
	Bpp         uint32
	AlphaDepth  uint32
	NumMipMaps  uint32
	TextureType uint32
	Usage       uint32
	Priority    uint32
}

// Image describes one image of a texture.
type Image struct {
	Name        string
	Version     uint32
	Width       uint32
	Height      uint32
	Bpp         uint32
	Palettized  uint32
	HasAlpha    uint32
	ImageFormat ImageFormat
}

// ImageData holds encoded image bytes. Data aliases the source buffer.
type ImageData struct {
	Data []byte
}

// Shader is a material definition. Its ShaderParam children carry the
// parameters.
type Shader struct {
	Name            string
	Version         uint32
	PddiShaderName  string
	HasTranslucency uint32
	VertexNeeds     uint32
	VertexMask      uint32
	NumParams       uint32
}

// ParamKind identifies which field of a ShaderParam or GameAttrParam value
// is set.
type ParamKind uint8

const (
	ParamTexture ParamKind = iota
	ParamInt
	ParamFloat
	ParamColour
	ParamVector
	ParamMatrix
)

// String returns the parameter kind name.
func (k ParamKind) String() string {
	switch k {
	case ParamTexture:
		return "Texture"
	case ParamInt:
		return "Int"
	case ParamFloat:
		return "Float"
	case ParamColour:
		return "Colour"
	case ParamVector:
		return "Vector"
	case ParamMatrix:
		return "Matrix"
	default:
		return fmt.Sprintf("ParamKind(%d)", k)
	}
}

// ParamValue is a typed parameter value. Only the field matching Kind is
// meaningful.
type ParamValue struct {
	Kind    ParamKind
	Texture string
	Int     uint32
	Float   float32
	Colour  Colour
	Vector  p3dmath.Vec3
	Matrix  p3dmath.Mat4
}

// String formats the value according to its kind.
func (v ParamValue) String() string {
	switch v.Kind {
	case ParamTexture:
		return v.Texture
	case ParamInt:
		return fmt.Sprintf("%d", v.Int)
	case ParamFloat:
		return fmt.Sprintf("%g", v.Float)
	case ParamColour:
		return v.Colour.String()
	case ParamVector:
		return fmt.Sprintf("(%g, %g, %g)", v.Vector.X, v.Vector.Y, v.Vector.Z)
	default:
		return fmt.Sprintf("%v", v.Matrix)
	}
}

// ShaderParam is one named shader parameter, keyed by a four character
// code such as TEX, LIT or 2SID.
type ShaderParam struct {
	Param string
	Value ParamValue
}

// VertexShader names the vertex program a shader uses.
type VertexShader struct {
	ShaderName string
}

func decodeTexture(c *Cursor, _ Kind) (Payload, error) {
	var t Texture
	var err error
	if t.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &t.Version, &t.Width, &t.Height, &t.Bpp, &t.AlphaDepth,
		&t.NumMipMaps, &t.TextureType, &t.Usage, &t.Priority); err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeImage(c *Cursor, _ Kind) (Payload, error) {
	var img Image
	var err error
	if img.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	var format uint32
	if err := readU32s(c, &img.Version, &img.Width, &img.Height, &img.Bpp,
		&img.Palettized, &img.HasAlpha, &format); err != nil {
		return nil, err
	}
	img.ImageFormat = ImageFormat(format)
	return &img, nil
}

func decodeImageData(c *Cursor, _ Kind) (Payload, error) {
	size, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBytes(int(size))
	if err != nil {
		return nil, err
	}
	return &ImageData{Data: data}, nil
}

func decodeShader(c *Cursor, _ Kind) (Payload, error) {
	var s Shader
	var err error
	if s.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if s.Version, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if s.PddiShaderName, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &s.HasTranslucency, &s.VertexNeeds, &s.VertexMask, &s.NumParams); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeShaderParam(c *Cursor, kind Kind) (Payload, error) {
	param, err := c.ReadFourCC()
	if err != nil {
		return nil, err
	}

	var pk ParamKind
	switch kind {
	case KindShaderTextureParam:
		pk = ParamTexture
	case KindShaderIntParam:
		pk = ParamInt
	case KindShaderFloatParam:
		pk = ParamFloat
	case KindShaderColourParam:
		pk = ParamColour
	case KindShaderVectorParam:
		pk = ParamVector
	case KindShaderMatrixParam:
		pk = ParamMatrix
	default:
		return nil, fmt.Errorf("not a shader parameter kind: %s", kind)
	}

	value, err := readParamValue(c, pk)
	if err != nil {
		return nil, err
	}
	return &ShaderParam{Param: param, Value: value}, nil
}

func decodeVertexShader(c *Cursor, _ Kind) (Payload, error) {
	name, err := c.ReadString()
	if err != nil {
		return nil, err
	}
	return &VertexShader{ShaderName: name}, nil
}

func readParamValue(c *Cursor, kind ParamKind) (ParamValue, error) {
	v := ParamValue{Kind: kind}
	var err error
	switch kind {
	case ParamTexture:
		v.Texture, err = c.ReadString()
	case ParamInt:
		v.Int, err = c.ReadU32()
	case ParamFloat:
		v.Float, err = c.ReadF32()
	case ParamColour:
		v.Colour, err = c.ReadColour()
	case ParamVector:
		v.Vector, err = c.ReadVec3()
	case ParamMatrix:
		v.Matrix, err = c.ReadMatrix()
	}
	return v, err
}
