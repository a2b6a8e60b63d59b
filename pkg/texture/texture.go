// Package texture inspects the embedded image files carried by Pure3D
// ImageData records.
package texture

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/ftrvxmtrx/tga"
	"github.com/zeebo/blake3"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/pure3d/pkg/p3d"
)

// ErrNoDecoder is returned for image formats that have no Go decoder,
// such as DXT blocks and console swizzled formats.
var ErrNoDecoder = errors.New("no decoder for image format")

// Info describes one inspected image.
type Info struct {
	Format p3d.ImageFormat
	Width  int
	Height int
	Model  string // Colour model, e.g. "NRGBA"; empty when not decoded
	Opaque bool
	Size   int    // Raw byte count
	Digest string // Hex BLAKE3-256 of the raw bytes
}

var decoders = map[p3d.ImageFormat]func(io.Reader) (image.Image, error){
	p3d.ImageFormatPNG: png.Decode,
	p3d.ImageFormatBMP: bmp.Decode,
	p3d.ImageFormatTGA: tga.Decode,
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Inspect decodes data as the given format and reports its dimensions.
// The digest is filled in even when decoding fails, so callers can still
// catalogue formats that return ErrNoDecoder.
func Inspect(format p3d.ImageFormat, data []byte) (Info, error) {
	info := Info{Format: format, Size: len(data), Digest: Digest(data)}

	decode, ok := decoders[format]
	if !ok {
		return info, fmt.Errorf("%v: %w", format, ErrNoDecoder)
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return info, fmt.Errorf("decoding %v image: %w", format, err)
	}

	b := img.Bounds()
	info.Width = b.Dx()
	info.Height = b.Dy()
	info.Model = modelName(img.ColorModel())
	info.Opaque = opaque(img)
	return info, nil
}

// Matches reports whether the decoded dimensions agree with the size the
// Image record declares. Undecoded images always match.
func (i Info) Matches(width, height uint32) bool {
	if i.Model == "" {
		return true
	}
	return uint32(i.Width) == width && uint32(i.Height) == height
}

func modelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.AlphaModel:
		return "Alpha"
	}
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	return "Other"
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
