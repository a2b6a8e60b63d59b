package scene

import (
	"github.com/Faultbox/pure3d/pkg/p3d"
)

// buildTexture pulls the format and bytes of the texture record at index
// from its first Image child and that image's first ImageData child.
func buildTexture(f *p3d.Forest, index int, t *p3d.Texture) (*Texture, bool) {
	imgIndex, ok := f.Child(index, p3d.KindImage)
	if !ok {
		return nil, false
	}
	img, ok := f.Chunk(imgIndex).Payload.(*p3d.Image)
	if !ok {
		return nil, false
	}
	dataIndex, ok := f.Child(imgIndex, p3d.KindImageData)
	if !ok {
		return nil, false
	}
	data, ok := f.Chunk(dataIndex).Payload.(*p3d.ImageData)
	if !ok {
		return nil, false
	}
	return &Texture{
		Name:   t.Name,
		Index:  index,
		Width:  img.Width,
		Height: img.Height,
		Format: img.ImageFormat,
		Data:   data.Data,
	}, true
}
