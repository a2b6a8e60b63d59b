// Package p3d decodes Pure3D chunk files into a flat, index-addressed
// forest of typed records.
package p3d

import (
	"encoding/binary"
	"fmt"
	"os"
)

// FileType is the container variant named by a file's first four bytes.
type FileType uint32

const (
	FileTypeRZ                        FileType = 0x00005A52
	FileTypeCompressedPure3DBigEndian FileType = 0x5033445A
	FileTypePure3DBigEndian           FileType = 0x503344FF
	FileTypeCompressedPure3D          FileType = 0x5A443350
	FileTypePure3D                    FileType = 0xFF443350
)

// String returns the variant name.
func (t FileType) String() string {
	switch t {
	case FileTypeRZ:
		return "RZ"
	case FileTypeCompressedPure3DBigEndian:
		return "CompressedPure3DBigEndian"
	case FileTypePure3DBigEndian:
		return "Pure3DBigEndian"
	case FileTypeCompressedPure3D:
		return "CompressedPure3D"
	case FileTypePure3D:
		return "Pure3D"
	default:
		return fmt.Sprintf("FileType(0x%08X)", uint32(t))
	}
}

// DetectFileType reads the magic at the start of data. The magic is also
// the root chunk's kind, so nothing is consumed.
func DetectFileType(data []byte) (FileType, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("%w: %d bytes", ErrUnrecognizedFormat, len(data))
	}
	t := FileType(binary.LittleEndian.Uint32(data))
	switch t {
	case FileTypeRZ, FileTypeCompressedPure3DBigEndian, FileTypePure3DBigEndian,
		FileTypeCompressedPure3D, FileTypePure3D:
		return t, nil
	}
	return 0, fmt.Errorf("%w: magic 0x%08X", ErrUnrecognizedFormat, uint32(t))
}

// Parse decodes a whole Pure3D file held in memory.
func Parse(data []byte, opts ...Option) (*Forest, error) {
	return NewParser(opts...).Parse(data)
}

// ParseFile reads and decodes the Pure3D file at path.
func ParseFile(path string, opts ...Option) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading Pure3D file: %w", err)
	}
	return Parse(data, opts...)
}
