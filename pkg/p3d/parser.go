package p3d

import (
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
)

// HeaderSize is the size of a chunk header: kind, data size and total
// size, each a little-endian uint32.
const HeaderSize = 12

// DefaultHexdumpLimit is the number of bytes shown per diagnostic dump.
const DefaultHexdumpLimit = 256

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for recoverable conditions. The default
// discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// WithHexdumpLimit caps the bytes shown in each diagnostic hex dump. Zero
// disables dumps.
func WithHexdumpLimit(n int) Option {
	return func(p *Parser) {
		p.hexdumpLimit = max(n, 0)
	}
}

// WithTolerantPayloads makes a failing payload decoder produce an
// *Unknown carrying the error instead of aborting the subtree.
func WithTolerantPayloads(tolerate bool) Option {
	return func(p *Parser) {
		p.tolerant = tolerate
	}
}

// WithLogUnknown controls whether chunks without a decoder are logged.
func WithLogUnknown(enabled bool) Option {
	return func(p *Parser) {
		p.logUnknown = enabled
	}
}

// Parser decodes chunk trees. A Parser holds only configuration and may
// be shared by concurrent calls.
type Parser struct {
	log          *zap.Logger
	hexdumpLimit int
	tolerant     bool
	logUnknown   bool
}

// NewParser returns a parser with the given options applied.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		log:          zap.NewNop(),
		hexdumpLimit: DefaultHexdumpLimit,
		logUnknown:   true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse validates the file magic and parses the root chunk of data.
func (p *Parser) Parse(data []byte) (*Forest, error) {
	if _, err := DetectFileType(data); err != nil {
		return nil, err
	}
	return p.ParseSubtree(data)
}

// ParseSubtree parses one chunk and its descendants from the start of
// data without checking for a file magic. Bytes after the chunk's
// declared total size are ignored.
func (p *Parser) ParseSubtree(data []byte) (*Forest, error) {
	s := &parseState{Parser: p}
	if _, err := s.parseChunk(NewCursor(data), 0, NoParent, 0); err != nil {
		return nil, err
	}
	return &Forest{chunks: s.chunks}, nil
}

// parseState is the arena under construction for one Parse call.
type parseState struct {
	*Parser
	chunks []Chunk
}

func (s *parseState) lineage(parent int) string {
	if parent == NoParent {
		return ""
	}
	f := Forest{chunks: s.chunks}
	return f.Lineage(parent)
}

// parseChunk parses the chunk at the cursor position and registers it
// with its descendants. base is the absolute offset of the cursor's first
// byte. On success the cursor has advanced by exactly the chunk's total
// size.
func (s *parseState) parseChunk(c *Cursor, base, parent, sibling int) (int, error) {
	offset := base + c.Pos()
	fail := func(kind Kind, err error) error {
		return &ChunkError{Offset: offset, Kind: kind, Lineage: s.lineage(parent), Err: err}
	}

	var rawKind, dataSize, totalSize uint32
	if err := readU32s(c, &rawKind, &dataSize, &totalSize); err != nil {
		return 0, fail(0, fmt.Errorf("reading header: %w", err))
	}
	kind := Kind(rawKind)
	if dataSize < HeaderSize || dataSize > totalSize {
		return 0, fail(kind, fmt.Errorf("%w: data size %d, total size %d", ErrCorruptHeader, dataSize, totalSize))
	}

	expected := int(dataSize - HeaderSize)
	stream := c.Bytes()
	payloadOffset := base + c.Pos()
	if expected > len(stream) {
		return 0, fail(kind, fmt.Errorf("reading payload: %w", overrun(expected, len(stream))))
	}
	payload := stream[:expected:expected]

	decoded, consumed, err := DecodePayload(kind, payload)
	if err != nil {
		if !s.tolerant {
			return 0, fail(kind, fmt.Errorf("decoding payload: %w", err))
		}
		s.log.Warn("payload decode failed, keeping raw bytes",
			zap.Stringer("kind", kind),
			zap.Int("offset", offset),
			zap.Error(err))
		decoded, consumed = &Unknown{Kind: kind, Data: payload, Err: err}, expected
	}

	index := len(s.chunks)
	s.chunks = append(s.chunks, Chunk{
		Kind:    kind,
		Span:    Span{Index: index, Sibling: sibling},
		Parent:  parent,
		Payload: decoded,
		Offset:  offset,
	})

	var children []int
	if _, unknown := decoded.(*Unknown); unknown {
		if s.logUnknown && !HasDecoder(kind) {
			s.log.Debug("no decoder for chunk",
				zap.Stringer("kind", kind),
				zap.Bool("registered", kind.Known()),
				zap.Int("offset", offset),
				zap.Int("index", index),
				zap.Int("size", expected))
		}
	} else if consumed < expected {
		end := min(int(totalSize-HeaderSize), len(stream))
		s.log.Warn("payload not fully consumed, attempting child recovery",
			zap.Stringer("kind", kind),
			zap.Int("offset", offset),
			zap.Int("index", index),
			zap.Int("expected", expected),
			zap.Int("consumed", consumed))
		children = s.recoverChildren(stream[consumed:end], payloadOffset+consumed, index, payload)
	}

	if err := c.Skip(expected); err != nil {
		return 0, fail(kind, err)
	}

	if childSize := int(totalSize - dataSize); childSize > 0 {
		childBase := base + c.Pos()
		region, err := c.Slice(childSize)
		if err != nil {
			return 0, fail(kind, fmt.Errorf("reading children: %w", err))
		}
		// Recovered children already cover this region.
		if len(children) == 0 {
			if children, err = s.parseChildren(region, childBase, index); err != nil {
				return 0, err
			}
		}
	}

	s.chunks[index].Children = children
	return index, nil
}

func (s *parseState) parseChildren(c *Cursor, base, parent int) ([]int, error) {
	var children []int
	for c.Len() > 0 {
		i, err := s.parseChunk(c, base, parent, len(children))
		if err != nil {
			return nil, err
		}
		children = append(children, i)
	}
	return children, nil
}

// recoverChildren parses region as a run of chunks starting right after
// the bytes the decoder understood. The first failure ends recovery and
// drops any partial chunk it registered.
func (s *parseState) recoverChildren(region []byte, base, parent int, payload []byte) []int {
	var children []int
	c := NewCursor(region)
	for c.Len() > 0 {
		mark := len(s.chunks)
		i, err := s.parseChunk(c, base, parent, len(children))
		if err != nil {
			s.chunks = s.chunks[:mark]
			s.log.Warn("child recovery failed",
				zap.Int("parent", parent),
				zap.Int("recovered", len(children)),
				zap.Error(err))
			s.dump("payload", payload)
			s.dump("misaligned region", region)
			break
		}
		children = append(children, i)
	}
	return children
}

func (s *parseState) dump(label string, b []byte) {
	if s.hexdumpLimit == 0 || !s.log.Core().Enabled(zap.DebugLevel) {
		return
	}
	truncated := len(b) > s.hexdumpLimit
	if truncated {
		b = b[:s.hexdumpLimit]
	}
	s.log.Debug(label,
		zap.Int("bytes", len(b)),
		zap.Bool("truncated", truncated),
		zap.String("hex", hex.Dump(b)))
}
