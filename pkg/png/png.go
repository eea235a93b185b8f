// Package png models a PNG-style container: the 8-byte file signature
// followed by a sequence of CRC-checked chunks. It consumes only the
// chunk package's serialize and parse operations.
package png

import (
	"bytes"
	"errors"
	"io"

	"github.com/ssargent/stegpng/pkg/chunk"
)

// Signature is the 8-byte header that opens every PNG file.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// endCode marks the end-of-stream chunk of a well-formed file.
const endCode = "IEND"

// Errors
var (
	ErrBadSignature  = errors.New("missing or corrupt PNG signature")
	ErrChunkNotFound = errors.New("no chunk with the requested type code")
)

// PNG is an ordered sequence of chunks behind the file signature.
type PNG struct {
	chunks []*chunk.Chunk
}

// FromChunks builds a container from an existing chunk sequence.
func FromChunks(chunks []*chunk.Chunk) *PNG {
	return &PNG{chunks: chunks}
}

// Parse reads a whole container: the signature, then chunks until the end of
// input. Frame boundaries come from each chunk's big-endian length field;
// a chunk that fails validation aborts the parse with its typed error.
func Parse(data []byte) (*PNG, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		return nil, ErrBadSignature
	}

	r := NewChunkReader(bytes.NewReader(data[len(Signature):]))
	var chunks []*chunk.Chunk
	for {
		c, err := r.ReadNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}

	return &PNG{chunks: chunks}, nil
}

// Chunks returns the chunk sequence in file order.
func (p *PNG) Chunks() []*chunk.Chunk {
	return p.chunks
}

// Bytes serializes the container: signature followed by every chunk.
func (p *PNG) Bytes() []byte {
	var buf bytes.Buffer
	buf.Write(Signature[:])
	for _, c := range p.chunks {
		buf.Write(c.Bytes())
	}
	return buf.Bytes()
}

// AppendChunk adds a chunk to the container. When the file ends with an IEND
// chunk the new one is inserted in front of it so the stream stays
// well-terminated; otherwise it goes last.
func (p *PNG) AppendChunk(c *chunk.Chunk) {
	n := len(p.chunks)
	if n > 0 && p.chunks[n-1].Type().String() == endCode {
		p.chunks = append(p.chunks[:n-1], c, p.chunks[n-1])
		return
	}
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type code renders as the given
// text, or nil when none matches.
func (p *PNG) ChunkByType(code string) *chunk.Chunk {
	for _, c := range p.chunks {
		if c.Type().String() == code {
			return c
		}
	}
	return nil
}

// RemoveFirstChunk removes and returns the first chunk with the given type
// code. It fails with ErrChunkNotFound when no chunk matches.
func (p *PNG) RemoveFirstChunk(code string) (*chunk.Chunk, error) {
	for i, c := range p.chunks {
		if c.Type().String() == code {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, ErrChunkNotFound
}
