package png

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/ssargent/stegpng/pkg/chunk"
)

// maxChunkLength is the format's cap on a single payload, 2^31-1 bytes.
// A declared length above it means the stream is not a chunk stream.
const maxChunkLength = 1<<31 - 1

// ErrOversizeChunk reports a declared payload length above the format cap.
var ErrOversizeChunk = errors.New("chunk length exceeds the format maximum")

// ChunkReader provides sequential access to chunks in a byte stream. The
// stream framing reads the big-endian length field only; the per-chunk
// validation still accepts either byte order.
type ChunkReader struct {
	reader *bufio.Reader
	offset int64
}

// NewChunkReader creates a reader over an arbitrary stream, typically an
// open file positioned after the container signature.
func NewChunkReader(r io.Reader) *ChunkReader {
	return &ChunkReader{reader: bufio.NewReader(r)}
}

// ReadNext reads and validates the next chunk. It returns io.EOF at a clean
// chunk boundary; a frame cut off mid-chunk surfaces as
// io.ErrUnexpectedEOF.
func (r *ChunkReader) ReadNext() (*chunk.Chunk, error) {
	// Length field plus type code.
	header := make([]byte, 8)
	n, err := io.ReadFull(r.reader, header)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}
	r.offset += int64(n)

	length := binary.BigEndian.Uint32(header[:4])
	if length > maxChunkLength {
		return nil, ErrOversizeChunk
	}

	// Payload plus the trailing CRC.
	rest := make([]byte, int(length)+4)
	n, err = io.ReadFull(r.reader, rest)
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	r.offset += int64(n)

	frame := make([]byte, 0, len(header)+len(rest))
	frame = append(frame, header...)
	frame = append(frame, rest...)

	return chunk.Parse(frame)
}

// Offset returns the number of bytes consumed so far.
func (r *ChunkReader) Offset() int64 {
	return r.offset
}

// Iterator returns a streaming iterator over the remaining chunks.
func (r *ChunkReader) Iterator() ChunkIterator {
	return &chunkIterator{reader: r}
}

// ChunkIterator provides streaming access to chunks
type ChunkIterator interface {
	Next() bool
	Chunk() *chunk.Chunk
	Err() error
}

type chunkIterator struct {
	reader *ChunkReader
	chunk  *chunk.Chunk
	err    error
}

func (it *chunkIterator) Next() bool {
	it.chunk, it.err = it.reader.ReadNext()
	return it.err == nil
}

func (it *chunkIterator) Chunk() *chunk.Chunk {
	return it.chunk
}

// Err returns the error that stopped iteration; io.EOF means the stream
// ended cleanly.
func (it *chunkIterator) Err() error {
	return it.err
}
