package chunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

const (
	headerSize  = 8 // length field + type code
	trailerSize = 4 // crc field

	// MinSize is the smallest well-formed chunk: header plus trailer around
	// an empty payload.
	MinSize = headerSize + trailerSize
)

// Chunk is a self-describing binary record: a 4-byte type code, a payload
// and a CRC-32 integrity checksum. Length and CRC are derived from the type
// and payload on demand, never stored.
//
// Serialized layout, length and CRC big-endian:
//
//	[Length(4)][Type(4)][Payload(Length)][CRC32(4)]
type Chunk struct {
	typ  ChunkType
	data []byte
}

// New builds a chunk from a type code and payload. The combination is not
// validated; producers writing their own chunks are trusted, and integrity
// is enforced on the parse path instead. The payload is copied.
func New(typ ChunkType, data []byte) *Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Chunk{typ: typ, data: owned}
}

// Parse decodes and validates a serialized chunk.
//
// The declared length must match the actual payload size and the declared
// CRC must match the CRC computed over the type code and payload. Either
// byte-order reading of the two fields counts as a match; the canonical
// encoding produced by Bytes is big-endian.
func Parse(buf []byte) (*Chunk, error) {
	if len(buf) < MinSize {
		return nil, &BufferTooShortError{Size: len(buf), Min: MinSize}
	}

	lengthField := buf[0:4]
	var code [4]byte
	copy(code[:], buf[4:headerSize])
	payload := buf[headerSize : len(buf)-trailerSize]
	crcField := buf[len(buf)-trailerSize:]

	actual := uint32(len(payload))
	beLen := binary.BigEndian.Uint32(lengthField)
	leLen := binary.LittleEndian.Uint32(lengthField)
	if actual != beLen && actual != leLen {
		return nil, &LengthMismatchError{Declared: beLen, Actual: actual}
	}

	typ := TypeFromBytes(code)
	computed := checksum(typ, payload)
	beCRC := binary.BigEndian.Uint32(crcField)
	leCRC := binary.LittleEndian.Uint32(crcField)
	if computed != beCRC && computed != leCRC {
		return nil, &ChecksumMismatchError{Declared: beCRC, Computed: computed}
	}

	return New(typ, payload), nil
}

// Length returns the payload size in bytes.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Type returns the chunk's type code.
func (c *Chunk) Type() ChunkType {
	return c.typ
}

// Data returns the payload. Callers must not modify the returned slice.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC computes the CRC-32/ISO-HDLC checksum over the type code followed by
// the payload. Corruption in either field changes the result.
func (c *Chunk) CRC() uint32 {
	return checksum(c.typ, c.data)
}

// DataAsString decodes the payload as UTF-8 text.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrPayloadNotUTF8
	}
	return string(c.data), nil
}

// Size returns the serialized size of the chunk in bytes.
func (c *Chunk) Size() int {
	return MinSize + len(c.data)
}

// Bytes serializes the chunk: big-endian length, type code, payload,
// big-endian CRC.
func (c *Chunk) Bytes() []byte {
	buf := make([]byte, c.Size())
	binary.BigEndian.PutUint32(buf[0:], c.Length())
	copy(buf[4:], c.typ.code[:])
	copy(buf[headerSize:], c.data)
	binary.BigEndian.PutUint32(buf[headerSize+len(c.data):], c.CRC())
	return buf
}

// String renders a multi-line diagnostic summary. Not part of the wire
// format.
func (c *Chunk) String() string {
	return fmt.Sprintf("Chunk {\n    Length: %d\n    Type code: %q (%v)\n    Data: %d bytes\n    CRC: %d\n}\n",
		c.Length(), c.typ.String(), c.typ.code, len(c.data), c.CRC())
}

// checksum computes crc32 (ISO-HDLC polynomial, the zlib variant) over the
// 4 type bytes followed by the payload.
func checksum(typ ChunkType, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write(typ.code[:])
	crc.Write(data)
	return crc.Sum32()
}
