// Package chunk implements the self-describing binary record used by
// PNG-style containers: a 4-byte type code, a variable-length payload and a
// CRC-32 integrity checksum.
//
// # Chunk Format
//
// Chunks are serialized in a binary format with the following structure:
//
//	[Length(4)][Type(4)][Payload(Length)][CRC32(4)]
//
// Fields:
//   - Length: 32-bit unsigned payload size in bytes (big-endian)
//   - Type: 4 raw bytes identifying the chunk; bit 5 of each byte carries a
//     property flag (ancillary, private, reserved, safe-to-copy)
//   - Payload: Variable-length chunk data
//   - CRC32: 32-bit checksum for integrity validation (big-endian)
//
// The total chunk size is: 12 bytes (framing) + payload length.
//
// # CRC32 Calculation
//
// The checksum is CRC-32/ISO-HDLC (the zlib variant, crc32.IEEE) computed
// over the 4 type bytes followed by the payload, in that order. The length
// field is excluded; it is validated separately against the actual payload
// size. Corruption in either the type code or the payload changes the
// checksum.
//
// # Validation
//
// New builds a chunk without validating the type/payload combination; Parse
// is the validating path and rejects short buffers, length mismatches and
// checksum mismatches with typed errors before yielding a value. On decode
// the length and CRC fields are accepted in either byte order, while Bytes
// always emits the canonical big-endian form.
//
// # Error Handling
//
// Every failure surfaces as a typed, inspectable error carrying the
// expected and actual values (BufferTooShortError, LengthMismatchError,
// ChecksumMismatchError, InvalidTypeCodeError). Malformed input never
// panics.
//
// # Thread Safety
//
// Chunk and ChunkType are immutable after creation and safe to share
// between goroutines.
package chunk
