package chunk

import (
	"errors"
	"fmt"
)

// Errors
var (
	// ErrPayloadNotUTF8 is returned by DataAsString when the payload is not
	// valid UTF-8 text.
	ErrPayloadNotUTF8 = errors.New("chunk payload is not valid UTF-8")

	// ErrTypeNotUTF8 is returned by ChunkType.Text for raw codes outside the
	// valid text range.
	ErrTypeNotUTF8 = errors.New("chunk type code is not valid UTF-8")
)

// InvalidTypeCodeError reports a type code string that is not exactly four
// ASCII letters.
type InvalidTypeCodeError struct {
	Input string
}

func (e *InvalidTypeCodeError) Error() string {
	return fmt.Sprintf("invalid chunk type code %q: want exactly 4 ASCII letters", e.Input)
}

// BufferTooShortError reports a parse input smaller than the minimum
// length+type+crc frame.
type BufferTooShortError struct {
	Size int // bytes supplied
	Min  int // bytes required
}

func (e *BufferTooShortError) Error() string {
	return fmt.Sprintf("chunk buffer too short: %d bytes, want at least %d", e.Size, e.Min)
}

// LengthMismatchError reports a declared length field that does not match
// the actual payload size. Declared is the big-endian reading of the field.
type LengthMismatchError struct {
	Declared uint32
	Actual   uint32
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("chunk length mismatch: declared %d, actual payload %d", e.Declared, e.Actual)
}

// ChecksumMismatchError reports a declared CRC that does not match the CRC
// computed over the type code and payload. Declared is the big-endian
// reading of the field.
type ChecksumMismatchError struct {
	Declared uint32
	Computed uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("chunk crc mismatch: declared %d, computed %d", e.Declared, e.Computed)
}
