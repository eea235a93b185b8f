package chunk

import (
	"fmt"
	"unicode/utf8"
)

// Bit 5 of an ASCII letter switches it between upper and lower case. The four
// chunk properties live in that bit, one per type-code byte.
const caseBit = 0x20

// ChunkType is the 4-byte type code of a chunk. Bit 5 of each byte carries a
// property flag: ancillary, private, reserved, safe-to-copy.
type ChunkType struct {
	code [4]byte
}

// TypeFromBytes builds a ChunkType from raw bytes. No content validation is
// performed; callers that need a conformant code should check IsValid.
func TypeFromBytes(code [4]byte) ChunkType {
	return ChunkType{code: code}
}

// TypeFromString builds a ChunkType from a 4-character code such as "tEXt".
// Every character must be an ASCII letter. The reserved bit is not checked
// here, so a code like "Rust" parses but reports IsValid() == false.
func TypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, &InvalidTypeCodeError{Input: s}
	}
	var code [4]byte
	copy(code[:], s)
	t := ChunkType{code: code}
	if !t.IsAlphabetic() {
		return ChunkType{}, &InvalidTypeCodeError{Input: s}
	}
	return t, nil
}

// Bytes returns the raw 4-byte code.
func (t ChunkType) Bytes() [4]byte {
	return t.code
}

// IsAlphabetic reports whether every byte of the code is an ASCII letter.
func (t ChunkType) IsAlphabetic() bool {
	for _, b := range t.code {
		if !isLetter(b) {
			return false
		}
	}
	return true
}

// IsValid reports whether the code is alphabetic and its reserved bit reads
// as clear. This is the combined well-formedness check.
func (t ChunkType) IsValid() bool {
	return t.IsAlphabetic() && t.IsReservedBitValid()
}

// IsCritical reports whether a consumer must understand this chunk to
// process the container safely. The first byte holds the ancillary bit;
// uppercase means critical.
func (t ChunkType) IsCritical() bool {
	return t.code[0]&caseBit == 0
}

// IsPublic reports whether the code belongs to the public registry. The
// second byte holds the private bit; lowercase means application-private.
func (t ChunkType) IsPublic() bool {
	return t.code[1]&caseBit == 0
}

// IsReservedBitValid reports whether the reserved bit in the third byte
// reads as clear. Conformant codes must keep it clear.
func (t ChunkType) IsReservedBitValid() bool {
	return t.code[2]&caseBit == 0
}

// IsSafeToCopy reports whether a generic editor may copy this chunk verbatim
// without understanding it. The fourth byte holds the safe-to-copy bit;
// lowercase means safe.
func (t ChunkType) IsSafeToCopy() bool {
	return t.code[3]&caseBit != 0
}

// Text renders the code as its four ASCII characters. It fails with
// ErrTypeNotUTF8 for codes built from raw bytes outside the valid range;
// codes built with TypeFromString always render.
func (t ChunkType) Text() (string, error) {
	if !utf8.Valid(t.code[:]) {
		return "", ErrTypeNotUTF8
	}
	return string(t.code[:]), nil
}

// String implements fmt.Stringer, falling back to a hex rendering for codes
// that are not valid text.
func (t ChunkType) String() string {
	s, err := t.Text()
	if err != nil {
		return fmt.Sprintf("0x%x", t.code)
	}
	return s
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
