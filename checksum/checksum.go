// Package checksum computes the 4-byte integrity code appended to c32 check
// encoded payloads.
//
// The code is the first Size bytes of SHA-256(SHA-256(version ++ payload)).
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the byte length of a Checksum.
const Size = 4

type Checksum [Size]byte

// Compute returns the checksum of payload tagged with version.
//
// Any version value is accepted. Restricting it to a symbol index is the
// responsibility of the framing layer.
func Compute(payload []byte, version byte) Checksum {
	h := sha256.New()
	h.Write([]byte{version})
	h.Write(payload)

	var sum [sha256.Size]byte
	first := h.Sum(sum[:0])

	second := sha256.Sum256(first)

	return FromSlice(second[:])
}

// FromSlice copies the first Size bytes of b into a Checksum.
//
// It panics if b is shorter than Size.
func FromSlice(b []byte) Checksum {
	if len(b) < Size {
		panic("checksum: source shorter than checksum size")
	}

	var c Checksum
	copy(c[:], b)

	return c
}

// String returns the lowercase hex form of c.
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}
