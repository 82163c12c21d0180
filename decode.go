// Decoding accepts the Crockford aliases O, I and L and is case insensitive.
// Any symbol decoding to zero at the start of the input counts as a leading
// zero and becomes a zero byte, so "O1" and "01" decode to the same bytes.
// Padding bits left over in the most significant symbol are dropped with the
// high-order zero bytes they produce rather than rejected.

package c32

import (
	"slices"
	"unsafe"
)

// DecodedLength returns the number of bytes required to
// decode n encoded bytes. It returns -1 if n is negative.
//
// The value is an upper bound: the decoded form is never
// longer than its encoded form.
func DecodedLength(n int) int {
	if n < 0 {
		return -1
	}

	return n
}

// validate returns an InvalidCharacterError for the first byte
// of src that is not part of the decode grammar. Bytes outside
// of ASCII are never part of it.
func validate(src []byte) error {
	for i, c := range src {
		if decodeTab[c] == c32Invalid {
			return InvalidCharacterError{Char: c, Index: i}
		}
	}

	return nil
}

// decode writes the decoded form of src into dst and returns
// the number of bytes written. dst is left untouched when an
// error is returned.
//
// invariants:
//
// - len(dst) >= DecodedLength(len(src))
func decode(dst, src []byte) (int, error) {
	if err := validate(src); err != nil {
		return 0, err
	}

	lz := 0
	for lz < len(src) && decodeTab[src[lz]] == 0 {
		lz++
	}

	var carry, carryBits uint
	pos := 0

	for i := len(src) - 1; i >= 0; i-- {
		carry |= uint(decodeTab[src[i]]) << carryBits
		carryBits += 5

		for carryBits >= 8 {
			dst[pos] = byte(carry)
			pos++

			carry >>= 8
			carryBits -= 8
		}
	}

	// byte boundaries must be exact, so the residual is
	// always flushed even when zero
	if carryBits > 0 {
		dst[pos] = byte(carry)
		pos++
	}

	// truncate zero bytes produced by padding bits
	for pos > 0 && dst[pos-1] == 0 {
		pos--
	}

	// restore one zero byte per leading zero symbol
	for range lz {
		dst[pos] = 0
		pos++
	}

	slices.Reverse(dst[:pos])

	return pos, nil
}

// DecodeInto fills dst with the decoded form of src and returns
// the number of bytes written.
//
// A BufferTooSmallError is returned without touching dst when
// len(dst) < DecodedLength(len(src)). An InvalidCharacterError
// names the leftmost offending byte of src and its index, even when
// more bytes after it are invalid. src is validated before any byte
// of dst is written.
func DecodeInto(dst, src []byte) (int, error) {
	n := DecodedLength(len(src))
	if len(dst) < n {
		return 0, BufferTooSmallError{Min: n, Len: len(dst)}
	}

	return decode(dst, src)
}

// UnsafeDecode decodes the source slice into the destination slice
// and returns the number of bytes written.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the destination does not have enough space
// in the slice for the decoded form of src.
//
// invariants:
//
// - len(dst) >= DecodedLength(len(src))
func UnsafeDecode(dst []byte, src []byte) (int, error) {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := DecodedLength(len(src)); len(dst) < n {
		panic("c32: decode destination too short")
	}

	return decode(dst, src)
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// If an error occurs during decoding then a nil slice and the error are
// returned.
func Decode(src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	dst := make([]byte, DecodedLength(n))

	n, err := DecodeInto(dst, src)
	if err != nil {
		return nil, mustFitErr(err)
	}

	return dst[:n], nil
}

// DecodeString returns the decoded form of src if src is not empty. If
// src is empty nil is returned.
func DecodeString(src string) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return nil, nil
	}

	return Decode(unsafe.Slice(unsafe.StringData(src), n))
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If an error occurs during decoding then dst is returned with its
// original length along with the error. The capacity beyond that
// length may hold partially decoded bytes.
func AppendDecode(dst, src []byte) ([]byte, error) {
	n := len(src)
	if n == 0 {
		return dst, nil
	}

	n = DecodedLength(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	n, err := DecodeInto(dst[orig:], src)
	if err != nil {
		return dst[:orig], mustFitErr(err)
	}

	return dst[:orig+n], nil
}

// DecodePrefixedInto verifies that src starts with prefix and fills dst
// with the decoded form of the rest of src.
//
// Error indexes are relative to src, prefix included. It panics if prefix
// is not an ASCII character.
func DecodePrefixedInto(dst, src []byte, prefix byte) (int, error) {
	if err := matchPrefix(src, prefix); err != nil {
		return 0, err
	}

	n, err := DecodeInto(dst, src[1:])

	return n, shiftIndex(err, 1)
}

// DecodePrefixed returns the decoded form of src after verifying and
// removing its prefix.
//
// It panics if prefix is not an ASCII character.
func DecodePrefixed(src []byte, prefix byte) ([]byte, error) {
	if err := matchPrefix(src, prefix); err != nil {
		return nil, err
	}

	dst, err := Decode(src[1:])

	return dst, shiftIndex(err, 1)
}
