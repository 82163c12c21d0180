package c32

import (
	"slices"
	"unsafe"
)

// EncodedLength returns the number of bytes required to
// encode n bytes. It returns -1 if the input byte length
// cannot be encoded properly.
//
// The value is an upper bound: leading and trailing zero
// handling can make the actual encoded form shorter.
func EncodedLength(n int) int {
	if n < 0 {
		return -1
	}

	result := encodedLenExpression(n)
	if result <= n && n != 0 {
		return -1
	}

	return result
}

// encodedLenExpression is (n*8+4)/5 rearranged so the
// multiplication only overflows when the result would.
func encodedLenExpression(n int) int {
	return (n/5)*8 + ((n%5)*8+4)/5
}

func encodedLen(n int) int {
	result := encodedLenExpression(n)
	if result <= n && n != 0 {
		panic("c32: invalid encode source length")
	}

	return result
}

// packBytes shifts bytes into the carry register from the
// last byte to the first and writes a symbol every time
// five bits are available, least significant symbol first.
func packBytes(dst []byte, pos int, src []byte, carry, carryBits uint) (int, uint, uint) {
	for i := len(src) - 1; i >= 0; i-- {
		carry |= uint(src[i]) << carryBits
		carryBits += 8

		for carryBits >= 5 {
			dst[pos] = encodeTab[carry&31]
			pos++

			carry >>= 5
			carryBits -= 5
		}
	}

	return pos, carry, carryBits
}

func leadingZeroBytes(b []byte) int {
	n := 0
	for n < len(b) && b[n] == 0 {
		n++
	}

	return n
}

// encode writes the encoded form of the concatenation of
// src and tail into dst and returns the number of bytes
// written.
//
// invariants:
//
// - len(dst) >= encodedLen(len(src) + len(tail))
func encode(dst, src, tail []byte) int {
	lz := leadingZeroBytes(src)
	if lz == len(src) {
		lz += leadingZeroBytes(tail)
	}

	var carry, carryBits uint
	pos := 0

	pos, carry, carryBits = packBytes(dst, pos, tail, carry, carryBits)
	pos, carry, carryBits = packBytes(dst, pos, src, carry, carryBits)

	// an all-zero residual would only add a symbol that
	// gets truncated below
	if carryBits > 0 && carry > 0 {
		dst[pos] = encodeTab[carry&31]
		pos++
	}

	// truncate zero symbols produced by high-order zero bits
	for pos > 0 && dst[pos-1] == zeroSymbol {
		pos--
	}

	// restore one zero symbol per leading zero byte
	for range lz {
		dst[pos] = zeroSymbol
		pos++
	}

	slices.Reverse(dst[:pos])

	return pos
}

// EncodeInto fills dst with the encoded form of src and
// returns the number of bytes written.
//
// A BufferTooSmallError is returned without touching dst
// when len(dst) < EncodedLength(len(src)).
func EncodeInto(dst, src []byte) (int, error) {
	n := encodedLen(len(src))
	if len(dst) < n {
		return 0, BufferTooSmallError{Min: n, Len: len(dst)}
	}

	return encode(dst, src, nil), nil
}

// UnsafeEncode fills dst with the encoded form of src and
// returns the number of bytes written.
//
// It should generally only be used when working with pre-validated
// sizes of data like in the case of data types with known byte-lengths.
//
// This function panics if the destination does not have enough
// space in the slice for the encoded form of src.
//
// invariants:
//
// - len(dst) >= EncodedLength(len(src))
func UnsafeEncode(dst []byte, src []byte) int {
	// guard statements forcing panics rather than letting next call
	// lead to undefined behaviors

	if n := encodedLen(len(src)); len(dst) < n {
		panic("c32: encode destination too short")
	}

	return encode(dst, src, nil)
}

// Encode returns nil if src is empty, otherwise it returns the
// encoded form of src.
func Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	dst := make([]byte, encodedLen(n))

	n = mustFit(EncodeInto(dst, src))

	return dst[:n]
}

// EncodeToString returns "" if src is empty, otherwise it returns
// the encoded form of src.
func EncodeToString(src []byte) string {
	return string(Encode(src))
}

// EncodeString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func EncodeString(src string) string {
	n := len(src)
	if n == 0 {
		return ""
	}

	return EncodeToString(unsafe.Slice(unsafe.StringData(src), n))
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	n = mustFit(EncodeInto(dst[orig:], src))

	return dst[:orig+n]
}

// AppendEncodeString returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func AppendEncodeString(dst []byte, src string) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	return AppendEncode(dst, unsafe.Slice(unsafe.StringData(src), n))
}

// EncodePrefixedInto writes prefix followed by the encoded form
// of src into dst and returns the number of bytes written.
//
// It panics if prefix is not an ASCII character.
func EncodePrefixedInto(dst, src []byte, prefix byte) (int, error) {
	mustBeASCIIPrefix(prefix)

	n := 1 + encodedLen(len(src))
	if len(dst) < n {
		return 0, BufferTooSmallError{Min: n, Len: len(dst)}
	}

	dst[0] = prefix

	return 1 + encode(dst[1:], src, nil), nil
}

// EncodePrefixed returns prefix followed by the encoded form of
// src. The result always holds at least the prefix.
//
// It panics if prefix is not an ASCII character.
func EncodePrefixed(src []byte, prefix byte) []byte {
	dst := make([]byte, 1+encodedLen(len(src)))

	n := mustFit(EncodePrefixedInto(dst, src, prefix))

	return dst[:n]
}
