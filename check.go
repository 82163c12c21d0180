// Check encoding frames a payload as
//
//	[version symbol][encoded(payload ++ checksum)]
//
// where the checksum is checksum.Compute(payload, version). The payload and
// checksum are encoded as one unit, so leading zero bytes of an all-zero
// payload run on into the checksum.

package c32

import (
	"slices"
	"unsafe"

	"github.com/josephcopenhaver/c32/checksum"
)

const (
	maxVersion = len(Alphabet) - 1

	// minCheckLen is the shortest decodable frame: a version
	// symbol and at least one payload or checksum symbol.
	minCheckLen = 2
)

// EncodedCheckLength returns the number of bytes required to
// check encode n payload bytes. It returns -1 if the payload
// byte length cannot be encoded properly.
func EncodedCheckLength(n int) int {
	if n < 0 {
		return -1
	}

	result := EncodedLength(n + checksum.Size)
	if result < 0 {
		return -1
	}

	return 1 + result
}

func encodedCheckLen(n int) int {
	return 1 + encodedLen(n+checksum.Size)
}

// DecodedCheckLength returns the number of bytes required to
// check decode n encoded bytes. It returns -1 if n is negative.
//
// Like DecodedLength this is an upper bound and the buffer
// must also have room for the checksum while it is verified.
func DecodedCheckLength(n int) int {
	return DecodedLength(n)
}

// EncodeCheckInto writes the version symbol followed by the encoded
// form of src and its checksum into dst and returns the number of
// bytes written.
//
// version must be a symbol index, less than 32.
func EncodeCheckInto(dst, src []byte, version byte) (int, error) {
	n := encodedCheckLen(len(src))
	if len(dst) < n {
		return 0, BufferTooSmallError{Min: n, Len: len(dst)}
	}

	if int(version) > maxVersion {
		return 0, InvalidVersionError{Version: version}
	}

	dst[0] = encodeTab[version]

	sum := checksum.Compute(src, version)

	return 1 + encode(dst[1:], src, sum[:]), nil
}

// DecodeCheckInto verifies the check encoded src and fills dst with
// its payload. It returns the payload length and the version.
//
// dst must have room for DecodedCheckLength(len(src)) bytes. Its
// contents past the returned length are unspecified, and so is all
// of it when an error is returned after decoding started.
func DecodeCheckInto(dst, src []byte) (int, byte, error) {
	n := DecodedCheckLength(len(src))
	if len(dst) < n {
		return 0, 0, BufferTooSmallError{Min: n, Len: len(dst)}
	}

	if len(src) < minCheckLen {
		return 0, 0, InsufficientDataError{Min: minCheckLen, Len: len(src)}
	}

	version := decodeTab[src[0]]
	if version == c32Invalid {
		return 0, 0, InvalidCharacterError{Char: src[0], Index: 0}
	}

	if int(version) > maxVersion {
		return 0, 0, InvalidVersionError{Version: version}
	}

	n, err := decode(dst, src[1:])
	if err != nil {
		return 0, 0, shiftIndex(err, 1)
	}

	if n < checksum.Size {
		return 0, 0, InsufficientDataError{Min: checksum.Size, Len: n}
	}

	n -= checksum.Size

	got := checksum.FromSlice(dst[n:])
	expected := checksum.Compute(dst[:n], version)
	if got != expected {
		return 0, 0, ChecksumMismatchError{Expected: expected, Got: got}
	}

	return n, version, nil
}

// EncodeCheck returns the check encoded form of src.
func EncodeCheck(src []byte, version byte) ([]byte, error) {
	dst := make([]byte, encodedCheckLen(len(src)))

	n, err := EncodeCheckInto(dst, src, version)
	if err != nil {
		return nil, mustFitErr(err)
	}

	return dst[:n], nil
}

// AppendEncodeCheck returns the check encoded form of src appended
// to dst. On error dst is returned with its original length.
func AppendEncodeCheck(dst, src []byte, version byte) ([]byte, error) {
	n := encodedCheckLen(len(src))
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	n, err := EncodeCheckInto(dst[orig:], src, version)
	if err != nil {
		return dst[:orig], mustFitErr(err)
	}

	return dst[:orig+n], nil
}

// DecodeCheck verifies the check encoded src and returns its payload
// and version.
func DecodeCheck(src []byte) ([]byte, byte, error) {
	dst := make([]byte, DecodedCheckLength(len(src)))

	n, version, err := DecodeCheckInto(dst, src)
	if err != nil {
		return nil, 0, mustFitErr(err)
	}

	return dst[:n], version, nil
}

// DecodeCheckString verifies the check encoded src and returns its
// payload and version.
func DecodeCheckString(src string) ([]byte, byte, error) {
	return DecodeCheck(unsafe.Slice(unsafe.StringData(src), len(src)))
}

// EncodeCheckPrefixedInto writes prefix followed by the check encoded
// form of src into dst and returns the number of bytes written.
//
// It panics if prefix is not an ASCII character.
func EncodeCheckPrefixedInto(dst, src []byte, prefix, version byte) (int, error) {
	mustBeASCIIPrefix(prefix)

	n := 1 + encodedCheckLen(len(src))
	if len(dst) < n {
		return 0, BufferTooSmallError{Min: n, Len: len(dst)}
	}

	n, err := EncodeCheckInto(dst[1:], src, version)
	if err != nil {
		return 0, err
	}

	dst[0] = prefix

	return 1 + n, nil
}

// DecodeCheckPrefixedInto verifies and removes the prefix of src, then
// behaves like DecodeCheckInto on the rest.
//
// Error indexes are relative to src, prefix included. It panics if
// prefix is not an ASCII character.
func DecodeCheckPrefixedInto(dst, src []byte, prefix byte) (int, byte, error) {
	if err := matchPrefix(src, prefix); err != nil {
		return 0, 0, err
	}

	n, version, err := DecodeCheckInto(dst, src[1:])

	return n, version, shiftIndex(err, 1)
}

// EncodeCheckPrefixed returns prefix followed by the check encoded
// form of src.
//
// It panics if prefix is not an ASCII character.
func EncodeCheckPrefixed(src []byte, prefix, version byte) ([]byte, error) {
	dst := make([]byte, 1+encodedCheckLen(len(src)))

	n, err := EncodeCheckPrefixedInto(dst, src, prefix, version)
	if err != nil {
		return nil, mustFitErr(err)
	}

	return dst[:n], nil
}

// DecodeCheckPrefixed verifies and removes the prefix of src, then
// behaves like DecodeCheck on the rest.
//
// It panics if prefix is not an ASCII character.
func DecodeCheckPrefixed(src []byte, prefix byte) ([]byte, byte, error) {
	if err := matchPrefix(src, prefix); err != nil {
		return nil, 0, err
	}

	dst, version, err := DecodeCheck(src[1:])

	return dst, version, shiftIndex(err, 1)
}
