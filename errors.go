package c32

import (
	"errors"
	"fmt"

	"github.com/josephcopenhaver/c32/checksum"
)

var (
	ErrBufferTooSmall   = errors.New("buffer too small")
	ErrInvalidCharacter = errors.New("invalid c32 character")
	ErrMissingPrefix    = errors.New("missing prefix")
	ErrInvalidVersion   = errors.New("invalid version")
	ErrInsufficientData = errors.New("insufficient data")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// BufferTooSmallError is returned when a destination buffer cannot hold the
// worst case output of an operation. Nothing is written to the buffer.
type BufferTooSmallError struct {
	Min int
	Len int
}

func (e BufferTooSmallError) Error() string {
	return fmt.Sprintf("c32: buffer size %d is less than required %d", e.Len, e.Min)
}

func (e BufferTooSmallError) Unwrap() error {
	return ErrBufferTooSmall
}

// InvalidCharacterError reports a byte that is not part of the decode
// grammar. Index is relative to the input given by the caller, including any
// prefix or version symbol.
type InvalidCharacterError struct {
	Char  byte
	Index int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("c32: invalid character %q at index %d", rune(e.Char), e.Index)
}

func (e InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// MissingPrefixError is returned when prefixed input does not start with the
// expected prefix. Empty is true when there was no input to compare.
type MissingPrefixError struct {
	Expected byte
	Got      byte
	Empty    bool
}

func (e MissingPrefixError) Error() string {
	if e.Empty {
		return fmt.Sprintf("c32: expected prefix %q, found empty input", rune(e.Expected))
	}

	return fmt.Sprintf("c32: expected prefix %q, found %q", rune(e.Expected), rune(e.Got))
}

func (e MissingPrefixError) Unwrap() error {
	return ErrMissingPrefix
}

// InvalidVersionError is returned when a version is 32 or more and so has no
// symbol in Alphabet.
type InvalidVersionError struct {
	Version byte
}

func (e InvalidVersionError) Error() string {
	return fmt.Sprintf("c32: invalid version %d: must be < %d", e.Version, maxVersion+1)
}

func (e InvalidVersionError) Unwrap() error {
	return ErrInvalidVersion
}

// InsufficientDataError is returned when a checksum frame is too short to
// hold its version or its checksum.
type InsufficientDataError struct {
	Min int
	Len int
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("c32: input size %d is less than required %d", e.Len, e.Min)
}

func (e InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

// ChecksumMismatchError is returned when the checksum carried by check
// encoded input differs from the one computed over its payload and version.
type ChecksumMismatchError struct {
	Expected checksum.Checksum
	Got      checksum.Checksum
}

func (e ChecksumMismatchError) Error() string {
	return fmt.Sprintf("c32: expected checksum %s, got %s", e.Expected, e.Got)
}

func (e ChecksumMismatchError) Unwrap() error {
	return ErrChecksumMismatch
}

// shiftIndex moves the index of an InvalidCharacterError by n so it stays
// relative to the caller's input after a leading symbol was skipped.
func shiftIndex(err error, n int) error {
	if e, ok := err.(InvalidCharacterError); ok {
		e.Index += n
		return e
	}

	return err
}
