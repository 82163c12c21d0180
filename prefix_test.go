package c32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixed(t *testing.T) {
	t.Parallel()

	type testCase struct {
		when   string
		src    string
		prefix byte
		expStr string
	}

	tcs := []testCase{
		{
			when:   "three identical bytes",
			src:    "\x2a\x2a\x2a",
			prefix: 'S',
			expStr: "S2MAHA",
		},
		{
			when:   "leading zero bytes",
			src:    "\x00\x00\x01",
			prefix: 'x',
			expStr: "x001",
		},
		{
			when:   "an empty source",
			prefix: 'S',
			expStr: "S",
		},
		{
			when:   "the prefix is also an alphabet symbol",
			src:    "12345",
			prefix: '0',
			expStr: "064S36D1N",
		},
	}

	for _, tc := range tcs {
		t.Run("when "+tc.when, func(t *testing.T) {
			t.Parallel()

			is := assert.New(t)

			enc := EncodePrefixed([]byte(tc.src), tc.prefix)
			is.Equal(tc.expStr, string(enc))

			dst := make([]byte, 1+EncodedLength(len(tc.src)))
			n, err := EncodePrefixedInto(dst, []byte(tc.src), tc.prefix)
			is.Nil(err)
			is.Equal(tc.expStr, string(dst[:n]))

			dec, err := DecodePrefixed(enc, tc.prefix)
			is.Nil(err)
			is.Equal(tc.src, string(dec))

			dst = make([]byte, DecodedLength(len(enc)))
			n, err = DecodePrefixedInto(dst, enc, tc.prefix)
			is.Nil(err)
			is.Equal(tc.src, string(dst[:n]))
		})
	}
}

func TestPrefixedErrors(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	{
		_, err := DecodePrefixed([]byte("2MAHA"), 'S')
		is.Equal(MissingPrefixError{Expected: 'S', Got: '2'}, err)
		is.ErrorIs(err, ErrMissingPrefix)
	}

	{
		_, err := DecodePrefixed(nil, 'S')
		is.Equal(MissingPrefixError{Expected: 'S', Empty: true}, err)
	}

	{
		_, err := DecodePrefixedInto(make([]byte, 8), []byte("s2MAHA"), 'S')
		is.Equal(MissingPrefixError{Expected: 'S', Got: 's'}, err)
	}

	{
		_, err := DecodePrefixed([]byte("S!MAHA"), 'S')
		is.Equal(InvalidCharacterError{Char: '!', Index: 1}, err)
		is.ErrorIs(err, ErrInvalidCharacter)
	}

	{
		_, err := DecodePrefixedInto(make([]byte, 8), []byte("S2MAH!"), 'S')
		is.Equal(InvalidCharacterError{Char: '!', Index: 5}, err)
	}

	{
		_, err := DecodePrefixedInto(make([]byte, 1), []byte("S2MAHA"), 'S')
		is.Equal(BufferTooSmallError{Min: 5, Len: 1}, err)
	}

	{
		dst := make([]byte, 5)
		n, err := EncodePrefixedInto(dst, []byte("\x2a\x2a\x2a"), 'S')
		is.Zero(n)
		is.Equal(BufferTooSmallError{Min: 6, Len: 5}, err)
		is.Equal(make([]byte, 5), dst)
	}
}

func TestPrefixMustBeASCII(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	const msg = "c32: prefix must be an ASCII character"

	is.PanicsWithValue(msg, func() {
		_ = EncodePrefixed([]byte{1}, 0x80)
	})

	is.PanicsWithValue(msg, func() {
		_, _ = DecodePrefixed([]byte("\xff1"), 0xff)
	})

	is.PanicsWithValue(msg, func() {
		_, _ = EncodeCheckPrefixed([]byte{1}, 0xc3, 0)
	})

	is.PanicsWithValue(msg, func() {
		_, _, _ = DecodeCheckPrefixed(nil, 0x80)
	})

	is.NotPanics(func() {
		_ = EncodePrefixed([]byte{1}, 0x7f)
	})
}

func TestMustFit(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal(3, mustFit(3, nil))
	is.PanicsWithValue("c32: buffer sized by length function rejected: c32: buffer size 1 is less than required 2", func() {
		mustFit(0, BufferTooSmallError{Min: 2, Len: 1})
	})

	is.Nil(mustFitErr(nil))

	err := InvalidVersionError{Version: 40}
	is.Equal(err, mustFitErr(err))

	is.Panics(func() {
		_ = mustFitErr(BufferTooSmallError{Min: 2, Len: 1})
	})
}
