package c32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	t.Parallel()

	const invalidDecodeVal = byte(c32Invalid)

	is := assert.New(t)

	validChar := func(c byte) (byte, int8) {
		if c >= 'a' && c <= 'z' {
			c -= ('a' - 'A')
		}
		switch c {
		case 'O':
			c = '0'
		case 'I':
			c = '1'
		case 'L':
			c = '1'
		}
		return c, int8(strings.IndexByte(Alphabet, c))
	}

	for i := range 256 {
		c := byte(i)

		uc, i := validChar(c)
		if i == -1 {
			is.Equal(invalidDecodeVal, decodeTab[c])
			continue
		}

		is.Equal(i, int8(decodeTab[c]))
		is.Equal(uc, encodeTab[i])
	}

	// verify hardcoded alias values
	is.Equal(uint8(0), decodeTab['0'])
	is.Equal(uint8(0), decodeTab['o'])
	is.Equal(uint8(1), decodeTab['1'])
	is.Equal(uint8(1), decodeTab['i'])
	is.Equal(uint8(1), decodeTab['l'])

	// no symbol outside of ASCII ever decodes
	for c := 0x80; c <= 0xFF; c++ {
		is.Equal(invalidDecodeVal, decodeTab[c])
	}
}

func TestAlphabetIsBijective(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Len(Alphabet, 32)

	seen := map[byte]bool{}
	for i := range len(Alphabet) {
		c := Alphabet[i]

		is.False(seen[c], "duplicate symbol %q", c)
		seen[c] = true

		is.Less(c, byte(0x80))
		is.Equal(byte(i), decodeTab[c])
	}

	is.NotContains(Alphabet, "I")
	is.NotContains(Alphabet, "L")
	is.NotContains(Alphabet, "O")
	is.NotContains(Alphabet, "U")
}

func TestZeroSymbol(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal(Alphabet[0], byte(zeroSymbol))
	is.Equal(byte(0), decodeTab[zeroSymbol])
	is.Equal(byte(zeroSymbol), encodeTab[0])
}
