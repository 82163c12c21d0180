package c32

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomPayload returns up to 64 bytes where roughly half are zero and
// runs of leading zeros are common.
func randomPayload(r *rand.Rand) []byte {
	b := make([]byte, r.IntN(65))

	lz := 0
	if len(b) > 0 && r.IntN(2) == 0 {
		lz = r.IntN(len(b) + 1)
	}

	for i := lz; i < len(b); i++ {
		if r.IntN(2) == 0 {
			b[i] = byte(r.UintN(256))
		}
	}

	return b
}

func TestRandomRoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(0x63333200, 0x5eed))

	for i := range 20000 {
		src := randomPayload(r)
		prefix := byte('A' + r.IntN(26))
		version := byte(r.IntN(len(Alphabet)))

		if !t.Run("", func(t *testing.T) {
			is := assert.New(t)

			{
				enc := Encode(src)
				is.LessOrEqual(len(enc), EncodedLength(len(src)))

				dec, err := Decode(enc)
				is.Nil(err)
				is.Equal(len(src), len(dec))
				is.Equal(string(src), string(dec))
			}

			{
				enc := EncodePrefixed(src, prefix)

				dec, err := DecodePrefixed(enc, prefix)
				is.Nil(err)
				is.Equal(string(src), string(dec))
			}

			{
				enc, err := EncodeCheck(src, version)
				is.Nil(err)
				is.LessOrEqual(len(enc), EncodedCheckLength(len(src)))

				dec, decVersion, err := DecodeCheck(enc)
				is.Nil(err)
				is.Equal(string(src), string(dec))
				is.Equal(version, decVersion)
			}

			{
				enc, err := EncodeCheckPrefixed(src, prefix, version)
				is.Nil(err)

				dec, decVersion, err := DecodeCheckPrefixed(enc, prefix)
				is.Nil(err)
				is.Equal(string(src), string(dec))
				is.Equal(version, decVersion)
			}
		}) {
			t.Fatalf("round trip %d failed for src=%x prefix=%q version=%d", i, src, prefix, version)
		}
	}
}
