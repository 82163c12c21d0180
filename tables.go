// A case insensitive Crockford base32 implementation that preserves leading
// zero bytes and can frame payloads with a version symbol and a checksum.

package c32

const (
	c32Invalid = 0xFF

	// Alphabet is the ordered set of symbols produced by every encoder in this
	// package. The index of a symbol is its 5-bit value.
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// zeroSymbol must stay equal to Alphabet[0], which is not a constant.
	zeroSymbol = '0'
)

// encodeTab is Alphabet as an array so lookups need no bounds check.
var encodeTab = func() (enc [32]byte) {
	copy(enc[:], Alphabet)
	return
}()

// decodeTab maps every byte to its symbol value or c32Invalid. Lowercase
// letters decode like their uppercase form and the look-alikes O, I and L
// decode as 0, 1 and 1.
var decodeTab = func() (dec [256]byte) {
	for i := range dec {
		dec[i] = c32Invalid
	}

	set := func(c, v byte) {
		dec[c] = v
		if c >= 'A' && c <= 'Z' {
			dec[c|0x20] = v
		}
	}

	for v, c := range []byte(Alphabet) {
		set(c, byte(v))
	}

	set('O', 0)
	set('I', 1)
	set('L', 1)

	return
}()
