package codec

import (
	"fmt"

	"github.com/josephcopenhaver/c32"
	"github.com/pkg/errors"
)

// Codec is one of the c32 framings, selected from Options.
type Codec interface {
	// Name is the user-friendly name of this codec
	Name() string

	// Encode will take an array of bytes and encode it using this codec
	Encode([]byte) ([]byte, error)

	// Decode is the reverse process of encoding. The version is always
	// zero for codecs without a checksum.
	Decode([]byte) ([]byte, byte, error)
}

// New returns the codec described by o.
func New(o Options) (Codec, error) {
	var prefix byte
	hasPrefix := o.Prefix != ""
	if hasPrefix {
		if len(o.Prefix) != 1 || o.Prefix[0] >= 0x80 {
			return nil, errors.Errorf("Prefix must be a single ASCII character, got %q", o.Prefix)
		}
		prefix = o.Prefix[0]
	}

	if !o.Check {
		if hasPrefix {
			return &PrefixedCodec{prefix: prefix}, nil
		}
		return &PlainCodec{}, nil
	}

	if int(o.Version) >= len(c32.Alphabet) {
		return nil, errors.WithStack(c32.InvalidVersionError{Version: o.Version})
	}

	if hasPrefix {
		return &CheckPrefixedCodec{prefix: prefix, version: o.Version}, nil
	}
	return &CheckCodec{version: o.Version}, nil
}

// -------------------------------------------------------

// PlainCodec is Crockford base32 without any framing.
type PlainCodec struct {
}

func (p *PlainCodec) Name() string {
	return "c32"
}

func (p *PlainCodec) String() string {
	return p.Name()
}

func (p *PlainCodec) Encode(data []byte) ([]byte, error) {
	return c32.Encode(data), nil
}

func (p *PlainCodec) Decode(data []byte) ([]byte, byte, error) {
	res, err := c32.Decode(data)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	return res, 0, nil
}

// -------------------------------------------------------

// PrefixedCodec puts a fixed ASCII character in front of the encoded text.
type PrefixedCodec struct {
	prefix byte
}

func (p *PrefixedCodec) Name() string {
	return "c32-prefixed"
}

func (p *PrefixedCodec) String() string {
	return fmt.Sprintf("%v(%v)", p.Name(), string(p.prefix))
}

func (p *PrefixedCodec) Encode(data []byte) ([]byte, error) {
	return c32.EncodePrefixed(data, p.prefix), nil
}

func (p *PrefixedCodec) Decode(data []byte) ([]byte, byte, error) {
	res, err := c32.DecodePrefixed(data, p.prefix)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	return res, 0, nil
}

// -------------------------------------------------------

// CheckCodec frames the payload with a version symbol and a checksum.
type CheckCodec struct {
	version byte
}

func (c *CheckCodec) Name() string {
	return "c32check"
}

func (c *CheckCodec) String() string {
	return fmt.Sprintf("%v(v%d)", c.Name(), c.version)
}

func (c *CheckCodec) Encode(data []byte) ([]byte, error) {
	res, err := c32.EncodeCheck(data, c.version)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (c *CheckCodec) Decode(data []byte) ([]byte, byte, error) {
	res, version, err := c32.DecodeCheck(data)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	return res, version, nil
}

// -------------------------------------------------------

// CheckPrefixedCodec is CheckCodec with a prefix in front.
type CheckPrefixedCodec struct {
	prefix  byte
	version byte
}

func (c *CheckPrefixedCodec) Name() string {
	return "c32check-prefixed"
}

func (c *CheckPrefixedCodec) String() string {
	return fmt.Sprintf("%v(%v, v%d)", c.Name(), string(c.prefix), c.version)
}

func (c *CheckPrefixedCodec) Encode(data []byte) ([]byte, error) {
	res, err := c32.EncodeCheckPrefixed(data, c.prefix, c.version)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (c *CheckPrefixedCodec) Decode(data []byte) ([]byte, byte, error) {
	res, version, err := c32.DecodeCheckPrefixed(data, c.prefix)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	return res, version, nil
}
