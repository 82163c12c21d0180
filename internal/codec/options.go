package codec

// Options selects the framing applied on top of the plain encoding. They
// are shared by the encode and decode commands and can be set from the
// configuration file under each command's key.
type Options struct {
	Prefix  string `short:"p" long:"prefix"       env:"C32_PREFIX"  yaml:"prefix"  description:"Single ASCII character placed in front of the encoded text"`
	Check   bool   `short:"k" long:"check"        env:"C32_CHECK"   yaml:"check"   description:"Add a version symbol and a checksum"`
	Version uint8  `short:"V" long:"version-byte" env:"C32_VERSION" yaml:"version" description:"Version symbol index (0-31) used with --check"`
	Hex     bool   `short:"x" long:"hex"          env:"C32_HEX"     yaml:"hex"     description:"Treat raw data as hexadecimal text instead of bytes"`
}
