package convert

import (
	"bytes"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

// readInputs returns the command line arguments or, when there are none, the whole of in with
// one trailing line ending removed.
func readInputs(in io.Reader, args []string) ([][]byte, error) {
	if len(args) > 0 {
		inputs := make([][]byte, len(args))
		for i, arg := range args {
			inputs[i] = []byte(arg)
		}
		return inputs, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read standard input")
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))

	return [][]byte{data}, nil
}

func fromHex(data []byte) ([]byte, error) {
	res := make([]byte, hex.DecodedLen(len(data)))
	n, err := hex.Decode(res, data)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid hexadecimal input")
	}
	return res[:n], nil
}

func toHex(data []byte) []byte {
	res := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(res, data)
	return res
}
