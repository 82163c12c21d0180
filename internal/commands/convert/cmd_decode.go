package convert

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/josephcopenhaver/c32/internal/codec"
	"github.com/josephcopenhaver/c32/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DecodeCommand writes the raw payload of every c32 input on its own line. The version of check
// encoded input goes to the log.
type DecodeCommand struct {
	codec.Options `yaml:",inline"`

	in  io.Reader
	out io.Writer
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (d *DecodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	c, err := codec.New(d.Options)
	if err != nil {
		return err
	}
	log.Debugf("Decoding with %v", c)

	inputs, err := readInputs(d.in, args)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for i, input := range inputs {
		res, version, err := c.Decode(input)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode input %d", i+1))
			continue
		}

		if d.Check {
			log.WithField("version", version).Debugf("Verified checksum of input %d", i+1)
		}

		if d.Hex {
			res = toHex(res)
		}

		if err := writeLine(d.out, res); err != nil {
			return err
		}
	}

	return errs.ErrorOrNil()
}
