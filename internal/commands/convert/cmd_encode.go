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

// EncodeCommand writes the c32 form of every input on its own line.
type EncodeCommand struct {
	codec.Options `yaml:",inline"`

	in  io.Reader
	out io.Writer
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (e *EncodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	c, err := codec.New(e.Options)
	if err != nil {
		return err
	}
	log.Debugf("Encoding with %v", c)

	inputs, err := readInputs(e.in, args)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	for i, input := range inputs {
		if e.Hex {
			if input, err = fromHex(input); err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "Input %d", i+1))
				continue
			}
		}

		res, err := c.Encode(input)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not encode input %d", i+1))
			continue
		}

		log.Tracef("Encoded %d bytes into %d symbols", len(input), len(res))
		if err := writeLine(e.out, res); err != nil {
			return err
		}
	}

	return errs.ErrorOrNil()
}

func writeLine(out io.Writer, line []byte) error {
	if _, err := out.Write(append(line, '\n')); err != nil {
		return errors.Wrapf(err, "Could not write output")
	}
	return nil
}
