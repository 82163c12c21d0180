package main

import (
	"fmt"
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/josephcopenhaver/c32/internal/args"
	"github.com/josephcopenhaver/c32/internal/commands/convert"
	"github.com/josephcopenhaver/c32/internal/commands/version"
	c32Flags "github.com/josephcopenhaver/c32/internal/flags"
	"github.com/josephcopenhaver/c32/internal/util"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// C32 is the main executable
type C32 struct {
	parser *flags.Parser
}

// NewC32 will create a new instance of C32 and initialize the parser
func NewC32() *C32 {
	executablePath := path.Base(os.Args[0])

	c := &C32{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	c.setupGeneral()
	c.setupVersion()
	c.setupEncode()
	c.setupDecode()

	return c
}

// setupGeneral will configure general options
func (c *C32) setupGeneral() {
	if _, err := c.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (c *C32) setupVersion() {
	_, err := c.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		version.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (c *C32) setupEncode() {
	_, err := c.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode every argument, or standard input when there are none, into Crockford base32",
		convert.NewEncodeCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (c *C32) setupDecode() {
	_, err := c.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode every Crockford base32 argument, or standard input when there are none",
		convert.NewDecodeCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main starts c32 and reads the configuration file
func main() {
	c := NewC32()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		args.General.ConfigurationFilePath = file
		return c32Flags.NewYamlParser(c.parser).ParseFile(file)
	}

	_, err := c.parser.Parse()
	util.MustErrorNilOrExit(err)
}
