package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser fills command options of a flags.Parser from a YAML document instead of an INI file.
// Every top level key names a command, e.g.
//
//	encode:
//	  prefix: S
//	  check: true
//	  version: 22
//
// Options given on the command line after the configuration file is loaded take precedence.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from a yaml formatted file. Anchors and references may point to
// files relative to the directory of filename.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML documents one after another, separated by `---`. Later documents override
// values set by earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseDocument matches every top level key to a command and decodes its value into the
// struct backing that command.
func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownCommand,
				Message: fmt.Sprintf("could not find command '%s'", name),
			})
		}

		if val == nil {
			continue
		}

		conv, err := yaml.Marshal(val)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := yaml.Unmarshal(conv, commandData(command)); err != nil {
			return errors.Wrapf(err, "Could not apply configuration of command '%s'", name)
		}
	}

	return nil
}

// commandData returns the pointer registered with AddCommand. The flags package keeps it in an
// unexported field of the command's group and offers no accessor.
func commandData(command *flags.Command) interface{} {
	group := reflect.Indirect(reflect.ValueOf(command.Group))
	data := group.FieldByName("data")
	data = reflect.NewAt(data.Type(), unsafe.Pointer(data.UnsafeAddr())).Elem()

	return data.Elem().Interface()
}
