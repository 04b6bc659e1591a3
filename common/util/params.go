package util

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/pflag"
)

var ErrInvalidParams = errors.New("invalid arguments")

type Params struct {
	input      string
	output     string
	borderMM   float64
	configPath string
	logLevel   string
	resample   string
}

// ParseParams parses the command line without the program name. Help
// is written to usage and returned as pflag.ErrHelp.
func ParseParams(args []string, usage io.Writer) (*Params, error) {
	flags := pflag.NewFlagSet("selphy-print", pflag.ContinueOnError)
	flags.SetOutput(usage)

	input := flags.StringP("input", "i", "", "Image file or directory of images to fit")
	borderMM := flags.Float64P("border", "b", 0, "Border around the image in millimeters")
	output := flags.StringP("output", "o", "", "Output file or directory. Prints directly when not given")
	configPath := flags.StringP("config", "c", "", "YAML configuration file")
	logLevel := flags.String("log-level", "", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	resample := flags.String("resample", "", "Resampling filter: nearest, box, linear, catmullrom, lanczos")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidParams, err)
	}
	if *input == "" {
		return nil, fmt.Errorf("%w: --input is required", ErrInvalidParams)
	}
	if math.IsNaN(*borderMM) || math.IsInf(*borderMM, 0) {
		return nil, fmt.Errorf("%w: border must be a finite number", ErrInvalidParams)
	}
	if *borderMM < 0 {
		return nil, fmt.Errorf("%w: border must not be negative", ErrInvalidParams)
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidParams, flags.Args())
	}

	return &Params{
		input:      *input,
		output:     *output,
		borderMM:   *borderMM,
		configPath: *configPath,
		logLevel:   *logLevel,
		resample:   *resample,
	}, nil
}

func (s *Params) GetInput() string {
	return s.input
}

func (s *Params) GetOutput() string {
	return s.output
}

// IsPrinting tells if the result is sent to the printer instead of a file.
func (s *Params) IsPrinting() bool {
	return s.output == ""
}

func (s *Params) GetBorderMM() float64 {
	return s.borderMM
}

func (s *Params) GetConfigPath() string {
	return s.configPath
}

func (s *Params) GetLogLevel() string {
	return s.logLevel
}

func (s *Params) GetResample() string {
	return s.resample
}
