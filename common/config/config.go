package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"vincit.fi/selphy-print/api/apitype"
	"vincit.fi/selphy-print/common/logger"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration loaded from YAML
type Config struct {
	// Sheet is the physical paper the image is fitted to
	Sheet struct {
		WidthMM  float64 `yaml:"widthMM"`
		HeightMM float64 `yaml:"heightMM"`
		DPI      int     `yaml:"dpi"`
		Margins  struct {
			Left   int `yaml:"left"`
			Right  int `yaml:"right"`
			Top    int `yaml:"top"`
			Bottom int `yaml:"bottom"`
		} `yaml:"margins"`
	} `yaml:"sheet"`

	Printer struct {
		// Match is a case-insensitive substring of the printer name
		Match string `yaml:"match"`

		// MaxBorderMM is the widest border accepted when printing
		MaxBorderMM float64 `yaml:"maxBorderMM"`

		// PPDDirectory is where CUPS keeps the printer descriptions
		PPDDirectory string `yaml:"ppdDirectory"`
	} `yaml:"printer"`

	Output struct {
		JPEGQuality int    `yaml:"jpegQuality"`
		Resample    string `yaml:"resample"`
		ExifRotate  bool   `yaml:"exifRotate"`
	} `yaml:"output"`

	LogLevel string `yaml:"logLevel"`
}

// DefaultConfig returns the configuration of a Canon Selphy postcard
func DefaultConfig() *Config {
	cfg := &Config{}

	sheet := apitype.SelphyPostcard
	cfg.Sheet.WidthMM = sheet.WidthMM
	cfg.Sheet.HeightMM = sheet.HeightMM
	cfg.Sheet.DPI = sheet.DPI
	cfg.Sheet.Margins.Left = sheet.Margins.Left
	cfg.Sheet.Margins.Right = sheet.Margins.Right
	cfg.Sheet.Margins.Top = sheet.Margins.Top
	cfg.Sheet.Margins.Bottom = sheet.Margins.Bottom

	cfg.Printer.Match = "selphy"
	cfg.Printer.MaxBorderMM = 30
	cfg.Printer.PPDDirectory = "/etc/cups/ppd"

	cfg.Output.JPEGQuality = 95
	cfg.Output.Resample = "nearest"
	cfg.Output.ExifRotate = true

	cfg.LogLevel = "INFO"

	return cfg
}

// LoadConfig reads the YAML file over the defaults. An empty path
// returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading config file: %s", ErrInvalidConfig, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: error parsing config file: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug.Printf("Loaded configuration from '%s'", configPath)
	return cfg, nil
}

func (s *Config) Validate() error {
	switch {
	case s.Sheet.WidthMM <= 0 || s.Sheet.HeightMM <= 0:
		return fmt.Errorf("%w: sheet size %gx%g mm", ErrInvalidConfig, s.Sheet.WidthMM, s.Sheet.HeightMM)
	case s.Sheet.DPI <= 0:
		return fmt.Errorf("%w: dpi %d", ErrInvalidConfig, s.Sheet.DPI)
	case s.Sheet.Margins.Left < 0 || s.Sheet.Margins.Right < 0 || s.Sheet.Margins.Top < 0 || s.Sheet.Margins.Bottom < 0:
		return fmt.Errorf("%w: negative margin", ErrInvalidConfig)
	case s.Printer.MaxBorderMM < 0:
		return fmt.Errorf("%w: maximum border %g mm", ErrInvalidConfig, s.Printer.MaxBorderMM)
	case s.Output.JPEGQuality < 1 || s.Output.JPEGQuality > 100:
		return fmt.Errorf("%w: jpeg quality %d", ErrInvalidConfig, s.Output.JPEGQuality)
	}
	if !s.SheetSpec().PrintableSize().IsPositive() {
		return fmt.Errorf("%w: margins leave no printable area", ErrInvalidConfig)
	}
	return nil
}

func (s *Config) SheetSpec() apitype.Sheet {
	return apitype.Sheet{
		WidthMM:  s.Sheet.WidthMM,
		HeightMM: s.Sheet.HeightMM,
		DPI:      s.Sheet.DPI,
		Margins: apitype.Margins{
			Left:   s.Sheet.Margins.Left,
			Right:  s.Sheet.Margins.Right,
			Top:    s.Sheet.Margins.Top,
			Bottom: s.Sheet.Margins.Bottom,
		},
	}
}
