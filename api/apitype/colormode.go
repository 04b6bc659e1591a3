package apitype

type ColorMode int

const (
	ModeUnknown ColorMode = iota
	ModeBinary
	ModeGrayscale
	ModePalette
	ModeRGB
	ModeRGBA
	ModeCMYK
	ModeYCbCr
	ModeLab
	ModeHSV
	// 32-bit signed integer pixels
	ModeInt32
	// 32-bit float pixels in the range 0..1
	ModeFloat32
	// 16-bit integer gray pixels
	ModeInt16
)

var colorModeNames = map[ColorMode]string{
	ModeBinary:    "1",
	ModeGrayscale: "L",
	ModePalette:   "P",
	ModeRGB:       "RGB",
	ModeRGBA:      "RGBA",
	ModeCMYK:      "CMYK",
	ModeYCbCr:     "YCbCr",
	ModeLab:       "LAB",
	ModeHSV:       "HSV",
	ModeInt32:     "I",
	ModeFloat32:   "F",
	ModeInt16:     "I;16",
}

func (s ColorMode) String() string {
	if name, ok := colorModeNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsEightBit tells if the mode can be written by common encoders as is.
func (s ColorMode) IsEightBit() bool {
	switch s {
	case ModeInt32, ModeFloat32, ModeInt16, ModeUnknown:
		return false
	}
	return true
}
