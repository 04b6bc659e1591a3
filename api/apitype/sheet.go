package apitype

import "math"

const MillimetersPerInch = 25.4

// MaxPixels bounds converted lengths so that sizes derived from them
// cannot overflow.
const MaxPixels = 1 << 28

// Margins are the unprintable strips at each edge of the sheet in
// millimeters.
type Margins struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Sheet describes the paper and the resolution it is printed at.
type Sheet struct {
	WidthMM  float64
	HeightMM float64
	DPI      int
	Margins  Margins
}

// SelphyPostcard is the 150x100 mm Canon Selphy paper.
var SelphyPostcard = Sheet{
	WidthMM:  150,
	HeightMM: 100,
	DPI:      300,
	Margins: Margins{
		Left:   7,
		Right:  6,
		Top:    4,
		Bottom: 4,
	},
}

// MillimetersToPixels converts a length to pixels, truncating the result.
// The result is clamped to +-MaxPixels and NaN converts to 0.
func MillimetersToPixels(mm float64, dpi int) int {
	pixels := mm / MillimetersPerInch * float64(dpi)
	switch {
	case math.IsNaN(pixels):
		return 0
	case pixels > MaxPixels:
		return MaxPixels
	case pixels < -MaxPixels:
		return -MaxPixels
	}
	return int(pixels)
}

func (s Sheet) PixelSize() Size {
	return SizeOf(
		MillimetersToPixels(s.WidthMM, s.DPI),
		MillimetersToPixels(s.HeightMM, s.DPI))
}

// PrintableSize is the pixel size of the sheet without its margins.
func (s Sheet) PrintableSize() Size {
	sheet := s.PixelSize()
	left := MillimetersToPixels(float64(s.Margins.Left), s.DPI)
	right := MillimetersToPixels(float64(s.Margins.Right), s.DPI)
	top := MillimetersToPixels(float64(s.Margins.Top), s.DPI)
	bottom := MillimetersToPixels(float64(s.Margins.Bottom), s.DPI)
	return SizeOf(sheet.width-left-right, sheet.height-top-bottom)
}

func (s Sheet) BorderPixels(borderMM float64) int {
	return MillimetersToPixels(borderMM, s.DPI)
}
