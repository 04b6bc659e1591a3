package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"vincit.fi/selphy-print/api/apitype"
)

var ErrUnsupportedMode = errors.New("unsupported color mode")

// White of each mode. Lab white is L=100, a=b=0 and HSV white is V=255;
// neither has a Go color model so both are kept as RGB.
var fillColors = map[apitype.ColorMode]color.Color{
	apitype.ModeBinary:    color.Gray{Y: 0xff},
	apitype.ModeGrayscale: color.Gray{Y: 0xff},
	apitype.ModePalette:   color.White,
	apitype.ModeRGB:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	apitype.ModeRGBA:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	apitype.ModeCMYK:      color.CMYK{},
	apitype.ModeYCbCr:     color.YCbCr{Y: 0xff, Cb: 0x80, Cr: 0x80},
	apitype.ModeLab:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	apitype.ModeHSV:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	apitype.ModeInt32:     int32White,
	apitype.ModeFloat32:   float32White,
	apitype.ModeInt16:     color.Gray16{Y: 0xffff},
}

func FillColor(mode apitype.ColorMode) (color.Color, error) {
	if c, ok := fillColors[mode]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, mode)
}

// ModeOf resolves the color mode of a decoded image.
func ModeOf(img image.Image) (apitype.ColorMode, error) {
	switch typed := img.(type) {
	case *image.Gray:
		return apitype.ModeGrayscale, nil
	case *image.Gray16:
		return apitype.ModeInt16, nil
	case *image.Paletted:
		if isBinaryPalette(typed.Palette) {
			return apitype.ModeBinary, nil
		}
		return apitype.ModePalette, nil
	case *image.RGBA, *image.RGBA64:
		return apitype.ModeRGB, nil
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA:
		return apitype.ModeRGBA, nil
	case *image.CMYK:
		return apitype.ModeCMYK, nil
	case *image.YCbCr:
		return apitype.ModeYCbCr, nil
	case *Int32Image:
		return apitype.ModeInt32, nil
	case *Float32Image:
		return apitype.ModeFloat32, nil
	}
	return apitype.ModeUnknown, fmt.Errorf("%w: %T", ErrUnsupportedMode, img)
}

func isBinaryPalette(palette color.Palette) bool {
	if len(palette) != 2 {
		return false
	}
	first := color.GrayModel.Convert(palette[0]).(color.Gray)
	second := color.GrayModel.Convert(palette[1]).(color.Gray)
	return (first.Y == 0 && second.Y == 0xff) || (first.Y == 0xff && second.Y == 0)
}

// NewCanvas allocates an image of the given size in the mode of like and
// fills it with the mode's white.
func NewCanvas(like image.Image, size apitype.Size) (draw.Image, error) {
	mode, err := ModeOf(like)
	if err != nil {
		return nil, err
	}
	fill, err := FillColor(mode)
	if err != nil {
		return nil, err
	}

	bounds := image.Rect(0, 0, size.Width(), size.Height())
	var canvas draw.Image
	switch mode {
	case apitype.ModeBinary, apitype.ModePalette:
		palette := like.(*image.Paletted).Palette
		canvas = image.NewPaletted(bounds, append(color.Palette{}, palette...))
	case apitype.ModeGrayscale:
		canvas = image.NewGray(bounds)
	case apitype.ModeInt16:
		canvas = image.NewGray16(bounds)
	case apitype.ModeRGBA:
		canvas = image.NewNRGBA(bounds)
	case apitype.ModeCMYK:
		canvas = image.NewCMYK(bounds)
	case apitype.ModeInt32:
		canvas = NewInt32Image(bounds)
	case apitype.ModeFloat32:
		canvas = NewFloat32Image(bounds)
	default:
		canvas = image.NewRGBA(bounds)
	}

	draw.Draw(canvas, bounds, image.NewUniform(fill), image.Point{}, draw.Src)
	return canvas, nil
}
