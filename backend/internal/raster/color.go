package raster

import (
	"image/color"
)

// Int32Value is a signed integer pixel. Zero gray maps to -32767 and white
// to 32768, so that (v + 2^15 - 1) / 256 lands in the 8-bit range.
type Int32Value int32

const (
	int32Offset = 1<<15 - 1
	int32White  = Int32Value(1 << 15)
)

func (s Int32Value) RGBA() (r, g, b, a uint32) {
	y := uint32(clamp(int64(s)+int32Offset, 0, 0xffff))
	return y, y, y, 0xffff
}

// Float32Value is a normalized floating point pixel, 0 is black and 1 white.
type Float32Value float32

const float32White = Float32Value(1.0)

func (s Float32Value) RGBA() (r, g, b, a uint32) {
	y := uint32(clamp(int64(float64(s)*0xffff), 0, 0xffff))
	return y, y, y, 0xffff
}

var (
	Int32Model   = color.ModelFunc(int32Model)
	Float32Model = color.ModelFunc(float32Model)
)

func int32Model(c color.Color) color.Color {
	if value, ok := c.(Int32Value); ok {
		return value
	}
	gray := color.Gray16Model.Convert(c).(color.Gray16)
	return Int32Value(int32(gray.Y) - int32Offset)
}

func float32Model(c color.Color) color.Color {
	if value, ok := c.(Float32Value); ok {
		return value
	}
	gray := color.Gray16Model.Convert(c).(color.Gray16)
	return Float32Value(float32(gray.Y) / 0xffff)
}

func clamp(value int64, low int64, high int64) int64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
