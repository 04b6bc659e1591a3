package raster

import (
	"image"
	"image/color"
)

// Int32Image is an in-memory image of Int32Value pixels.
type Int32Image struct {
	Pix    []int32
	Stride int
	Rect   image.Rectangle
}

func NewInt32Image(r image.Rectangle) *Int32Image {
	return &Int32Image{
		Pix:    make([]int32, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (s *Int32Image) ColorModel() color.Model { return Int32Model }

func (s *Int32Image) Bounds() image.Rectangle { return s.Rect }

func (s *Int32Image) At(x, y int) color.Color {
	return s.Int32At(x, y)
}

func (s *Int32Image) Int32At(x, y int) Int32Value {
	if !(image.Point{X: x, Y: y}.In(s.Rect)) {
		return 0
	}
	return Int32Value(s.Pix[s.PixOffset(x, y)])
}

func (s *Int32Image) PixOffset(x, y int) int {
	return (y-s.Rect.Min.Y)*s.Stride + (x - s.Rect.Min.X)
}

func (s *Int32Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(s.Rect)) {
		return
	}
	s.Pix[s.PixOffset(x, y)] = int32(Int32Model.Convert(c).(Int32Value))
}

// Float32Image is an in-memory image of Float32Value pixels.
type Float32Image struct {
	Pix    []float32
	Stride int
	Rect   image.Rectangle
}

func NewFloat32Image(r image.Rectangle) *Float32Image {
	return &Float32Image{
		Pix:    make([]float32, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (s *Float32Image) ColorModel() color.Model { return Float32Model }

func (s *Float32Image) Bounds() image.Rectangle { return s.Rect }

func (s *Float32Image) At(x, y int) color.Color {
	return s.Float32At(x, y)
}

func (s *Float32Image) Float32At(x, y int) Float32Value {
	if !(image.Point{X: x, Y: y}.In(s.Rect)) {
		return 0
	}
	return Float32Value(s.Pix[s.PixOffset(x, y)])
}

func (s *Float32Image) PixOffset(x, y int) int {
	return (y-s.Rect.Min.Y)*s.Stride + (x - s.Rect.Min.X)
}

func (s *Float32Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(s.Rect)) {
		return
	}
	s.Pix[s.PixOffset(x, y)] = float32(Float32Model.Convert(c).(Float32Value))
}
