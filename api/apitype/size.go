package apitype

import (
	"fmt"
	"image"
)

type Size struct {
	width  int
	height int
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) IsPortrait() bool {
	return s.height > s.width
}

func (s Size) IsPositive() bool {
	return s.width > 0 && s.height > 0
}

// Shrink removes amount pixels from every side.
func (s Size) Shrink(amount int) Size {
	return Size{width: s.width - 2*amount, height: s.height - 2*amount}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// CenterIn returns the top-left corner that centers s inside outer. Odd
// remainders are floored.
func (s Size) CenterIn(outer Size) image.Point {
	return image.Point{
		X: floorDiv(outer.width-s.width, 2),
		Y: floorDiv(outer.height-s.height, 2),
	}
}

func floorDiv(value int, divisor int) int {
	quotient := value / divisor
	if value%divisor != 0 && (value < 0) != (divisor < 0) {
		quotient--
	}
	return quotient
}

// ScaleToFit scales the source size with one factor so that it fills the
// target on the limiting axis. The other axis is truncated and never
// drops below one pixel.
func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	if sourceWidth <= 0 || sourceHeight <= 0 {
		return 0, 0
	}
	source := int64(sourceWidth)
	sourceH := int64(sourceHeight)
	target := int64(targetWidth)
	targetH := int64(targetHeight)

	if target*sourceH <= targetH*source {
		return targetWidth, atLeastOne(int(target * sourceH / source))
	}
	return atLeastOne(int(targetH * source / sourceH)), targetHeight
}

func atLeastOne(value int) int {
	if value < 1 {
		return 1
	}
	return value
}
