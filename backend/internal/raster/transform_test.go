package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/selphy-print/api/apitype"
)

func TestRotateAndScale_Int32(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	// 2x3 portrait, values are 10*y + x
	src := NewInt32Image(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			src.Pix[src.PixOffset(x, y)] = int32(10*y + x)
		}
	}

	t.Run("Same size", func(t *testing.T) {
		out, ok := RotateAndScale(src, false, apitype.SizeOf(2, 3))
		r.True(ok)
		a.Equal(src.Pix, out.(*Int32Image).Pix)
	})
	t.Run("Rotated clockwise", func(t *testing.T) {
		out, ok := RotateAndScale(src, true, apitype.SizeOf(3, 2))
		r.True(ok)
		// Top left of the source ends up at the top right
		a.Equal([]int32{20, 10, 0, 21, 11, 1}, out.(*Int32Image).Pix)
	})
	t.Run("Doubled", func(t *testing.T) {
		out, ok := RotateAndScale(src, false, apitype.SizeOf(4, 6))
		r.True(ok)
		scaled := out.(*Int32Image)
		a.Equal(Int32Value(0), scaled.Int32At(1, 1))
		a.Equal(Int32Value(1), scaled.Int32At(2, 1))
		a.Equal(Int32Value(21), scaled.Int32At(3, 5))
	})
}

func TestRotateAndScale_Float32KeepsValues(t *testing.T) {
	a := assert.New(t)

	src := NewFloat32Image(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = 0.999
	}
	out, ok := RotateAndScale(src, false, apitype.SizeOf(7, 5))
	a.True(ok)
	for _, value := range out.(*Float32Image).Pix {
		a.Equal(float32(0.999), value)
	}

	_, ok = RotateAndScale(image.NewGray(image.Rect(0, 0, 2, 2)), false, apitype.SizeOf(4, 4))
	a.False(ok)
}

func TestPaste(t *testing.T) {
	a := assert.New(t)

	t.Run("Float32 is copied as is", func(t *testing.T) {
		dst := NewFloat32Image(image.Rect(0, 0, 4, 3))
		src := NewFloat32Image(image.Rect(0, 0, 2, 2))
		for i := range src.Pix {
			src.Pix[i] = 0.999
		}
		Paste(dst, image.Rect(1, 1, 3, 3), src)
		a.Equal([]float32{
			0, 0, 0, 0,
			0, 0.999, 0.999, 0,
			0, 0.999, 0.999, 0,
		}, dst.Pix)
	})
	t.Run("Int32 outside of the canvas is clipped", func(t *testing.T) {
		dst := NewInt32Image(image.Rect(0, 0, 2, 2))
		src := NewInt32Image(image.Rect(0, 0, 2, 2))
		copy(src.Pix, []int32{70000, 70001, 70002, 70003})
		Paste(dst, image.Rect(1, 1, 3, 3), src)
		a.Equal([]int32{0, 0, 0, 70000}, dst.Pix)
	})
	t.Run("Other images are drawn", func(t *testing.T) {
		dst := image.NewGray(image.Rect(0, 0, 2, 1))
		src := image.NewGray(image.Rect(0, 0, 1, 1))
		src.Pix[0] = 0x80
		Paste(dst, image.Rect(1, 0, 2, 1), src)
		a.Equal([]uint8{0, 0x80}, dst.Pix)
	})
}
