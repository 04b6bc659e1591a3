package raster

import (
	"image"
	"math"
)

// Reduce maps images that are not 8-bit to 8-bit grayscale so that they
// can be written by the common encoders. Other images are returned as is.
func Reduce(img image.Image) image.Image {
	switch typed := img.(type) {
	case *image.Gray16:
		return reduceGray16(typed)
	case *Int32Image:
		return reduceInt32(typed)
	case *Float32Image:
		return reduceFloat32(typed)
	}
	return img
}

func reduceGray16(img *image.Gray16) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Pix[out.PixOffset(x, y)] = uint8(img.Gray16At(x, y).Y >> 8)
		}
	}
	return out
}

func reduceInt32(img *Int32Image) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			value := int64(img.Int32At(x, y)) + int32Offset
			out.Pix[out.PixOffset(x, y)] = uint8(clamp(floorDiv(value, 256), 0, 0xff))
		}
	}
	return out
}

func reduceFloat32(img *Float32Image) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			value := math.Floor(255 * float64(img.Float32At(x, y)))
			if math.IsNaN(value) {
				value = 0
			}
			out.Pix[out.PixOffset(x, y)] = uint8(clamp(int64(math.Max(math.Min(value, 0xff), 0)), 0, 0xff))
		}
	}
	return out
}

func floorDiv(value int64, divisor int64) int64 {
	quotient := value / divisor
	if value%divisor != 0 && value < 0 {
		quotient--
	}
	return quotient
}
