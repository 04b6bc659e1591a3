package raster

import (
	"image"
	"image/draw"

	"vincit.fi/selphy-print/api/apitype"
)

// RotateAndScale turns Int32 and Float32 images 90 degrees clockwise when
// rotate is set and scales them to size with nearest neighbor sampling.
// Pixel values are copied as is. ok is false for other image types.
func RotateAndScale(img image.Image, rotate bool, size apitype.Size) (image.Image, bool) {
	bounds := img.Bounds()
	target := image.Rect(0, 0, size.Width(), size.Height())
	switch typed := img.(type) {
	case *Int32Image:
		out := NewInt32Image(target)
		for y := 0; y < target.Dy(); y++ {
			for x := 0; x < target.Dx(); x++ {
				source := sourcePoint(bounds, rotate, size, x, y)
				out.Pix[out.PixOffset(x, y)] = typed.Pix[typed.PixOffset(source.X, source.Y)]
			}
		}
		return out, true
	case *Float32Image:
		out := NewFloat32Image(target)
		for y := 0; y < target.Dy(); y++ {
			for x := 0; x < target.Dx(); x++ {
				source := sourcePoint(bounds, rotate, size, x, y)
				out.Pix[out.PixOffset(x, y)] = typed.Pix[typed.PixOffset(source.X, source.Y)]
			}
		}
		return out, true
	}
	return nil, false
}

// sourcePoint maps a pixel of the scaled image to the pixel it samples.
// The rotated image has the source's height as its width; its x runs
// down the source bottom up and its y runs along the source's x.
func sourcePoint(bounds image.Rectangle, rotate bool, size apitype.Size, x int, y int) image.Point {
	width, height := bounds.Dx(), bounds.Dy()
	if rotate {
		width, height = height, width
	}
	rx := (2*x + 1) * width / (2 * size.Width())
	ry := (2*y + 1) * height / (2 * size.Height())
	if rotate {
		return image.Point{X: bounds.Min.X + ry, Y: bounds.Max.Y - 1 - rx}
	}
	return image.Point{X: bounds.Min.X + rx, Y: bounds.Min.Y + ry}
}

// Paste draws src into r of dst. Int32 and Float32 pixels are copied
// without conversion when both images are of the same type.
func Paste(dst draw.Image, r image.Rectangle, src image.Image) {
	r = r.Intersect(dst.Bounds())
	origin := src.Bounds().Min
	switch typedDst := dst.(type) {
	case *Int32Image:
		if typedSrc, ok := src.(*Int32Image); ok {
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					p := image.Point{X: origin.X + x - r.Min.X, Y: origin.Y + y - r.Min.Y}
					if p.In(typedSrc.Rect) {
						typedDst.Pix[typedDst.PixOffset(x, y)] = typedSrc.Pix[typedSrc.PixOffset(p.X, p.Y)]
					}
				}
			}
			return
		}
	case *Float32Image:
		if typedSrc, ok := src.(*Float32Image); ok {
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					p := image.Point{X: origin.X + x - r.Min.X, Y: origin.Y + y - r.Min.Y}
					if p.In(typedSrc.Rect) {
						typedDst.Pix[typedDst.PixOffset(x, y)] = typedSrc.Pix[typedSrc.PixOffset(p.X, p.Y)]
					}
				}
			}
			return
		}
	}
	draw.Draw(dst, r, src, origin, draw.Src)
}
