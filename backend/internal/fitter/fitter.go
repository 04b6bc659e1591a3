package fitter

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"vincit.fi/selphy-print/api/apitype"
	"vincit.fi/selphy-print/backend/internal/raster"
	"vincit.fi/selphy-print/common/logger"
)

var ErrBorderTooLarge = errors.New("border leaves no printable area")

// Placement is where a source image lands on the sheet.
type Placement struct {
	Rotate bool
	Size   apitype.Size
	Offset image.Point
}

func (s Placement) Rectangle() image.Rectangle {
	return image.Rect(s.Offset.X, s.Offset.Y, s.Offset.X+s.Size.Width(), s.Offset.Y+s.Size.Height())
}

type Fitter struct {
	sheet  apitype.Sheet
	filter imaging.ResampleFilter
}

func NewFitter(sheet apitype.Sheet, filter imaging.ResampleFilter) *Fitter {
	return &Fitter{
		sheet:  sheet,
		filter: filter,
	}
}

func (s *Fitter) Sheet() apitype.Sheet {
	return s.sheet
}

// CheckBorder tells if some of the printable area is left inside the
// border.
func (s *Fitter) CheckBorder(borderPx int) error {
	if !s.sheet.PrintableSize().Shrink(borderPx).IsPositive() {
		return fmt.Errorf("%w: %d px border, %s printable",
			ErrBorderTooLarge, borderPx, s.sheet.PrintableSize())
	}
	return nil
}

// Layout computes the placement of a source of the given size. Portrait
// sources are rotated to landscape first. The border is removed from each
// side of the printable area before scaling.
func (s *Fitter) Layout(source apitype.Size, borderPx int) (Placement, error) {
	rotate := source.IsPortrait()
	if rotate {
		source = apitype.SizeOf(source.Height(), source.Width())
	}
	if !source.IsPositive() {
		return Placement{}, fmt.Errorf("empty image %s", source)
	}

	if err := s.CheckBorder(borderPx); err != nil {
		return Placement{}, err
	}
	usable := s.sheet.PrintableSize().Shrink(borderPx)

	scaled := apitype.SizeOf(apitype.ScaleToFit(source.Width(), source.Height(), usable.Width(), usable.Height()))
	return Placement{
		Rotate: rotate,
		Size:   scaled,
		Offset: scaled.CenterIn(s.sheet.PixelSize()),
	}, nil
}

// Fit scales the image to the printable area without cropping and draws it
// centered on a sheet sized canvas in the image's color mode.
func (s *Fitter) Fit(img image.Image, borderPx int) (draw.Image, error) {
	placement, err := s.Layout(apitype.SizeFromRectangle(img.Bounds()), borderPx)
	if err != nil {
		return nil, err
	}
	canvas, err := raster.NewCanvas(img, s.sheet.PixelSize())
	if err != nil {
		return nil, err
	}

	if scaled, ok := raster.RotateAndScale(img, placement.Rotate, placement.Size); ok {
		logger.Debug.Printf("Scaling %s %T to %s at %d,%d with nearest neighbor",
			apitype.SizeFromRectangle(img.Bounds()), img, placement.Size, placement.Offset.X, placement.Offset.Y)
		raster.Paste(canvas, placement.Rectangle(), scaled)
		return canvas, nil
	}

	if placement.Rotate {
		logger.Debug.Printf("Rotating portrait image %s to landscape", apitype.SizeFromRectangle(img.Bounds()))
		img = imaging.Rotate270(img)
	}

	logger.Debug.Printf("Scaling %s to %s at %d,%d",
		apitype.SizeFromRectangle(img.Bounds()), placement.Size, placement.Offset.X, placement.Offset.Y)
	scaled := imaging.Resize(img, placement.Size.Width(), placement.Size.Height(), s.filter)

	raster.Paste(canvas, placement.Rectangle(), scaled)
	return canvas, nil
}
