package imageloader

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"vincit.fi/selphy-print/common/logger"
)

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

// ExifOrientationToAngleAndFlip returns the counter-clockwise rotation and
// the horizontal flip that undo the given EXIF orientation.
func ExifOrientationToAngleAndFlip(orientation int) (int, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

// readOrientation returns 1 when the data has no usable orientation tag.
func readOrientation(data []byte) int {
	decodedExif, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Trace.Printf("No Exif data: %s", err)
		return 1
	}
	if logger.IsLogLevel(logger.TRACE) {
		walker := newMapExifWalker()
		if err := decodedExif.Walk(walker); err == nil {
			logger.Trace.Printf("Exif data: %v", walker.values)
		}
	}
	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		logger.Trace.Printf("No Exif orientation: %s", err)
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		logger.Warn.Printf("Could not resolve orientation: %s", err)
		return 1
	}
	return orientation
}

func ExifRotateImage(img image.Image, rotation int, flipped bool) image.Image {
	switch rotation {
	case left90:
		img = imaging.Rotate90(img)
	case rotate180:
		img = imaging.Rotate180(img)
	case right90:
		img = imaging.Rotate270(img)
	}
	if flipped {
		return imaging.FlipH(img)
	}
	return img
}

type mapExifWalker struct {
	values map[string]string
}

func newMapExifWalker() *mapExifWalker {
	return &mapExifWalker{
		values: map[string]string{},
	}
}

func (s *mapExifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tagValue := strings.Trim(tag.String(), " \t\""); tagValue != "" {
		s.values[string(name)] = tagValue
	}
	return nil
}
