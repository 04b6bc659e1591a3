package imageloader

import (
	"errors"
	"fmt"
	"image"
	"os"

	_ "golang.org/x/image/webp"
	"vincit.fi/selphy-print/common/logger"
)

var ErrUnsupportedFormat = errors.New("unsupported image file")

type ImageLoader struct {
	exifRotate bool
}

// NewImageLoader creates a loader. With exifRotate the EXIF orientation of
// the file is applied to the decoded pixels.
func NewImageLoader(exifRotate bool) *ImageLoader {
	return &ImageLoader{
		exifRotate: exifRotate,
	}
}

func (s *ImageLoader) LoadImage(path string) (image.Image, error) {
	logger.Debug.Printf("Loading image '%s'", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w \"%s\": %s", ErrUnsupportedFormat, path, err)
	}
	if !s.exifRotate {
		return img, nil
	}

	rotation, flipped := ExifOrientationToAngleAndFlip(readOrientation(data))
	if rotation == noRotate && !flipped {
		return img, nil
	}
	logger.Debug.Printf("Exif rotate '%s' by %d, flipped: %t", path, rotation, flipped)
	return ExifRotateImage(img, rotation, flipped), nil
}
