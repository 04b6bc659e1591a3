package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"vincit.fi/selphy-print/backend/internal/raster"
	"vincit.fi/selphy-print/common/logger"
)

var (
	ErrIO                      = errors.New("could not write output")
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)

type FileSink struct {
	dpi     int
	quality int
}

const DefaultJPEGQuality = 95

func NewFileSink(dpi int, quality int) *FileSink {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &FileSink{
		dpi:     dpi,
		quality: quality,
	}
}

// CheckOutputFormat tells if the extension of path can be encoded.
func CheckOutputFormat(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("%w \"%s\"", ErrUnsupportedOutputFormat, path)
	}
	return nil
}

func (s *FileSink) Write(ctx context.Context, img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%w \"%s\"", ErrUnsupportedOutputFormat, path)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	buffer := &bytes.Buffer{}
	if err := imaging.Encode(buffer, raster.Reduce(img), format, imaging.JPEGQuality(s.quality)); err != nil {
		logger.Error.Println("Could not encode image", err)
		return fmt.Errorf("%w \"%s\": %s", ErrIO, path, err)
	}

	data, tagged, err := tagResolution(buffer.Bytes(), format, s.dpi)
	if err != nil {
		return fmt.Errorf("%w \"%s\": %s", ErrIO, path, err)
	}
	if !tagged {
		logger.Debug.Printf("%s files are written without resolution", format)
	}

	logger.Info.Printf("Saving '%s'", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error.Println("Could not open file for writing", err)
		return fmt.Errorf("%w: %s", ErrIO, err)
	}
	return nil
}

func (s *FileSink) String() string {
	return fmt.Sprintf("files at %d DPI", s.dpi)
}
