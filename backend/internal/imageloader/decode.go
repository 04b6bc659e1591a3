//go:build !libjpeg

package imageloader

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

func decode(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data))
}
