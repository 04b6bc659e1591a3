//go:build libjpeg

package imageloader

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"
)

var options = &jpeg.DecoderOptions{}

// JPEG files go through libjpeg, everything else through the registered
// Go decoders.
func decode(data []byte) (image.Image, error) {
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		return jpeg.Decode(bytes.NewReader(data), options)
	}
	return imaging.Decode(bytes.NewReader(data))
}
