package sink

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"math"

	"github.com/disintegration/imaging"
)

const (
	jfifUnitsDotsPerInch = 1
	pngUnitMetre         = 1
	metresPerInch        = 0.0254
)

var (
	jpegStartOfImage = []byte{0xFF, 0xD8}
	jfifIdentifier   = []byte("JFIF\x00")
	pngSignature     = []byte("\x89PNG\r\n\x1a\n")
	bmpSignature     = []byte("BM")

	errMalformed = errors.New("malformed encoder output")
)

// tagResolution stores the resolution in the encoded image. The returned
// flag is false for formats that are written without it.
func tagResolution(data []byte, format imaging.Format, dpi int) ([]byte, bool, error) {
	switch format {
	case imaging.JPEG:
		result, err := tagJpeg(data, dpi)
		return result, err == nil, err
	case imaging.PNG:
		result, err := tagPng(data, dpi)
		return result, err == nil, err
	case imaging.BMP:
		result, err := tagBmp(data, dpi)
		return result, err == nil, err
	}
	return data, false, nil
}

func dotsPerMetre(dpi int) uint32 {
	return uint32(math.Round(float64(dpi) / metresPerInch))
}

// 0xFF 0xE0 length (2 bytes) "JFIF\0" version (2 bytes) units (1 byte)
// x density (2 bytes) y density (2 bytes) thumbnail size (2 bytes)
func jfifSegment(dpi int) []byte {
	segment := []byte{0xFF, 0xE0, 0x00, 0x10}
	segment = append(segment, jfifIdentifier...)
	segment = append(segment, 0x01, 0x02, jfifUnitsDotsPerInch)
	segment = append(segment, byte(dpi>>8), byte(dpi), byte(dpi>>8), byte(dpi))
	return append(segment, 0x00, 0x00)
}

func tagJpeg(data []byte, dpi int) ([]byte, error) {
	if !bytes.HasPrefix(data, jpegStartOfImage) {
		return nil, errMalformed
	}
	const app0 = 2
	const unitsOffset = app0 + 4 + 5 + 2
	if len(data) > unitsOffset+5 && data[app0] == 0xFF && data[app0+1] == 0xE0 &&
		bytes.Equal(data[app0+4:app0+9], jfifIdentifier) {
		result := append([]byte{}, data...)
		result[unitsOffset] = jfifUnitsDotsPerInch
		binary.BigEndian.PutUint16(result[unitsOffset+1:], uint16(dpi))
		binary.BigEndian.PutUint16(result[unitsOffset+3:], uint16(dpi))
		return result, nil
	}

	result := make([]byte, 0, len(data)+18)
	result = append(result, data[:2]...)
	result = append(result, jfifSegment(dpi)...)
	return append(result, data[2:]...), nil
}

// The pHYs chunk goes right after IHDR, which is always the first chunk.
func tagPng(data []byte, dpi int) ([]byte, error) {
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if len(data) < ihdrEnd || !bytes.HasPrefix(data, pngSignature) || string(data[12:16]) != "IHDR" {
		return nil, errMalformed
	}

	body := make([]byte, 4+9)
	copy(body, "pHYs")
	binary.BigEndian.PutUint32(body[4:], dotsPerMetre(dpi))
	binary.BigEndian.PutUint32(body[8:], dotsPerMetre(dpi))
	body[12] = pngUnitMetre

	chunk := make([]byte, 4, 4+len(body)+4)
	binary.BigEndian.PutUint32(chunk, 9)
	chunk = append(chunk, body...)
	crc := make([]byte, 4)
	binary.BigEndian.PutUint32(crc, crc32.ChecksumIEEE(body))
	chunk = append(chunk, crc...)

	result := make([]byte, 0, len(data)+len(chunk))
	result = append(result, data[:ihdrEnd]...)
	result = append(result, chunk...)
	return append(result, data[ihdrEnd:]...), nil
}

// BITMAPINFOHEADER keeps the resolution at offsets 38 and 42.
func tagBmp(data []byte, dpi int) ([]byte, error) {
	const xOffset = 38
	const yOffset = 42
	if len(data) < yOffset+4 || !bytes.HasPrefix(data, bmpSignature) {
		return nil, errMalformed
	}
	result := append([]byte{}, data...)
	binary.LittleEndian.PutUint32(result[xOffset:], dotsPerMetre(dpi))
	binary.LittleEndian.PutUint32(result[yOffset:], dotsPerMetre(dpi))
	return result, nil
}
