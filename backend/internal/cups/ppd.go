package cups

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const pointsPerInch = 72.0

var (
	defaultPageSizeRegexp = regexp.MustCompile(`^\*DefaultPageSize:\s*(\S+)`)
	paperDimensionRegexp  = regexp.MustCompile(`^\*PaperDimension\s+([^/:\s]+)[^:]*:\s*"\s*([0-9.]+)\s+([0-9.]+)\s*"`)
)

// paperDimension is a page size in PostScript points.
type paperDimension struct {
	width  float64
	height float64
}

// parsePaperDimension reads the dimensions of the default page size of a
// PPD file.
func parsePaperDimension(r io.Reader) (paperDimension, bool) {
	var defaultSize string
	dimensions := map[string]paperDimension{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if match := defaultPageSizeRegexp.FindStringSubmatch(line); match != nil {
			defaultSize = match[1]
		} else if match := paperDimensionRegexp.FindStringSubmatch(line); match != nil {
			width, widthErr := strconv.ParseFloat(match[2], 64)
			height, heightErr := strconv.ParseFloat(match[3], 64)
			if widthErr == nil && heightErr == nil {
				dimensions[match[1]] = paperDimension{width: width, height: height}
			}
		}
	}

	dimension, ok := dimensions[defaultSize]
	return dimension, ok
}

func pointsToPixels(points float64, dpi int) int {
	return int(points / pointsPerInch * float64(dpi))
}
