package api

import (
	"context"
	"image"
)

// OutputSink delivers a composed sheet. The name is the output path for
// files and the document title for printers.
type OutputSink interface {
	Write(ctx context.Context, img image.Image, name string) error
	String() string
}
