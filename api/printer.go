package api

import (
	"context"
	"image"

	"vincit.fi/selphy-print/api/apitype"
)

// Spooler gives access to the printers registered in the operating system.
type Spooler interface {
	Printers(ctx context.Context) ([]string, error)
	Open(ctx context.Context, printer string) (Device, error)
}

// Device is an open device context of one printer. A job is
// StartDoc, StartPage, Blit, EndPage and EndDoc; AbortDoc replaces EndDoc
// when the job fails. Close releases the context.
type Device interface {
	PageSize() apitype.Size
	StartDoc(ctx context.Context, title string) error
	StartPage() error
	Blit(img image.Image) error
	EndPage() error
	EndDoc(ctx context.Context) error
	AbortDoc() error
	Close() error
}
