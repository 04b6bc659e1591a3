package sink

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"vincit.fi/selphy-print/api"
	"vincit.fi/selphy-print/common/logger"
)

const DefaultPrinterMatch = "selphy"

var (
	ErrDeviceNotFound = errors.New("no matching printer found")
	ErrPrintJob       = errors.New("print job failed")
)

type PrinterSink struct {
	spooler api.Spooler
	printer string
}

// NewPrinterSink selects the first printer whose name contains match,
// ignoring case.
func NewPrinterSink(ctx context.Context, spooler api.Spooler, match string) (*PrinterSink, error) {
	printers, err := spooler.Printers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, err)
	}
	printer, ok := FindPrinter(printers, match)
	if !ok {
		return nil, fmt.Errorf("%w: no printer name contains '%s'", ErrDeviceNotFound, match)
	}
	logger.Info.Printf("Using printer '%s'", printer)
	return &PrinterSink{
		spooler: spooler,
		printer: printer,
	}, nil
}

func FindPrinter(printers []string, match string) (string, bool) {
	match = strings.ToLower(match)
	for _, printer := range printers {
		if strings.Contains(strings.ToLower(printer), match) {
			return printer, true
		}
	}
	return "", false
}

func (s *PrinterSink) Printer() string {
	return s.printer
}

// Write prints the image as a single page document. The image is turned
// to match the orientation of the page and stretched to fill it.
func (s *PrinterSink) Write(ctx context.Context, img image.Image, title string) (err error) {
	device, err := s.spooler.Open(ctx, s.printer)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPrintJob, err)
	}
	defer func() {
		if closeErr := device.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %s", ErrPrintJob, closeErr)
		}
	}()

	page := device.PageSize()
	if !page.IsPositive() {
		return fmt.Errorf("%w: printer reported page %s", ErrPrintJob, page)
	}
	if page.IsPortrait() {
		img = imaging.Rotate90(img)
	}
	logger.Debug.Printf("Stretching %s to page %s", img.Bounds().Size(), page)
	stretched := resize.Resize(uint(page.Width()), uint(page.Height()), img, resize.NearestNeighbor)

	if err := device.StartDoc(ctx, title); err != nil {
		return fmt.Errorf("%w: %s", ErrPrintJob, err)
	}
	defer func() {
		if err != nil {
			if abortErr := device.AbortDoc(); abortErr != nil {
				logger.Warn.Printf("Could not abort print job '%s': %s", title, abortErr)
			}
			return
		}
		if endErr := device.EndDoc(ctx); endErr != nil {
			err = fmt.Errorf("%w: %s", ErrPrintJob, endErr)
		}
	}()

	if err := device.StartPage(); err != nil {
		return fmt.Errorf("%w: %s", ErrPrintJob, err)
	}
	blitErr := device.Blit(stretched)
	if endErr := device.EndPage(); endErr != nil && blitErr == nil {
		blitErr = endErr
	}
	if blitErr != nil {
		return fmt.Errorf("%w: %s", ErrPrintJob, blitErr)
	}

	logger.Info.Printf("Sending '%s' to '%s'", title, s.printer)
	return nil
}

func (s *PrinterSink) String() string {
	return fmt.Sprintf("printer '%s'", s.printer)
}
