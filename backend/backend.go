package backend

import (
	"context"

	"vincit.fi/selphy-print/api"
	"vincit.fi/selphy-print/backend/internal/cups"
	"vincit.fi/selphy-print/backend/internal/fitter"
	"vincit.fi/selphy-print/backend/internal/imageloader"
	"vincit.fi/selphy-print/backend/internal/processor"
	"vincit.fi/selphy-print/backend/internal/sink"
	"vincit.fi/selphy-print/common/config"
	"vincit.fi/selphy-print/common/logger"
)

// SpoolerFactory creates the printer binding. It is only called when
// printing.
type SpoolerFactory func(cfg *config.Config) api.Spooler

func NewCupsSpooler(cfg *config.Config) api.Spooler {
	sheet := cfg.SheetSpec()
	return cups.NewSpooler(sheet.DPI, sheet.PixelSize(), cfg.Printer.PPDDirectory)
}

type Services struct {
	Fitter    *fitter.Fitter
	Sink      api.OutputSink
	Processor *processor.Processor
}

func InitializeFileSink(cfg *config.Config) api.OutputSink {
	return sink.NewFileSink(cfg.Sheet.DPI, cfg.Output.JPEGQuality)
}

func InitializePrinterSink(ctx context.Context, cfg *config.Config, newSpooler SpoolerFactory) (api.OutputSink, error) {
	logger.Debug.Printf("Looking up printers...")
	return sink.NewPrinterSink(ctx, newSpooler(cfg), cfg.Printer.Match)
}

func InitializeServices(cfg *config.Config, imageFitter *fitter.Fitter, output api.OutputSink, borderPx int) *Services {
	logger.Debug.Printf("Initialize services...")
	loader := imageloader.NewImageLoader(cfg.Output.ExifRotate)
	services := &Services{
		Fitter:    imageFitter,
		Sink:      output,
		Processor: processor.NewProcessor(loader, imageFitter, output, borderPx, api.NewLoggerProgressReporter()),
	}
	logger.Debug.Printf("Services initialized, writing to %s", output)
	return services
}
