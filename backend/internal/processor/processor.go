package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vincit.fi/selphy-print/api"
	"vincit.fi/selphy-print/backend/internal/fitter"
	"vincit.fi/selphy-print/backend/internal/imageloader"
	"vincit.fi/selphy-print/backend/internal/raster"
	"vincit.fi/selphy-print/backend/internal/sink"
	"vincit.fi/selphy-print/common/logger"
)

// Report counts the files of a directory run.
type Report struct {
	Processed int
	Skipped   int
}

// NameFunc gives the sink name for an input file.
type NameFunc func(inputPath string) string

type Processor struct {
	loader   *imageloader.ImageLoader
	fitter   *fitter.Fitter
	sink     api.OutputSink
	borderPx int
	progress api.ProgressReporter
}

func NewProcessor(loader *imageloader.ImageLoader, imageFitter *fitter.Fitter, output api.OutputSink, borderPx int, progress api.ProgressReporter) *Processor {
	return &Processor{
		loader:   loader,
		fitter:   imageFitter,
		sink:     output,
		borderPx: borderPx,
		progress: progress,
	}
}

// IsSkippable tells if the error only concerns one input file.
func IsSkippable(err error) bool {
	return errors.Is(err, imageloader.ErrUnsupportedFormat) ||
		errors.Is(err, sink.ErrUnsupportedOutputFormat) ||
		errors.Is(err, raster.ErrUnsupportedMode)
}

// ProcessFile loads, fits and writes one image.
func (s *Processor) ProcessFile(ctx context.Context, inputPath string, name string) error {
	img, err := s.loader.LoadImage(inputPath)
	if err != nil {
		return err
	}
	canvas, err := s.fitter.Fit(img, s.borderPx)
	if err != nil {
		return fmt.Errorf("could not fit \"%s\": %w", inputPath, err)
	}
	return s.sink.Write(ctx, canvas, name)
}

// ProcessDirectory processes the files of dir in name order. Sub
// directories are not entered. Files that are not images are reported
// and skipped; any other failure stops the run.
func (s *Processor) ProcessDirectory(ctx context.Context, dir string, name NameFunc) (Report, error) {
	report := Report{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return report, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			logger.Debug.Printf("Skipping directory '%s'", entry.Name())
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	total := len(files)
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		s.progress.Update(filepath.Base(file), i+1, total)

		if err := s.ProcessFile(ctx, file, name(file)); err != nil {
			if IsSkippable(err) {
				s.progress.Error("Skipping file", err)
				report.Skipped++
				continue
			}
			return report, err
		}
		report.Processed++
	}

	logger.Info.Printf("Processed %d files, skipped %d", report.Processed, report.Skipped)
	return report, nil
}
