package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/pflag"
	"vincit.fi/selphy-print/backend/internal/fitter"
	"vincit.fi/selphy-print/backend/internal/imageloader"
	"vincit.fi/selphy-print/backend/internal/processor"
	"vincit.fi/selphy-print/backend/internal/sink"
	"vincit.fi/selphy-print/common/config"
	"vincit.fi/selphy-print/common/logger"
	"vincit.fi/selphy-print/common/util"
)

const (
	ExitOK                     = 0
	ExitInputMissing           = 1
	ExitOutputDirectoryMissing = 2
	ExitBorderTooLarge         = 3
	ExitPrinterNotFound        = 4
	ExitOutputFailed           = 5
	ExitInvalidArguments       = 6
)

var (
	ErrPathNotFound           = errors.New("input path does not exist")
	ErrOutputDirectoryMissing = errors.New("parent directory must exist")
)

type App struct {
	out        io.Writer
	errOut     io.Writer
	newSpooler SpoolerFactory
}

func NewApp(out io.Writer, errOut io.Writer, newSpooler SpoolerFactory) *App {
	return &App{
		out:        out,
		errOut:     errOut,
		newSpooler: newSpooler,
	}
}

// Run executes one invocation and returns the process exit code.
func (s *App) Run(ctx context.Context, args []string) int {
	logger.InitializeWithWriters(logger.INFO, s.out, s.errOut)

	params, err := util.ParseParams(args, s.errOut)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	} else if err != nil {
		logger.Error.Println(err)
		return ExitInvalidArguments
	}

	cfg, err := config.LoadConfig(params.GetConfigPath())
	if err != nil {
		logger.Error.Println(err)
		return ExitInvalidArguments
	}
	logLevel := cfg.LogLevel
	if params.GetLogLevel() != "" {
		logLevel = params.GetLogLevel()
	}
	logger.InitializeWithWriters(logger.StringToLogLevel(logLevel), s.out, s.errOut)

	resample := cfg.Output.Resample
	if params.GetResample() != "" {
		resample = params.GetResample()
	}
	filter, err := fitter.FilterByName(resample)
	if err != nil {
		logger.Error.Println(err)
		return ExitInvalidArguments
	}

	input := params.GetInput()
	if !util.DoesFileExist(input) {
		logger.Error.Printf("%s: \"%s\"", ErrPathNotFound, input)
		return ExitInputMissing
	}

	sheet := cfg.SheetSpec()
	imageFitter := fitter.NewFitter(sheet, filter)
	borderPx := sheet.BorderPixels(params.GetBorderMM())
	logger.Info.Printf("Fitting %s with %g mm border", describe(params), params.GetBorderMM())

	if params.IsPrinting() {
		return s.print(ctx, cfg, imageFitter, params, borderPx)
	}
	return s.save(ctx, cfg, imageFitter, params, borderPx)
}

func (s *App) print(ctx context.Context, cfg *config.Config, imageFitter *fitter.Fitter, params *util.Params, borderPx int) int {
	if util.IsDirectory(params.GetInput()) {
		logger.Error.Printf("%s: printing takes a single image, \"%s\" is a directory",
			util.ErrInvalidParams, params.GetInput())
		return ExitInvalidArguments
	}
	if params.GetBorderMM() > cfg.Printer.MaxBorderMM {
		logger.Error.Printf("%s: %g mm, at most %g mm when printing",
			fitter.ErrBorderTooLarge, params.GetBorderMM(), cfg.Printer.MaxBorderMM)
		return ExitBorderTooLarge
	}
	if err := imageFitter.CheckBorder(borderPx); err != nil {
		logger.Error.Println(err)
		return ExitBorderTooLarge
	}

	printer, err := InitializePrinterSink(ctx, cfg, s.newSpooler)
	if err != nil {
		logger.Error.Println(err)
		return ExitPrinterNotFound
	}

	services := InitializeServices(cfg, imageFitter, printer, borderPx)
	return s.processFile(ctx, services, params.GetInput(), filepath.Base(params.GetInput()))
}

func (s *App) save(ctx context.Context, cfg *config.Config, imageFitter *fitter.Fitter, params *util.Params, borderPx int) int {
	input := params.GetInput()
	output := params.GetOutput()
	if !util.DoesParentDirectoryExist(output) {
		logger.Error.Printf("%s: \"%s\"", ErrOutputDirectoryMissing, filepath.Dir(filepath.Clean(output)))
		return ExitOutputDirectoryMissing
	}
	if err := imageFitter.CheckBorder(borderPx); err != nil {
		logger.Error.Println(err)
		return ExitBorderTooLarge
	}

	services := InitializeServices(cfg, imageFitter, InitializeFileSink(cfg), borderPx)
	if util.IsDirectory(input) {
		if err := util.MakeDirectoriesIfNotExist(output); err != nil {
			logger.Error.Printf("%s: %s", sink.ErrIO, err)
			return ExitOutputFailed
		}
		return s.processDirectory(ctx, services, input, func(inputPath string) string {
			return filepath.Join(output, util.OutputFileName(inputPath))
		})
	}

	if util.IsDirectory(output) {
		output = filepath.Join(output, util.OutputFileName(input))
	}
	if err := sink.CheckOutputFormat(output); err != nil {
		logger.Error.Println(err)
		return ExitInvalidArguments
	}
	return s.processFile(ctx, services, input, output)
}

func (s *App) processFile(ctx context.Context, services *Services, input string, name string) int {
	err := services.Processor.ProcessFile(ctx, input, name)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, imageloader.ErrUnsupportedFormat):
		logger.Warn.Println(err)
		return ExitOK
	default:
		logger.Error.Println(err)
		return ExitOutputFailed
	}
}

func (s *App) processDirectory(ctx context.Context, services *Services, input string, name processor.NameFunc) int {
	if _, err := services.Processor.ProcessDirectory(ctx, input, name); err != nil {
		logger.Error.Println(err)
		return ExitOutputFailed
	}
	return ExitOK
}

// Run parses args, processes the images and returns the exit code. Log
// output goes to stdout and stderr.
func Run(ctx context.Context, args []string, out io.Writer, errOut io.Writer, newSpooler SpoolerFactory) int {
	return NewApp(out, errOut, newSpooler).Run(ctx, args)
}

func describe(params *util.Params) string {
	if params.IsPrinting() {
		return fmt.Sprintf("'%s' to printer", params.GetInput())
	}
	return fmt.Sprintf("'%s' to '%s'", params.GetInput(), params.GetOutput())
}
