package cups

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"vincit.fi/selphy-print/api"
	"vincit.fi/selphy-print/api/apitype"
	"vincit.fi/selphy-print/common/logger"
)

const DefaultPPDDirectory = "/etc/cups/ppd"

var (
	ErrCommand  = errors.New("spooler command failed")
	ErrJobState = errors.New("print job is not in a valid state")
)

// Runner executes an external command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	out, err := cmd.Output()
	if err != nil {
		if message := strings.TrimSpace(stderr.String()); message != "" {
			return out, fmt.Errorf("%s: %s", err, message)
		}
		return out, err
	}
	return out, nil
}

// Spooler talks to CUPS with the lpstat and lp commands.
type Spooler struct {
	run      Runner
	ppdDir   string
	tempDir  string
	dpi      int
	fallback apitype.Size
}

func NewSpooler(dpi int, fallback apitype.Size, ppdDir string) *Spooler {
	return NewSpoolerWithRunner(ExecRunner, dpi, fallback, ppdDir, os.TempDir())
}

func NewSpoolerWithRunner(run Runner, dpi int, fallback apitype.Size, ppdDir string, tempDir string) *Spooler {
	if ppdDir == "" {
		ppdDir = DefaultPPDDirectory
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Spooler{
		run:      run,
		ppdDir:   ppdDir,
		tempDir:  tempDir,
		dpi:      dpi,
		fallback: fallback,
	}
}

func (s *Spooler) Printers(ctx context.Context) ([]string, error) {
	out, err := s.run(ctx, "lpstat", "-e")
	if err != nil {
		return nil, fmt.Errorf("%w: lpstat: %s", ErrCommand, err)
	}
	var printers []string
	for _, line := range strings.Split(string(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			printers = append(printers, name)
		}
	}
	logger.Debug.Printf("Found %d printers", len(printers))
	return printers, nil
}

func (s *Spooler) Open(ctx context.Context, printer string) (api.Device, error) {
	return &Device{
		spooler: s,
		printer: printer,
		page:    s.pageSize(printer),
	}, nil
}

// pageSize reads the default page of the printer from its PPD file.
func (s *Spooler) pageSize(printer string) apitype.Size {
	path := filepath.Join(s.ppdDir, printer+".ppd")
	file, err := os.Open(path)
	if err != nil {
		logger.Debug.Printf("No PPD for '%s', using sheet size %s", printer, s.fallback)
		return s.fallback
	}
	defer file.Close()

	dimension, ok := parsePaperDimension(file)
	if !ok {
		logger.Debug.Printf("No default page size in '%s', using sheet size %s", path, s.fallback)
		return s.fallback
	}
	size := apitype.SizeOf(pointsToPixels(dimension.width, s.dpi), pointsToPixels(dimension.height, s.dpi))
	if !size.IsPositive() {
		return s.fallback
	}
	logger.Debug.Printf("Printer '%s' page is %s", printer, size)
	return size
}

type jobState int

const (
	idle jobState = iota
	inDocument
	inPage
	closed
)

// Device collects one page and spools it as a PNG file when the
// document ends.
type Device struct {
	spooler *Spooler
	printer string
	page    apitype.Size
	state   jobState
	title   string
	image   image.Image
	spool   string
}

func (s *Device) PageSize() apitype.Size {
	return s.page
}

func (s *Device) StartDoc(ctx context.Context, title string) error {
	if s.state != idle {
		return ErrJobState
	}
	s.title = title
	s.state = inDocument
	return nil
}

func (s *Device) StartPage() error {
	if s.state != inDocument {
		return ErrJobState
	}
	s.state = inPage
	return nil
}

func (s *Device) Blit(img image.Image) error {
	if s.state != inPage {
		return ErrJobState
	}
	s.image = img
	return nil
}

func (s *Device) EndPage() error {
	if s.state != inPage {
		return ErrJobState
	}
	s.state = inDocument
	return nil
}

func (s *Device) EndDoc(ctx context.Context) error {
	if s.state != inDocument {
		return ErrJobState
	}
	s.state = idle
	if s.image == nil {
		return fmt.Errorf("%w: document has no page", ErrJobState)
	}

	jobId := uuid.New().String()
	s.spool = filepath.Join(s.spooler.tempDir, "selphy-"+jobId+".png")
	file, err := os.Create(s.spool)
	if err != nil {
		return err
	}
	if err := png.Encode(file, s.image); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	logger.Debug.Printf("Spooling '%s' to '%s'", s.spool, s.printer)
	if out, err := s.spooler.run(ctx, "lp", "-d", s.printer, "-t", jobTitle(s.title, jobId), s.spool); err != nil {
		return fmt.Errorf("%w: lp: %s", ErrCommand, err)
	} else if job := strings.TrimSpace(string(out)); job != "" {
		logger.Info.Println(job)
	}
	return nil
}

// jobTitle tells jobs of the same image apart in the printer queue.
func jobTitle(title string, jobId string) string {
	return fmt.Sprintf("%s [%s]", title, jobId)
}

func (s *Device) AbortDoc() error {
	s.state = idle
	s.image = nil
	return nil
}

// Close removes the spool file. lp copies the file when the job is
// submitted.
func (s *Device) Close() error {
	s.state = closed
	s.image = nil
	if s.spool == "" {
		return nil
	}
	spool := s.spool
	s.spool = ""
	if err := os.Remove(spool); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
