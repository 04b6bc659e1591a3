package processor

import (
	"context"
	"errors"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/selphy-print/api"
	"vincit.fi/selphy-print/api/apitype"
	"vincit.fi/selphy-print/backend/internal/fitter"
	"vincit.fi/selphy-print/backend/internal/imageloader"
	"vincit.fi/selphy-print/backend/internal/sink"
)

type recordingReporter struct {
	updates []string
	errors  []error
}

func (s *recordingReporter) Update(name string, current int, total int) {
	s.updates = append(s.updates, name)
}

func (s *recordingReporter) Error(message string, err error) {
	s.errors = append(s.errors, err)
}

type failingSink struct {
	err error
}

func (s *failingSink) Write(ctx context.Context, img image.Image, name string) error {
	return s.err
}

func (s *failingSink) String() string {
	return "failing"
}

func writeJpeg(t *testing.T, path string, width int, height int) {
	file, err := os.Create(path)
	require.Nil(t, err)
	defer file.Close()
	require.Nil(t, jpeg.Encode(file, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
}

func newProcessor(output api.OutputSink, progress *recordingReporter) *Processor {
	return NewProcessor(
		imageloader.NewImageLoader(true),
		fitter.NewFitter(apitype.SelphyPostcard, imaging.NearestNeighbor),
		output, 0, progress)
}

func outputNamer(dir string) NameFunc {
	return func(inputPath string) string {
		base := filepath.Base(inputPath)
		ext := filepath.Ext(base)
		return filepath.Join(dir, base[:len(base)-len(ext)]+"-print"+ext)
	}
}

func TestProcessor_ProcessFile(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "photo.jpg")
	output := filepath.Join(dir, "out.png")
	writeJpeg(t, input, 40, 30)

	processor := newProcessor(sink.NewFileSink(300, 90), &recordingReporter{})
	r.Nil(processor.ProcessFile(context.Background(), input, output))

	file, err := os.Open(output)
	r.Nil(err)
	defer file.Close()
	config, _, err := image.DecodeConfig(file)
	r.Nil(err)
	a.Equal(1771, config.Width)
	a.Equal(1181, config.Height)
}

func TestProcessor_ProcessFile_Errors(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	processor := newProcessor(sink.NewFileSink(300, 90), &recordingReporter{})

	corrupt := filepath.Join(dir, "corrupt.jpg")
	a.Nil(os.WriteFile(corrupt, []byte("not an image"), 0644))
	err := processor.ProcessFile(context.Background(), corrupt, filepath.Join(dir, "out.jpg"))
	a.ErrorIs(err, imageloader.ErrUnsupportedFormat)
	a.True(IsSkippable(err))

	err = processor.ProcessFile(context.Background(), filepath.Join(dir, "missing.jpg"), filepath.Join(dir, "out.jpg"))
	a.ErrorIs(err, os.ErrNotExist)
	a.False(IsSkippable(err))
}

func TestProcessor_ProcessDirectory(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	input := t.TempDir()
	output := t.TempDir()
	writeJpeg(t, filepath.Join(input, "b-photo.jpg"), 30, 60)
	r.Nil(os.WriteFile(filepath.Join(input, "a-corrupt.jpg"), []byte{0xFF, 0xD8, 0x00}, 0644))
	r.Nil(os.Mkdir(filepath.Join(input, "nested"), 0755))
	writeJpeg(t, filepath.Join(input, "nested", "inner.jpg"), 10, 10)

	progress := &recordingReporter{}
	processor := newProcessor(sink.NewFileSink(300, 90), progress)
	report, err := processor.ProcessDirectory(context.Background(), input, outputNamer(output))
	r.Nil(err)

	a.Equal(Report{Processed: 1, Skipped: 1}, report)
	a.Equal([]string{"a-corrupt.jpg", "b-photo.jpg"}, progress.updates)
	r.Len(progress.errors, 1)
	a.ErrorIs(progress.errors[0], imageloader.ErrUnsupportedFormat)

	entries, err := os.ReadDir(output)
	r.Nil(err)
	r.Len(entries, 1)
	a.Equal("b-photo-print.jpg", entries[0].Name())
}

func TestProcessor_ProcessDirectory_UnsupportedOutputIsSkipped(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	input := t.TempDir()
	writeJpeg(t, filepath.Join(input, "photo.jpg"), 30, 20)
	r.Nil(os.WriteFile(filepath.Join(input, "other.jpg"), nil, 0644))

	progress := &recordingReporter{}
	processor := newProcessor(&failingSink{err: sink.ErrUnsupportedOutputFormat}, progress)
	report, err := processor.ProcessDirectory(context.Background(), input, outputNamer(t.TempDir()))
	r.Nil(err)
	a.Equal(Report{Processed: 0, Skipped: 2}, report)
}

func TestProcessor_ProcessDirectory_StopsOnOutputFailure(t *testing.T) {
	a := assert.New(t)

	input := t.TempDir()
	writeJpeg(t, filepath.Join(input, "a.jpg"), 30, 20)
	writeJpeg(t, filepath.Join(input, "b.jpg"), 30, 20)

	failure := errors.New("disk full")
	progress := &recordingReporter{}
	processor := newProcessor(&failingSink{err: failure}, progress)
	report, err := processor.ProcessDirectory(context.Background(), input, outputNamer(t.TempDir()))
	a.ErrorIs(err, failure)
	a.Equal(Report{}, report)
	a.Equal([]string{"a.jpg"}, progress.updates)
}

func TestProcessor_ProcessDirectory_Cancelled(t *testing.T) {
	a := assert.New(t)

	input := t.TempDir()
	writeJpeg(t, filepath.Join(input, "a.jpg"), 30, 20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	progress := &recordingReporter{}
	_, err := newProcessor(sink.NewFileSink(300, 90), progress).ProcessDirectory(ctx, input, outputNamer(t.TempDir()))
	a.ErrorIs(err, context.Canceled)
	a.Empty(progress.updates)
}

func TestProcessor_ProcessDirectory_Missing(t *testing.T) {
	a := assert.New(t)

	_, err := newProcessor(sink.NewFileSink(300, 90), &recordingReporter{}).
		ProcessDirectory(context.Background(), filepath.Join(t.TempDir(), "missing"), outputNamer(t.TempDir()))
	a.ErrorIs(err, os.ErrNotExist)
}
