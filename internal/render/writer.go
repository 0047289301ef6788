package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// Format is an output image encoding.
type Format string

// Supported formats.
const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat converts a case-insensitive name or extension into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(name), ".")); f {
	case FormatPNG, FormatBMP:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", name)
	}
}

// Encode writes img to out in the given format.
func Encode(out io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(out, img)
	case FormatBMP:
		return bmp.Encode(out, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Writer saves baked images under an output directory.
type Writer struct {
	outputDir string
	prefix    string
	format    Format
}

// NewWriter creates a writer. An empty outputDir writes to the working
// directory.
func NewWriter(outputDir, prefix string, format Format) *Writer {
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
	}
}

// SetOutputDir sets the output directory.
func (w *Writer) SetOutputDir(dir string) {
	w.outputDir = dir
}

// GenerateFilename returns a timestamped filename without saving.
func (w *Writer) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return w.path(fmt.Sprintf("%s_%s.%s", w.prefix, timestamp, w.format))
}

// FrameFilename returns the filename of sequence frame index.
func (w *Writer) FrameFilename(index int) string {
	return w.path(fmt.Sprintf("%s_%05d.%s", w.prefix, index, w.format))
}

func (w *Writer) path(name string) string {
	if w.outputDir == "" {
		return name
	}
	return filepath.Join(w.outputDir, name)
}

// Write saves img under a timestamped name and returns the path.
func (w *Writer) Write(img image.Image) (string, error) {
	filename := w.GenerateFilename()
	return filename, w.WriteTo(filename, img)
}

// WriteFrame saves img as frame index of a sequence and returns the path.
func (w *Writer) WriteFrame(index int, img image.Image) (string, error) {
	filename := w.FrameFilename(index)
	return filename, w.WriteTo(filename, img)
}

// WriteTo saves img at path, creating parent directories as needed.
func (w *Writer) WriteTo(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, img, w.format); err != nil {
		return fmt.Errorf("encoding %s: %w", strings.ToUpper(string(w.format)), err)
	}
	return nil
}
