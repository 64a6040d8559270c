// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/hairline/pkg/ports"
)

// Sink saves tapped frames as PNG files below a base directory:
// frames/raw/frame-NNNNNN.png and frames/processed/frame-NNNNNN.png.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveRawFrame saves a frame as captured by the source.
func (s *Sink) SaveRawFrame(index uint64, img image.Image) error {
	return s.save("raw", index, img)
}

// SaveProcessedFrame saves a frame as handed to the display sink.
func (s *Sink) SaveProcessedFrame(index uint64, img image.Image) error {
	return s.save("processed", index, img)
}

func (s *Sink) save(kind string, index uint64, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames", kind)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", kind, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%06d.png", index))
	return s.fs.WriteFile(path, data)
}

var _ ports.DebugSink = (*Sink)(nil)
