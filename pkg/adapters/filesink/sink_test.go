package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/hairline/pkg/mocks"
	"github.com/user/hairline/pkg/ports"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveRawFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	var gotFormat ports.ImageFormat = -1
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			gotFormat = format
			return []byte("png"), nil
		},
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveRawFrame(42, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("SaveRawFrame failed: %v", err)
	}

	if gotFormat != ports.FormatPNG {
		t.Errorf("expected PNG encoding, got %d", gotFormat)
	}
	expectedPath := filepath.Join(testBaseDir, "frames", "raw", "frame-000042.png")
	saved, ok := fs.File(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != "png" {
		t.Errorf("expected %q, got %q", "png", saved)
	}
}

func TestSink_SaveProcessedFrame(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	if err := sink.SaveProcessedFrame(7, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("SaveProcessedFrame failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "frames", "processed", "frame-000007.png")
	if _, ok := fs.File(expectedPath); !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
	exists, _ := fs.Exists(filepath.Join(testBaseDir, "frames", "processed"))
	if !exists {
		t.Error("expected directory to be created")
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("encode failed")
		},
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveRawFrame(0, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error")
	}
	if fs.FileCount() != 0 {
		t.Error("expected no files to be written")
	}
}
