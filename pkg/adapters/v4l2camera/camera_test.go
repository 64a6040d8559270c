package v4l2camera

import (
	"path/filepath"
	"testing"

	"github.com/user/hairline/pkg/ports"
)

func TestCamera_OpenMissingDevice(t *testing.T) {
	cam := New()
	err := cam.Open(ports.VideoProperties{Device: filepath.Join(t.TempDir(), "video9"), Width: 640, Height: 480})
	if err == nil {
		cam.Close()
		t.Fatal("expected error for a missing device")
	}
}

func TestCamera_CloseUnopened(t *testing.T) {
	if err := New().Close(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
