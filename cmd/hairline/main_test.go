package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/user/hairline/pkg/adapters/osfilesystem"
	"github.com/user/hairline/pkg/config"
	"github.com/user/hairline/pkg/pipeline"
)

func testApp(action cli.ActionFunc) *cli.App {
	a := newApp()
	a.ExitErrHandler = func(*cli.Context, error) {}
	if action != nil {
		a.Action = action
	}
	return a
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hairline.yaml")
	if err := os.WriteFile(path, []byte("source: screen\nfps: 10\ncodec: jpeg\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg config.Config
	var loadErr error
	a := testApp(func(c *cli.Context) error {
		cfg, loadErr = loadConfig(c, osfilesystem.New())
		return nil
	})
	if err := a.Run([]string{"hairline", "--config", path, "--source", "test", "--overlay"}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if loadErr != nil {
		t.Fatalf("loadConfig failed: %v", loadErr)
	}

	if cfg.Source != config.SourceTest {
		t.Errorf("expected flag to override source, got %q", cfg.Source)
	}
	if cfg.FPS != 10 || cfg.Codec != config.CodecJPEG {
		t.Errorf("expected file values to be kept, got fps %g codec %q", cfg.FPS, cfg.Codec)
	}
	if !cfg.Overlay {
		t.Error("expected overlay to be enabled")
	}
	if cfg.Width != 640 {
		t.Errorf("expected default width, got %d", cfg.Width)
	}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ec cli.ExitCoder
	if !errors.As(err, &ec) {
		t.Fatalf("expected an exit error, got %v", err)
	}
	return ec.ExitCode()
}

func TestRun_InvalidConfigExitsWithOne(t *testing.T) {
	err := testApp(nil).Run([]string{"hairline", "--quiet", "--source", "webcam"})
	if code := exitCode(t, err); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestRun_ElementCreationFailureExitsWithOne(t *testing.T) {
	err := testApp(nil).Run([]string{
		"hairline", "--quiet", "--headless", "--source", "test",
		"--codec", "h264", "--ffmpeg-path", "/nonexistent/ffmpeg",
	})
	if code := exitCode(t, err); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestStart_Headless(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "debug")

	var s *session
	var startErr error
	a := testApp(func(c *cli.Context) error {
		s, startErr = start(c)
		return nil
	})
	args := []string{
		"hairline", "--quiet", "--headless", "--source", "test",
		"--width", "64", "--height", "48", "--debug", "--debug-dir", dir,
	}
	if err := a.Run(args); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if startErr != nil {
		t.Fatalf("start failed: %v", startErr)
	}
	defer s.graph.Pipeline.SetState(context.Background(), pipeline.StateNull)

	if s.graph.Pipeline.State() != pipeline.StatePlaying {
		t.Errorf("expected PLAYING, got %s", s.graph.Pipeline.State())
	}
	if s.graph.Sink != "fakesink" {
		t.Errorf("expected fakesink, got %s", s.graph.Sink)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected debug directory to be created: %v", err)
	}

	s.events.OnCloseRequested()
	if s.graph.Pipeline.State() != pipeline.StateNull {
		t.Errorf("expected NULL after close, got %s", s.graph.Pipeline.State())
	}
}
