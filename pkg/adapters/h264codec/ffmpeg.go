// Package h264codec streams H.264 through ffmpeg processes. The encoder turns
// RGBA frames into an Annex-B byte stream and the decoder turns that stream
// back into RGBA frames, both without temporary files.
package h264codec

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"
)

// FindFFmpeg searches for ffmpeg.
// Priority: 1) custom, 2) FFMPEG_PATH env, 3) PATH, 4) common locations
func FindFFmpeg(custom string) (string, error) {
	if custom != "" {
		if _, err := os.Stat(custom); err == nil {
			return custom, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, custom)
	}

	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrFFmpegNotFound, envPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	switch runtime.GOOS {
	case "windows":
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
		}
	default:
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// IsFFmpegAvailable reports whether FindFFmpeg succeeds.
func IsFFmpegAvailable(custom string) bool {
	_, err := FindFFmpeg(custom)
	return err == nil
}

// stderrTail keeps the last bytes written by an ffmpeg process for error
// messages.
type stderrTail struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

const stderrTailSize = 4096

func (s *stderrTail) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Write(p)
	if over := s.buf.Len() - stderrTailSize; over > 0 {
		s.buf.Next(over)
	}
	return len(p), nil
}

func (s *stderrTail) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// processError wraps err with what ffmpeg printed before it failed.
func processError(err error, stderr *stderrTail) error {
	if out := stderr.String(); out != "" {
		return fmt.Errorf("%w\nstderr: %s", err, out)
	}
	return err
}
