package h264codec

import (
	"fmt"
	"image"
	"io"
	"os/exec"
	"sync"

	"github.com/user/hairline/pkg/ports"
)

// Decoder implements ports.VideoDecoder with a long running ffmpeg process
// reading H.264 on stdin and writing raw RGBA frames on stdout. The process
// is restarted whenever the requested frame size changes.
type Decoder struct {
	ffmpegPath string

	mu     sync.Mutex
	width  int
	height int
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr *stderrTail
	done   chan struct{}
	latest *image.RGBA
	err    error
	fed    bool // Stream data was written to the current process
}

// NewDecoder creates a decoder. ffmpegPath may be empty.
func NewDecoder(ffmpegPath string) *Decoder {
	return &Decoder{ffmpegPath: ffmpegPath}
}

// Args returns the ffmpeg arguments for a stream of width x height pictures.
func (d *Decoder) Args(width, height int) []string {
	return []string{
		"-hide_banner", "-loglevel", "error", "-nostats",
		"-fflags", "nobuffer",
		"-flags", "low_delay",
		"-probesize", "32",
		"-analyzeduration", "0",
		"-f", "h264",
		"-i", "pipe:0",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"pipe:1",
	}
}

func (d *Decoder) start(width, height int) error {
	path, err := FindFFmpeg(d.ffmpegPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(path, d.Args(width, height)...)
	stderr := &stderrTail{}
	cmd.Stderr = stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	d.width = width
	d.height = height
	d.cmd = cmd
	d.stdin = stdin
	d.stderr = stderr
	d.done = make(chan struct{})
	d.latest = nil
	d.err = nil
	d.fed = false

	go d.readFrames(stdout, width, height, d.done)
	return nil
}

// readFrames keeps the most recent complete picture.
func (d *Decoder) readFrames(stdout io.Reader, width, height int, done chan struct{}) {
	defer close(done)
	for {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		if _, err := io.ReadFull(stdout, img.Pix); err != nil {
			if err != io.EOF && err != io.ErrUnexpectedEOF {
				d.mu.Lock()
				d.err = err
				d.mu.Unlock()
			}
			return
		}
		d.mu.Lock()
		if d.done == done {
			d.latest = img
		}
		d.mu.Unlock()
	}
}

// DecodeFrame feeds data to ffmpeg and returns the latest decoded picture.
func (d *Decoder) DecodeFrame(data []byte, width, height int) (image.Image, error) {
	d.mu.Lock()
	if d.cmd != nil && (width != d.width || height != d.height) {
		d.mu.Unlock()
		// The old stream is abandoned mid-picture, its exit status is moot.
		d.Close()
		d.mu.Lock()
	}
	if d.cmd == nil {
		if err := d.start(width, height); err != nil {
			d.mu.Unlock()
			return nil, err
		}
	}
	stdin, done := d.stdin, d.done
	if len(data) > 0 {
		d.fed = true
	}
	d.mu.Unlock()

	if len(data) > 0 {
		if _, err := stdin.Write(data); err != nil {
			select {
			case <-done:
				return nil, processError(ErrProcessExited, d.stderr)
			default:
				return nil, fmt.Errorf("failed to write stream data: %w", err)
			}
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return nil, fmt.Errorf("failed to read decoded frame: %w", d.err)
	}
	if d.latest == nil {
		return nil, nil
	}
	return d.latest, nil
}

// Close stops ffmpeg. Closing an idle decoder is a no-op, and so is the exit
// status of a process that never received stream data.
func (d *Decoder) Close() error {
	d.mu.Lock()
	cmd, stdin, done, stderr, fed := d.cmd, d.stdin, d.done, d.stderr, d.fed
	d.cmd = nil
	d.stdin = nil
	d.latest = nil
	d.mu.Unlock()

	if cmd == nil {
		return nil
	}

	stdin.Close()
	<-done
	if err := cmd.Wait(); err != nil && fed {
		return processError(fmt.Errorf("ffmpeg decoding failed: %w", err), stderr)
	}
	return nil
}

var _ ports.VideoDecoder = (*Decoder)(nil)
