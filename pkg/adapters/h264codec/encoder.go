package h264codec

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"sync"

	"github.com/user/hairline/pkg/ports"
)

const readChunkSize = 64 * 1024

// Encoder implements ports.VideoEncoder with a long running ffmpeg process
// reading raw RGBA frames on stdin and writing H.264 on stdout.
type Encoder struct {
	ffmpegPath string // Custom ffmpeg location, "" to search

	mu      sync.Mutex
	width   int
	height  int
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stderr  *stderrTail
	pending []byte
	readErr error
	done    chan struct{}
	frame   *image.RGBA
}

// NewEncoder creates an encoder. ffmpegPath may be empty.
func NewEncoder(ffmpegPath string) *Encoder {
	return &Encoder{ffmpegPath: ffmpegPath}
}

// Args returns the ffmpeg arguments for a stream. Quality 1-100 maps onto
// x264's CRF range 51-0.
func (e *Encoder) Args(width, height int, fps float64, opts ports.EncoderOptions) []string {
	args := []string{
		"-hide_banner", "-loglevel", "error", "-nostats",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.2f", fps),
		"-i", "pipe:0",
		"-c:v", "libx264",
		"-preset", "ultrafast",
		"-tune", "zerolatency",
		"-pix_fmt", "yuv420p",
		"-profile:v", "baseline",
	}

	crf := 23
	if opts.Quality > 0 && opts.Quality <= 100 {
		crf = (100 - opts.Quality) * 51 / 100
	}
	args = append(args, "-crf", fmt.Sprintf("%d", crf))
	if opts.Bitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", opts.Bitrate))
	}

	return append(args, "-f", "h264", "pipe:1")
}

// Begin starts ffmpeg for frames of width x height.
func (e *Encoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd != nil {
		return fmt.Errorf("h264codec: encoder already started")
	}

	path, err := FindFFmpeg(e.ffmpegPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(path, e.Args(width, height, fps, opts)...)
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

	e.width = width
	e.height = height
	e.cmd = cmd
	e.stdin = stdin
	e.stderr = stderr
	e.pending = nil
	e.readErr = nil
	e.done = make(chan struct{})
	e.frame = image.NewRGBA(image.Rect(0, 0, width, height))

	go e.drain(stdout, e.done)
	return nil
}

// drain collects encoded bytes until ffmpeg closes stdout.
func (e *Encoder) drain(stdout io.Reader, done chan struct{}) {
	defer close(done)
	buf := make([]byte, readChunkSize)
	for {
		n, err := stdout.Read(buf)
		if n > 0 {
			e.mu.Lock()
			e.pending = append(e.pending, buf[:n]...)
			e.mu.Unlock()
		}
		if err != nil {
			if err != io.EOF {
				e.mu.Lock()
				e.readErr = err
				e.mu.Unlock()
			}
			return
		}
	}
}

// EncodeFrame writes img to ffmpeg and returns the bytes encoded so far.
func (e *Encoder) EncodeFrame(img image.Image) ([]byte, error) {
	e.mu.Lock()
	if e.cmd == nil {
		e.mu.Unlock()
		return nil, ErrNotInitialized
	}
	if size := img.Bounds().Size(); size.X != e.width || size.Y != e.height {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: %dx%d, stream is %dx%d", ErrFrameSize, size.X, size.Y, e.width, e.height)
	}
	draw.Draw(e.frame, e.frame.Bounds(), img, img.Bounds().Min, draw.Src)
	stdin, pix, done := e.stdin, e.frame.Pix, e.done
	e.mu.Unlock()

	// Write without the lock so drain can keep emptying stdout.
	if _, err := stdin.Write(pix); err != nil {
		select {
		case <-done:
			return nil, processError(ErrProcessExited, e.stderr)
		default:
			return nil, fmt.Errorf("failed to write frame: %w", err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readErr != nil {
		return nil, fmt.Errorf("failed to read encoded data: %w", e.readErr)
	}
	out := e.pending
	e.pending = nil
	return out, nil
}

// End closes the stream and waits for ffmpeg to exit.
func (e *Encoder) End() error {
	e.mu.Lock()
	cmd, stdin, done, stderr := e.cmd, e.stdin, e.done, e.stderr
	e.cmd = nil
	e.stdin = nil
	e.mu.Unlock()

	if cmd == nil {
		return ErrNotInitialized
	}

	stdin.Close()
	<-done
	if err := cmd.Wait(); err != nil {
		return processError(fmt.Errorf("ffmpeg encoding failed: %w", err), stderr)
	}
	return nil
}

var _ ports.VideoEncoder = (*Encoder)(nil)
