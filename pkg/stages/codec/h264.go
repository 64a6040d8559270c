package codec

import (
	"context"
	"fmt"

	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
)

// H264Encoder compresses raw frames into an H.264 stream. The stream is
// restarted whenever the frame size changes, e.g. after a rotation.
type H264Encoder struct {
	pipeline.Base
	encoder ports.VideoEncoder
	fps     float64
	opts    ports.EncoderOptions
	logger  ports.Logger

	begun  bool
	width  int
	height int
}

// NewH264Encoder creates an h264enc element.
func NewH264Encoder(name string, encoder ports.VideoEncoder, fps float64, opts ports.EncoderOptions, logger ports.Logger) *H264Encoder {
	return &H264Encoder{
		Base:    pipeline.NewBase(name, "h264enc", pipeline.RawCaps(), pipeline.Caps{Media: pipeline.MediaH264}),
		encoder: encoder,
		fps:     fps,
		opts:    opts,
		logger:  logger.WithComponent(name),
	}
}

// Start resets the stream state. The encoder itself starts with the first
// frame, once its size is known.
func (e *H264Encoder) Start(ctx context.Context) error {
	e.begun = false
	return nil
}

// Stop ends the running stream.
func (e *H264Encoder) Stop() error {
	if !e.begun {
		return nil
	}
	e.begun = false
	return e.encoder.End()
}

// Execute feeds the frame and returns the bytes encoded so far, possibly
// none.
func (e *H264Encoder) Execute(ctx context.Context, buf pipeline.Buffer) (pipeline.Buffer, error) {
	if e.begun && (buf.Width != e.width || buf.Height != e.height) {
		e.begun = false
		if err := e.encoder.End(); err != nil {
			e.logger.Warn("Failed to stop element: %s", err)
		}
	}
	if !e.begun {
		if err := e.encoder.Begin(buf.Width, buf.Height, e.fps, e.opts); err != nil {
			return buf, fmt.Errorf("begin encoding: %w", err)
		}
		e.begun = true
		e.width = buf.Width
		e.height = buf.Height
		e.logger.Debug("Encoder started for %dx%d frames", buf.Width, buf.Height)
	}

	data, err := e.encoder.EncodeFrame(buf.Image)
	if err != nil {
		return buf, fmt.Errorf("encode frame %d: %w", buf.Sequence, err)
	}
	return pipeline.Buffer{
		Caps:     e.SrcCaps(),
		Data:     data,
		Width:    buf.Width,
		Height:   buf.Height,
		Sequence: buf.Sequence,
		PTS:      buf.PTS,
	}, nil
}

// H264Decoder turns an H.264 stream back into raw frames. Frames for which
// the decoder has no picture yet are dropped.
type H264Decoder struct {
	pipeline.Base
	decoder ports.VideoDecoder
	logger  ports.Logger

	width  int
	height int
}

// NewH264Decoder creates an h264dec element.
func NewH264Decoder(name string, decoder ports.VideoDecoder, logger ports.Logger) *H264Decoder {
	return &H264Decoder{
		Base:    pipeline.NewBase(name, "h264dec", pipeline.Caps{Media: pipeline.MediaH264}, pipeline.RawCaps()),
		decoder: decoder,
		logger:  logger.WithComponent(name),
	}
}

// Start resets the stream state.
func (d *H264Decoder) Start(ctx context.Context) error {
	d.width, d.height = 0, 0
	return nil
}

// Stop releases the decoder.
func (d *H264Decoder) Stop() error {
	return d.decoder.Close()
}

// Execute feeds the stream bytes and returns the latest picture.
func (d *H264Decoder) Execute(ctx context.Context, buf pipeline.Buffer) (pipeline.Buffer, error) {
	if buf.Width != d.width || buf.Height != d.height {
		d.width, d.height = buf.Width, buf.Height
		d.logger.Debug("Decoder started for %dx%d frames", buf.Width, buf.Height)
	}
	img, err := d.decoder.DecodeFrame(buf.Data, buf.Width, buf.Height)
	if err != nil {
		return buf, fmt.Errorf("decode frame %d: %w", buf.Sequence, err)
	}
	if img == nil {
		return buf, pipeline.ErrDropped
	}
	return pipeline.RawBuffer(buf, img), nil
}

var (
	_ pipeline.Filter  = (*H264Encoder)(nil)
	_ pipeline.Starter = (*H264Encoder)(nil)
	_ pipeline.Filter  = (*H264Decoder)(nil)
	_ pipeline.Starter = (*H264Decoder)(nil)
)
