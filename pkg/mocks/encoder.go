package mocks

import (
	"image"
	"sync"

	"github.com/user/hairline/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder.
type VideoEncoder struct {
	BeginFunc       func(width, height int, fps float64, opts ports.EncoderOptions) error
	EncodeFrameFunc func(img image.Image) ([]byte, error)
	EndFunc         func() error

	mu sync.Mutex
	// Recorded calls for verification
	BeginCalls       []BeginCall
	EncodeFrameCalls int
	EndCalls         int
}

// BeginCall records a call to Begin.
type BeginCall struct {
	Width, Height int
	FPS           float64
}

func (m *VideoEncoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	m.mu.Lock()
	m.BeginCalls = append(m.BeginCalls, BeginCall{Width: width, Height: height, FPS: fps})
	m.mu.Unlock()
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height, fps, opts)
	}
	return nil
}

func (m *VideoEncoder) EncodeFrame(img image.Image) ([]byte, error) {
	m.mu.Lock()
	m.EncodeFrameCalls++
	m.mu.Unlock()
	if m.EncodeFrameFunc != nil {
		return m.EncodeFrameFunc(img)
	}
	// A fake Annex-B access unit delimiter
	return []byte{0x00, 0x00, 0x00, 0x01, 0x09}, nil
}

func (m *VideoEncoder) End() error {
	m.mu.Lock()
	m.EndCalls++
	m.mu.Unlock()
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return nil
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)

// VideoDecoder is a mock implementation of ports.VideoDecoder.
type VideoDecoder struct {
	DecodeFrameFunc func(data []byte, width, height int) (image.Image, error)
	CloseFunc       func() error

	mu          sync.Mutex
	DecodeCalls int
	CloseCalls  int
}

func (m *VideoDecoder) DecodeFrame(data []byte, width, height int) (image.Image, error) {
	m.mu.Lock()
	m.DecodeCalls++
	m.mu.Unlock()
	if m.DecodeFrameFunc != nil {
		return m.DecodeFrameFunc(data, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

func (m *VideoDecoder) Close() error {
	m.mu.Lock()
	m.CloseCalls++
	m.mu.Unlock()
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

var _ ports.VideoDecoder = (*VideoDecoder)(nil)
