package mocks

import (
	"context"
	"image"
	"io"
	"sync"

	"github.com/user/hairline/pkg/ports"
)

// VideoSource is a mock implementation of ports.VideoSource producing
// blank frames of the opened size.
type VideoSource struct {
	OpenFunc func(props ports.VideoProperties) error
	ReadFunc func(ctx context.Context) (image.Image, error)

	mu         sync.Mutex
	props      ports.VideoProperties
	read       int
	OpenCalls  int
	CloseCalls int
}

func (m *VideoSource) Open(props ports.VideoProperties) error {
	m.mu.Lock()
	m.OpenCalls++
	m.props = props
	m.read = 0
	m.mu.Unlock()
	if m.OpenFunc != nil {
		return m.OpenFunc(props)
	}
	return nil
}

func (m *VideoSource) Read(ctx context.Context) (image.Image, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.props.NumFrames > 0 && m.read >= m.props.NumFrames {
		return nil, io.EOF
	}
	m.read++
	return image.NewNRGBA(image.Rect(0, 0, m.props.Width, m.props.Height)), nil
}

// Opens returns the number of Open calls so far.
func (m *VideoSource) Opens() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.OpenCalls
}

func (m *VideoSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls++
	return nil
}

var _ ports.VideoSource = (*VideoSource)(nil)
