//go:build !linux

package v4l2camera

import (
	"context"
	"image"

	"github.com/user/hairline/pkg/ports"
)

// Camera is unavailable on this platform; Open always fails.
type Camera struct{}

// New creates a camera.
func New() *Camera {
	return &Camera{}
}

func (c *Camera) Open(props ports.VideoProperties) error { return ErrUnsupported }

func (c *Camera) Read(ctx context.Context) (image.Image, error) { return nil, ErrUnsupported }

func (c *Camera) Close() error { return nil }

var _ ports.VideoSource = (*Camera)(nil)
