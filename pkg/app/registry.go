package app

import (
	"os"

	"github.com/user/hairline/pkg/adapters/h264codec"
	"github.com/user/hairline/pkg/adapters/screensource"
	"github.com/user/hairline/pkg/adapters/testsource"
	"github.com/user/hairline/pkg/adapters/v4l2camera"
	"github.com/user/hairline/pkg/config"
	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
	"github.com/user/hairline/pkg/stages/codec"
	"github.com/user/hairline/pkg/stages/coloreffects"
	"github.com/user/hairline/pkg/stages/convert"
	"github.com/user/hairline/pkg/stages/display"
	"github.com/user/hairline/pkg/stages/flip"
	"github.com/user/hairline/pkg/stages/overlay"
	"github.com/user/hairline/pkg/stages/source"
)

// Deps contains the dependencies shared by the element factories.
type Deps struct {
	Config   config.Config
	Slot     *display.Slot // Frame slot read by the window
	Renderer ports.Renderer
	Logger   ports.Logger
	Getenv   func(string) string // Defaults to os.Getenv

	// Capture devices, replaced in tests. Nil uses the real adapters.
	Camera func() ports.VideoSource
	Screen func() ports.VideoSource
}

// NewRegistry registers every element factory hairline knows.
func NewRegistry(deps Deps) *pipeline.Registry {
	cfg := deps.Config
	log := deps.Logger
	getenv := deps.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	camera := deps.Camera
	if camera == nil {
		camera = func() ports.VideoSource { return v4l2camera.New() }
	}
	screen := deps.Screen
	if screen == nil {
		screen = func() ports.VideoSource { return screensource.New() }
	}

	reg := pipeline.NewRegistry()

	sourceFactory := func(factory string, open func() ports.VideoSource) pipeline.Factory {
		return func(name string) (pipeline.Element, error) {
			return source.New(name, factory, open(), cfg.VideoProperties(), log), nil
		}
	}
	reg.Register("v4l2src", sourceFactory("v4l2src", camera))
	reg.Register("videotestsrc", sourceFactory("videotestsrc", func() ports.VideoSource { return testsource.New() }))
	reg.Register("screensrc", sourceFactory("screensrc", screen))

	reg.Register("videoflip", func(name string) (pipeline.Element, error) {
		return flip.New(name), nil
	})
	reg.Register("videoconvert", func(name string) (pipeline.Element, error) {
		return convert.New(name), nil
	})
	reg.Register("coloreffects", func(name string) (pipeline.Element, error) {
		return coloreffects.New(name), nil
	})

	reg.Register("jpegenc", func(name string) (pipeline.Element, error) {
		return codec.NewJPEGEncoder(name, deps.Renderer, cfg.Quality), nil
	})
	reg.Register("jpegdec", func(name string) (pipeline.Element, error) {
		return codec.NewJPEGDecoder(name, deps.Renderer), nil
	})
	reg.Register("h264enc", func(name string) (pipeline.Element, error) {
		path, err := h264codec.FindFFmpeg(cfg.FFmpegPath)
		if err != nil {
			return nil, err
		}
		return codec.NewH264Encoder(name, h264codec.NewEncoder(path), cfg.FPS, cfg.EncoderOptions(), log), nil
	})
	reg.Register("h264dec", func(name string) (pipeline.Element, error) {
		path, err := h264codec.FindFFmpeg(cfg.FFmpegPath)
		if err != nil {
			return nil, err
		}
		return codec.NewH264Decoder(name, h264codec.NewDecoder(path), log), nil
	})

	reg.Register("timeoverlay", func(name string) (pipeline.Element, error) {
		return overlay.New(name, deps.Renderer), nil
	})

	reg.Register("glsink", func(name string) (pipeline.Element, error) {
		mode, err := display.ParseMode(cfg.Display)
		if err != nil {
			return nil, err
		}
		sink, err := display.NewGLSink(name, deps.Slot, mode, getenv)
		if err != nil {
			return nil, err
		}
		return sink, nil
	})
	reg.Register("softsink", func(name string) (pipeline.Element, error) {
		return display.NewSoftSink(name, deps.Slot), nil
	})
	reg.Register("fakesink", func(name string) (pipeline.Element, error) {
		return display.NewFakeSink(name), nil
	})

	return reg
}
