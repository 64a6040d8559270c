package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/user/hairline/pkg/colorfx"
	"github.com/user/hairline/pkg/config"
	"github.com/user/hairline/pkg/orientation"
	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
	"github.com/user/hairline/pkg/stages/coloreffects"
	"github.com/user/hairline/pkg/stages/flip"
)

// ErrNoPropertyHolder is returned when an element expected to carry a
// property does not.
var ErrNoPropertyHolder = errors.New("app: element has no properties")

// Graph is the built pipeline with the elements driven by the buttons.
type Graph struct {
	Pipeline *pipeline.Pipeline
	Flip     pipeline.PropertyHolder
	Invert   pipeline.PropertyHolder
	Sink     string // Factory of the chosen sink
}

var sourceFactories = map[string]string{
	config.SourceCamera: "v4l2src",
	config.SourceTest:   "videotestsrc",
	config.SourceScreen: "screensrc",
}

var codecFactories = map[string][2]string{
	config.CodecJPEG: {"jpegenc", "jpegdec"},
	config.CodecH264: {"h264enc", "h264dec"},
}

// BuildGraph creates and links
// source -> flip -> convert1 -> invert -> convert2 -> [enc -> dec] -> [overlay] -> sink.
func BuildGraph(reg *pipeline.Registry, cfg config.Config, opts pipeline.Options) (*Graph, error) {
	log := opts.Logger

	factory, ok := sourceFactories[cfg.Source]
	if !ok {
		return nil, fmt.Errorf("%w: unknown source %q", config.ErrInvalid, cfg.Source)
	}

	type spec struct{ factory, name string }
	specs := []spec{
		{factory, "source"},
		{"videoflip", "flip"},
		{"videoconvert", "convert1"},
		{"coloreffects", "invert"},
		{"videoconvert", "convert2"},
	}
	if pair, ok := codecFactories[cfg.Codec]; ok {
		specs = append(specs, spec{pair[0], "encoder"}, spec{pair[1], "decoder"})
	}
	if cfg.Overlay {
		specs = append(specs, spec{"timeoverlay", "overlay"})
	}

	elems := make([]pipeline.Element, 0, len(specs)+1)
	for _, s := range specs {
		e, err := reg.Make(s.factory, s.name)
		if err != nil {
			return nil, fmt.Errorf("not all elements could be created: %w", err)
		}
		elems = append(elems, e)
	}

	sink, err := makeSink(reg, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("not all elements could be created: %w", err)
	}
	elems = append(elems, sink)

	g := &Graph{
		Pipeline: pipeline.New("hairline", opts),
		Sink:     sink.Factory(),
	}
	if g.Flip, err = holder(elems[1]); err != nil {
		return nil, err
	}
	if g.Invert, err = holder(elems[3]); err != nil {
		return nil, err
	}
	if err := initialProperties(g, cfg); err != nil {
		return nil, err
	}

	if err := g.Pipeline.Add(elems...); err != nil {
		return nil, err
	}
	if err := g.Pipeline.LinkMany(elems...); err != nil {
		return nil, fmt.Errorf("elements could not be linked: %w", err)
	}

	if log != nil {
		names := make([]string, len(elems))
		for i, e := range elems {
			names[i] = e.Name()
		}
		log.Info("Pipeline built: %s", strings.Join(names, " -> "))
	}
	return g, nil
}

// makeSink prefers glsink and falls back to softsink. Headless runs use
// fakesink.
func makeSink(reg *pipeline.Registry, cfg config.Config, log ports.Logger) (pipeline.Element, error) {
	if cfg.Headless {
		return reg.Make("fakesink", "sink")
	}
	sink, err := reg.Make("glsink", "sink")
	if err == nil {
		return sink, nil
	}
	if log != nil {
		log.Warn("Could not create glsink, falling back to softsink.")
		log.Debug("Accelerated display unavailable: %s", err)
	}
	return reg.Make("softsink", "sink")
}

func holder(e pipeline.Element) (pipeline.PropertyHolder, error) {
	h, ok := e.(pipeline.PropertyHolder)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPropertyHolder, e.Name())
	}
	return h, nil
}

func initialProperties(g *Graph, cfg config.Config) error {
	method, err := orientation.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	preset, err := colorfx.ParsePreset(cfg.Preset)
	if err != nil {
		return err
	}
	if err := g.Flip.SetProperty(flip.PropertyMethod, method.External()); err != nil {
		return err
	}
	return g.Invert.SetProperty(coloreffects.PropertyPreset, preset.External())
}
