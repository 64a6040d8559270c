// Package main provides the CLI entry point for hairline.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	gioapp "gioui.org/app"
	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/hairline/pkg/adapters/filesink"
	"github.com/user/hairline/pkg/adapters/ggrenderer"
	"github.com/user/hairline/pkg/adapters/logger"
	"github.com/user/hairline/pkg/adapters/nullsink"
	"github.com/user/hairline/pkg/adapters/osfilesystem"
	"github.com/user/hairline/pkg/app"
	"github.com/user/hairline/pkg/config"
	"github.com/user/hairline/pkg/pipeline"
	"github.com/user/hairline/pkg/ports"
	"github.com/user/hairline/pkg/stages/display"
	"github.com/user/hairline/pkg/ui"
	"github.com/user/hairline/pkg/ui/window"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "hairline",
		Usage:   l10n.T("Live camera viewer with flip, rotate and invert controls"),
		Version: version,
		Flags:   flags(),
		Action:  run,
	}
}

func flags() []cli.Flag {
	d := config.Defaults()
	capture := l10n.T("Capture")
	processing := l10n.T("Processing")
	output := l10n.T("Display")
	debug := l10n.T("Debug")
	logging := l10n.T("Logging")

	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file")},

		// Capture
		&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Value: d.Source, Category: capture, Usage: l10n.T("Video source (camera, test, screen)")},
		&cli.StringFlag{Name: "device", Aliases: []string{"d"}, Category: capture, Usage: l10n.T("Capture device, a path for camera or an index for screen")},
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Value: d.Width, Category: capture, Usage: l10n.T("Capture width in pixels")},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Value: d.Height, Category: capture, Usage: l10n.T("Capture height in pixels")},
		&cli.Float64Flag{Name: "fps", Value: d.FPS, Category: capture, Usage: l10n.T("Capture frame rate")},
		&cli.IntFlag{Name: "num-frames", Category: capture, Usage: l10n.T("Frames per session before end-of-stream (0 = unlimited)")},

		// Processing
		&cli.StringFlag{Name: "method", Value: d.Method, Category: processing, Usage: l10n.T("Initial orientation (none, clockwise, rotate-180, ...)")},
		&cli.StringFlag{Name: "preset", Value: d.Preset, Category: processing, Usage: l10n.T("Initial color preset (none, heat, sepia, xray, xpro, yellowblue)")},
		&cli.StringFlag{Name: "codec", Value: d.Codec, Category: processing, Usage: l10n.T("Codec round trip before display (none, jpeg, h264)")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Value: d.Quality, Category: processing, Usage: l10n.T("Codec quality (0-100)")},
		&cli.IntFlag{Name: "bitrate", Category: processing, Usage: l10n.T("H.264 bitrate in kbps (0 = quality based)")},
		&cli.StringFlag{Name: "ffmpeg-path", Category: processing, Usage: l10n.T("Path to ffmpeg executable")},

		// Display
		&cli.StringFlag{Name: "display", Value: d.Display, Category: output, Usage: l10n.T("Display mode (auto, accelerated, software)")},
		&cli.BoolFlag{Name: "overlay", Category: output, Usage: l10n.T("Show the running time over the video")},
		&cli.BoolFlag{Name: "headless", Category: output, Usage: l10n.T("Run without a window")},

		// Debug
		&cli.BoolFlag{Name: "debug", Category: debug, Usage: l10n.T("Enable debug output")},
		&cli.StringFlag{Name: "debug-dir", Value: d.DebugDir, Category: debug, Usage: l10n.T("Directory for debug output")},
		&cli.IntFlag{Name: "debug-every", Value: d.DebugEvery, Category: debug, Usage: l10n.T("Save every Nth frame")},

		// Logging
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: d.LogLevel, Category: logging, Usage: l10n.T("Log level (debug, info, warn, error)")},
		&cli.StringFlag{Name: "log-format", Value: d.LogFormat, Category: logging, Usage: l10n.T("Log format (text, json)")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Category: logging, Usage: l10n.T("Suppress all log output")},
	}
}

// loadConfig reads the config file, if any, and applies the flags set on the
// command line over it.
func loadConfig(c *cli.Context, fs ports.FileSystem) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFromFile(fs, path); err != nil {
			return cfg, err
		}
	}

	str := func(name string, dst *string) {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	num := func(name string, dst *int) {
		if c.IsSet(name) {
			*dst = c.Int(name)
		}
	}
	flag := func(name string, dst *bool) {
		if c.IsSet(name) {
			*dst = c.Bool(name)
		}
	}

	str("source", &cfg.Source)
	str("device", &cfg.Device)
	num("width", &cfg.Width)
	num("height", &cfg.Height)
	if c.IsSet("fps") {
		cfg.FPS = c.Float64("fps")
	}
	num("num-frames", &cfg.NumFrames)
	str("method", &cfg.Method)
	str("preset", &cfg.Preset)
	str("codec", &cfg.Codec)
	num("quality", &cfg.Quality)
	num("bitrate", &cfg.Bitrate)
	str("ffmpeg-path", &cfg.FFmpegPath)
	str("display", &cfg.Display)
	flag("overlay", &cfg.Overlay)
	flag("headless", &cfg.Headless)
	flag("debug", &cfg.Debug)
	str("debug-dir", &cfg.DebugDir)
	num("debug-every", &cfg.DebugEvery)
	str("log-level", &cfg.LogLevel)
	str("log-format", &cfg.LogFormat)

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, quiet bool, errOut io.Writer) ports.Logger {
	level := ports.ParseLogLevel(cfg.LogLevel)
	switch {
	case quiet:
		return logger.NewNoop()
	case cfg.LogFormat == config.LogFormatJSON:
		return logger.NewLogrus(level, errOut)
	default:
		return logger.NewConsole(level)
	}
}

// session is everything run needs after startup succeeded.
type session struct {
	cfg    config.Config
	log    ports.Logger
	slot   *display.Slot
	graph  *app.Graph
	events *app.Context
}

// start builds the graph and sets it playing. Errors are cli exit errors.
func start(c *cli.Context) (*session, error) {
	fs := osfilesystem.New()
	cfg, err := loadConfig(c, fs)
	if err != nil {
		return nil, cli.Exit(l10n.F("Invalid configuration: %s", err), 1)
	}
	log := newLogger(cfg, c.Bool("quiet"), c.App.ErrWriter)
	log.Info("Starting hairline %s", version)

	renderer := ggrenderer.New()
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, cli.Exit(l10n.F("Failed to create debug directory: %s", err), 1)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
		log.Info("Debug frames will be written to %s", cfg.DebugDir)
	} else {
		sink = nullsink.New()
	}

	slot := display.NewSlot()
	reg := app.NewRegistry(app.Deps{
		Config:   cfg,
		Slot:     slot,
		Renderer: renderer,
		Logger:   log,
	})
	g, err := app.BuildGraph(reg, cfg, pipeline.Options{
		Logger:     log.WithComponent("pipeline"),
		DebugSink:  sink,
		DebugEvery: cfg.DebugEvery,
	})
	if err != nil {
		return nil, cli.Exit(l10n.F("Failed to build pipeline: %s", err), 1)
	}

	ctx := context.Background()
	events := app.NewContext(ctx, g.Pipeline, g.Flip, g.Invert, log)
	if err := g.Pipeline.SetState(ctx, pipeline.StatePlaying); err != nil {
		return nil, cli.Exit(l10n.F("Unable to set the pipeline to the playing state: %s", err), 1)
	}

	return &session{cfg: cfg, log: log, slot: slot, graph: g, events: events}, nil
}

func run(c *cli.Context) error {
	s, err := start(c)
	if err != nil {
		return err
	}

	if s.cfg.Headless {
		return ui.NewHeadless(s.graph.Pipeline.Bus(), s.log).Run(c.Context, s.events, s.events)
	}

	w := window.New(s.graph.Pipeline.Bus(), s.slot, window.Options{
		Title:  "hairline",
		Width:  s.cfg.WindowWidth,
		Height: s.cfg.WindowHeight,
	}, s.log)
	go func() {
		code := 0
		if err := w.Run(c.Context, s.events, s.events); err != nil {
			s.log.Error("Window error: %s", err)
			code = 1
		}
		os.Exit(code)
	}()
	gioapp.Main()
	return nil
}
