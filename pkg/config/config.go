// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/user/hairline/pkg/colorfx"
	"github.com/user/hairline/pkg/orientation"
	"github.com/user/hairline/pkg/ports"
	"github.com/user/hairline/pkg/stages/display"
)

var (
	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid configuration")
	// ErrNotFound is returned by LoadFromFile when the file does not exist.
	ErrNotFound = errors.New("config: file not found")
)

// Capture sources.
const (
	SourceCamera = "camera"
	SourceTest   = "test"
	SourceScreen = "screen"
)

// Codec round trips placed before the display.
const (
	CodecNone = "none"
	CodecJPEG = "jpeg"
	CodecH264 = "h264"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config represents the full configuration for hairline.
type Config struct {
	// Capture
	Source    string  `yaml:"source"`
	Device    string  `yaml:"device"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	FPS       float64 `yaml:"fps"`
	NumFrames int     `yaml:"num_frames"` // Frames per session before end-of-stream, 0 for unlimited

	// Initial element properties
	Method string `yaml:"method"`
	Preset string `yaml:"preset"`

	// Codec
	Codec      string `yaml:"codec"`
	Quality    int    `yaml:"quality"`
	Bitrate    int    `yaml:"bitrate"`
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Display
	Display      string `yaml:"display"`
	Overlay      bool   `yaml:"overlay"`
	Headless     bool   `yaml:"headless"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Debug
	Debug      bool   `yaml:"debug"`
	DebugDir   string `yaml:"debug_dir"`
	DebugEvery int    `yaml:"debug_every"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Capture
		Source: SourceCamera,
		Width:  640,
		Height: 480,
		FPS:    30,

		// Initial element properties
		Method: orientation.Identity.String(),
		Preset: colorfx.None.String(),

		// Codec
		Codec:   CodecNone,
		Quality: 75,

		// Display
		Display:      string(display.ModeAuto),
		WindowWidth:  1280,
		WindowHeight: 720,

		// Logging
		LogLevel:  "info",
		LogFormat: LogFormatText,

		// Debug
		DebugDir:   "./debug",
		DebugEvery: 30,
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(fs ports.FileSystem, path string) (Config, error) {
	cfg := Defaults()

	ok, err := fs.Exists(path)
	if err != nil {
		return cfg, err
	}
	if !ok {
		return cfg, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	switch c.Source {
	case SourceCamera, SourceTest, SourceScreen:
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalid, c.Source)
	}
	switch c.Codec {
	case CodecNone, CodecJPEG, CodecH264:
	default:
		return fmt.Errorf("%w: unknown codec %q", ErrInvalid, c.Codec)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.LogFormat)
	}
	if _, err := display.ParseMode(c.Display); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := orientation.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := colorfx.ParsePreset(c.Preset); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative frame size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %g", ErrInvalid, c.FPS)
	}
	if c.Quality < 0 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be within 0-100, got %d", ErrInvalid, c.Quality)
	}
	if c.NumFrames < 0 || c.DebugEvery < 0 || c.Bitrate < 0 {
		return fmt.Errorf("%w: negative count", ErrInvalid)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	return nil
}

// VideoProperties returns the capture properties of the source.
func (c Config) VideoProperties() ports.VideoProperties {
	return ports.VideoProperties{
		Device:    c.Device,
		Width:     c.Width,
		Height:    c.Height,
		FrameRate: c.FPS,
		NumFrames: c.NumFrames,
	}
}

// EncoderOptions returns the options of the codec round trip.
func (c Config) EncoderOptions() ports.EncoderOptions {
	return ports.EncoderOptions{
		Bitrate: c.Bitrate,
		Quality: c.Quality,
	}
}
