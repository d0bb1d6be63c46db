// Package config handles application configuration loading and management.
package config

import (
	"fmt"

	"github.com/zhijia2/DancingLogo/internal/logger"
	"github.com/zhijia2/DancingLogo/internal/scene"
)

// Host names accepted in window.host.
const (
	HostSDL  = "sdl"
	HostGLFW = "glfw"
)

// Screenshot formats accepted in screenshot.format.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window" toml:"window"`
	Animation  AnimationConfig  `yaml:"animation" toml:"animation"`
	Screenshot ScreenshotConfig `yaml:"screenshot" toml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`

	// source is the file the config was read from, if any.
	source string
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
	Host       string `yaml:"host" toml:"host"` // "sdl" or "glfw"
}

// AnimationConfig holds the initial values of the input signals.
type AnimationConfig struct {
	Speed     float64 `yaml:"speed" toml:"speed"`           // degrees per second
	SpeedStep float64 `yaml:"speed_step" toml:"speed_step"` // per key press
	MaxSpeed  float64 `yaml:"max_speed" toml:"max_speed"`
	Scene     string  `yaml:"scene" toml:"scene"` // "logo" or "tree"
	Watch     bool    `yaml:"watch" toml:"watch"` // reload speed/scene when the file changes
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Prefix string `yaml:"prefix" toml:"prefix"`
	Format string `yaml:"format" toml:"format"` // "png" or "bmp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	Console bool   `yaml:"console" toml:"console"`
	LogFile string `yaml:"log_file" toml:"log_file"`

	// Rotation of LogFile.
	MaxSizeMB  int  `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool `yaml:"compress" toml:"compress"`
}

// LoggerOptions converts the section into logger options.
func (l LoggingConfig) LoggerOptions() logger.Options {
	return logger.Options{
		Level:   l.Level,
		Console: l.Console,
		File: logger.FileConfig{
			Path:       l.LogFile,
			MaxSizeMB:  l.MaxSizeMB,
			MaxBackups: l.MaxBackups,
			MaxAgeDays: l.MaxAgeDays,
			Compress:   l.Compress,
		},
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Dancing Logo",
			Width:      800,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			Host:       HostSDL,
		},
		Animation: AnimationConfig{
			Speed:     50,
			SpeedStep: 10,
			MaxSpeed:  360,
			Scene:     scene.Logo.String(),
			Watch:     false,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "dancinglogo",
			Format: FormatPNG,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Console:    true,
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Source returns the path of the file the config was loaded from, or ""
// when only defaults and flags were used.
func (c *Config) Source() string {
	return c.source
}

// InitialScene returns the parsed animation.scene value.
func (c *Config) InitialScene() scene.Scene {
	return c.Animation.InitialScene()
}

// InitialScene returns the parsed scene value. Unknown names read as the
// logo; Validate rejects them.
func (a AnimationConfig) InitialScene() scene.Scene {
	s, _ := scene.Parse(a.Scene)
	return s
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Window.Host {
	case HostSDL, HostGLFW:
	default:
		return fmt.Errorf("window: unknown host %q", c.Window.Host)
	}
	if c.Animation.Speed < 0 {
		return fmt.Errorf("animation: speed must not be negative, got %v", c.Animation.Speed)
	}
	if c.Animation.MaxSpeed > 0 && c.Animation.Speed > c.Animation.MaxSpeed {
		return fmt.Errorf("animation: speed %v exceeds max_speed %v", c.Animation.Speed, c.Animation.MaxSpeed)
	}
	if _, err := scene.Parse(c.Animation.Scene); err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	switch c.Screenshot.Format {
	case FormatPNG, FormatBMP:
	default:
		return fmt.Errorf("screenshot: unknown format %q", c.Screenshot.Format)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging: rotation limits must not be negative")
	}
	return nil
}
