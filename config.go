package main

import (
	"fmt"
	"os"
	"time"

	"github.com/deviationtrack/canvaseditor/core"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Input  InputConfig  `toml:"input"`
	Export ExportConfig `toml:"export"`
	Log    LogConfig    `toml:"log"`
}

type CanvasConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	HandleSize float64 `toml:"handle_size"`
	MinBoxSize float64 `toml:"min_box_size"`
	RichText   string  `toml:"rich_text"` // seed
}

type InputConfig struct {
	DoubleClick Duration `toml:"double_click"`
	InboxDir    string   `toml:"inbox_dir"`
	InboxSettle Duration `toml:"inbox_settle"`
	X11Paste    bool     `toml:"x11_paste"`
	Display     string   `toml:"display"`
}

type ExportConfig struct {
	Delay  Duration `toml:"delay"`
	OutDir string   `toml:"out_dir"`
	Raster bool     `toml:"raster"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() *Config {
	opt := core.DefaultOptions()
	return &Config{
		Canvas: CanvasConfig{
			Width:      opt.CanvasWidth,
			Height:     opt.CanvasHeight,
			HandleSize: opt.HandleSize,
			MinBoxSize: opt.MinBoxSize,
		},
		Input: InputConfig{
			DoubleClick: Duration(400 * time.Millisecond),
			InboxSettle: Duration(200 * time.Millisecond),
		},
		Export: ExportConfig{
			Delay:  Duration(opt.ExportDelay),
			Raster: true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Defaults overlaid with the file. An empty filename gives the defaults; a named file must exist.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, nil
}

func (cfg *Config) Options() *core.Options {
	opt := core.DefaultOptions()
	opt.CanvasWidth = cfg.Canvas.Width
	opt.CanvasHeight = cfg.Canvas.Height
	opt.HandleSize = cfg.Canvas.HandleSize
	opt.MinBoxSize = cfg.Canvas.MinBoxSize
	opt.RichText = cfg.Canvas.RichText
	opt.ExportDelay = time.Duration(cfg.Export.Delay)
	return opt
}

//----------

// Reads and writes as a time.ParseDuration string (ex: "300ms").
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
