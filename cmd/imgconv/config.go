package main

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v2"

	"github.com/oy3o/imglib"
)

// Config is the optional YAML configuration of the converter.
type Config struct {
	BMP struct {
		XPelsPerMeter   *int32  `yaml:"x_pels_per_meter"`
		YPelsPerMeter   *int32  `yaml:"y_pels_per_meter"`
		ColorsImportant *uint32 `yaml:"colors_important"`
	} `yaml:"bmp"`
	JPEG struct {
		Quality int `yaml:"quality"`
	} `yaml:"jpeg"`
	Zstd struct {
		Level string `yaml:"level"`
	} `yaml:"zstd"`
	Verify bool `yaml:"verify"`
}

// loadConfig reads the YAML file at path. An empty path yields the zero Config.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.zstdLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// encodeOptions overlays the configured fields on imglib.DefaultOptions.
func (c *Config) encodeOptions() *imglib.Options {
	opts := imglib.DefaultOptions()
	if c.BMP.XPelsPerMeter != nil {
		opts.BMP.XPelsPerMeter = *c.BMP.XPelsPerMeter
	}
	if c.BMP.YPelsPerMeter != nil {
		opts.BMP.YPelsPerMeter = *c.BMP.YPelsPerMeter
	}
	if c.BMP.ColorsImportant != nil {
		opts.BMP.ColorsImportant = *c.BMP.ColorsImportant
	}
	if c.JPEG.Quality != 0 {
		opts.JPEGQuality = c.JPEG.Quality
	}
	return &opts
}

func (c *Config) zstdLevel() (zstd.EncoderLevel, error) {
	if c.Zstd.Level == "" {
		return zstd.SpeedDefault, nil
	}
	ok, level := zstd.EncoderLevelFromString(c.Zstd.Level)
	if !ok {
		return 0, fmt.Errorf("unknown zstd level %q", c.Zstd.Level)
	}
	return level, nil
}
