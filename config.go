package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/matt-g-everett/huygens/scene"
	"github.com/matt-g-everett/huygens/stream"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "config.yaml"

// Config is the whole program configuration.
type Config struct {
	Animation stream.AnimationConfig `yaml:"animation"`
	Output    stream.OutputConfig    `yaml:"output"`
	Scene     scene.Params           `yaml:"scene"`
}

// DefaultConfig matches the original 975 frames at 20ms. The axes are
// square, so the default output is too.
func DefaultConfig() Config {
	var c Config
	c.Animation = stream.AnimationConfig{Frames: 975, IntervalMs: 20}
	c.Output = stream.OutputConfig{
		Mode:       stream.ModeWindow,
		Path:       "huygens.gif",
		Width:      480,
		Height:     480,
		PointScale: 100.0 / 72.0,
	}
	c.Scene = scene.DefaultParams()
	return c
}

// ReadConfig decodes YAML from r over the defaults.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, c.Validate()
}

// LoadConfig reads the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return ReadConfig(f)
}

// loadConfigOrDefault reads path, falling back to the defaults when path is
// the default config file and it does not exist.
func loadConfigOrDefault(path string) (Config, error) {
	c, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		log.Printf("No %s, using defaults", path)
		return DefaultConfig(), nil
	}
	return c, err
}

// Validate checks the config can drive an animation.
func (c Config) Validate() error {
	if err := c.Animation.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Scene.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}
