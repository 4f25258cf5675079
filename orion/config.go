package orion

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file based configuration of a game.
//
//	window:
//	  width: 1280
//	  height: 720
//	  title: mcraft
//	profile: cpu
type Config struct {
	Window      WindowConfig `yaml:"window"`
	Profile     string       `yaml:"profile"`
	ProfilePath string       `yaml:"profile_path"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func DefaultConfig() Config {
	opts := RunGameOptions{}.withDefaults()

	return Config{
		Window: WindowConfig{
			Width:  opts.WindowWidth,
			Height: opts.WindowHeight,
			Title:  opts.WindowTitle,
		},
	}
}

// LoadConfig reads the configuration at path. A missing or empty file
// yields the default configuration. Values not present in the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Profile {
	case "", "cpu", "mem", "trace":
	default:
		return fmt.Errorf("unknown profile %q", c.Profile)
	}

	return nil
}

// Apply copies the configuration into the given options.
func (c Config) Apply(opts *RunGameOptions) {
	opts.WindowWidth = c.Window.Width
	opts.WindowHeight = c.Window.Height
	opts.WindowTitle = c.Window.Title
	opts.Profile = c.Profile
	opts.ProfilePath = c.ProfilePath
}
