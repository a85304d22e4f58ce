// Package config loads the settings of the tutorial window.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/stewi1014/gltutorial/scenes"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// OpenGL context version. The profile is always core.
	GLMajor int  `yaml:"gl_major"`
	GLMinor int  `yaml:"gl_minor"`
	VSync   bool `yaml:"vsync"`

	// Assets is the directory shader files are read from.
	Assets string `yaml:"assets"`
	Scene  string `yaml:"scene"`

	// Strict makes a shader program that fails to build fatal.
	Strict bool `yaml:"strict"`
	// ErrorDialog shows fatal errors in a GTK dialog as well as the log.
	ErrorDialog bool `yaml:"error_dialog"`
}

func Default() Config {
	return Config{
		Width:   800,
		Height:  600,
		Title:   "OpenGL",
		GLMajor: 3,
		GLMinor: 3,
		VSync:   true,
		Assets:  "assets",
		Scene:   scenes.Default,
	}
}

// Load reads the YAML file at path over the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config %v: %w", path, err)
	}

	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalid, c.Width, c.Height)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		return fmt.Errorf("%w: OpenGL %v.%v is older than 3.3", ErrInvalid, c.GLMajor, c.GLMinor)
	}
	if _, err := scenes.Get(c.Scene); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
