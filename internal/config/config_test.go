package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stewi1014/gltutorial/scenes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, 3, c.GLMajor)
	assert.Equal(t, 3, c.GLMinor)
	assert.Equal(t, scenes.Default, c.Scene)
	assert.NoError(t, c.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
width: 1024
title: Triangles
scene: rectangle
strict: true
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, "Triangles", c.Title)
	assert.Equal(t, "rectangle", c.Scene)
	assert.True(t, c.Strict)
	assert.True(t, c.VSync)
	assert.Equal(t, "assets", c.Assets)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("width: [wide\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"zero width":      func(c *Config) { c.Width = 0 },
		"negative height": func(c *Config) { c.Height = -1 },
		"old gl":          func(c *Config) { c.GLMajor, c.GLMinor = 3, 2 },
		"unknown scene":   func(c *Config) { c.Scene = "teapot" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}

	c := Default()
	c.Scene = "teapot"
	assert.ErrorIs(t, c.Validate(), scenes.ErrUnknownScene)
}
