package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/pareto"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20.0, cfg.Margin.Top)
	assert.Equal(t, 40.0, cfg.Margin.Right)
	assert.Equal(t, 40.0, cfg.Margin.Bottom)
	assert.Equal(t, 40.0, cfg.Margin.Left)
	assert.Equal(t, 10, cfg.Ticks)
	assert.Equal(t, ',', cfg.Delim())
	assert.Equal(t, pareto.TextPosition(0), cfg.Chart().LineLabel)
}

func TestLoadFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pareto.yml")
	data := []byte("width: 400\nheight: 300\nmargin:\n  left: 60\npalette: tableau10\nmarkers: circle\nline_label: end\n")
	require.NoError(t, os.WriteFile(file, data, 0o644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, 400.0, cfg.Width)
	assert.Equal(t, 300.0, cfg.Height)
	assert.Equal(t, 60.0, cfg.Margin.Left)
	assert.Equal(t, 20.0, cfg.Margin.Top)
	assert.Equal(t, "tableau10", cfg.Palette)

	ch := cfg.Chart()
	assert.Equal(t, 60.0, ch.Padding.Left)
	assert.Equal(t, []string(pareto.Tableau10), ch.Fill.List)
	assert.NotNil(t, ch.Point)
	assert.Equal(t, pareto.TextAfter, ch.LineLabel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PARETO_WIDTH", "640")
	t.Setenv("PARETO_MARGIN_TOP", "5")
	t.Setenv("PARETO_LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, 5.0, cfg.Margin.Top)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pareto.json")
	cfg := NewConfig()
	cfg.Width = 1024
	cfg.Grid = true
	require.NoError(t, cfg.Save(file))

	other := NewConfig()
	require.NoError(t, other.LoadFromFile(file))
	assert.Equal(t, 1024.0, other.Width)
	assert.True(t, other.Grid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		update func(*Config)
		err    error
	}{
		{
			name:   "too narrow",
			update: func(c *Config) { c.Width = 80 },
			err:    ErrDimension,
		},
		{
			name:   "same columns",
			update: func(c *Config) { c.ValueColumn = c.NameColumn },
			err:    ErrColumn,
		},
		{
			name:   "negative ticks",
			update: func(c *Config) { c.Ticks = -1 },
		},
		{
			name:   "long delimiter",
			update: func(c *Config) { c.Delimiter = ";;" },
		},
		{
			name:   "unknown marker",
			update: func(c *Config) { c.Markers = "star" },
		},
		{
			name:   "unknown line label",
			update: func(c *Config) { c.LineLabel = "middle" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.update(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.err != nil {
				assert.Equal(t, tt.err, errors.Cause(err))
			}
		})
	}
}
