package config

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/midbel/pareto"
)

var (
	ErrDimension = errors.New("chart too small for its margins")
	ErrColumn    = errors.New("invalid column index")
)

type Margin struct {
	Top    float64 `mapstructure:"top"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
}

// Config holds the settings shared by the render and serve commands.
type Config struct {
	// chart
	Width      float64 `mapstructure:"width"`
	Height     float64 `mapstructure:"height"`
	Margin     Margin  `mapstructure:"margin"`
	Ticks      int     `mapstructure:"ticks"`
	Grid       bool    `mapstructure:"grid"`
	Palette    string  `mapstructure:"palette"`
	LineColor  string  `mapstructure:"line_color"`
	LineWidth  float64 `mapstructure:"line_width"`
	Markers    string  `mapstructure:"markers"`
	LineLabel  string  `mapstructure:"line_label"`
	ValueLabel string  `mapstructure:"value_label"`
	ShareLabel string  `mapstructure:"share_label"`

	// input
	Delimiter   string `mapstructure:"delimiter"`
	NameColumn  int    `mapstructure:"name_column"`
	ValueColumn int    `mapstructure:"value_column"`

	// output
	OutputDir string `mapstructure:"output_dir"`
	Addr      string `mapstructure:"addr"`
	LogLevel  string `mapstructure:"log_level"`
}

func NewConfig() *Config {
	return &Config{
		Width:  800,
		Height: 600,
		Margin: Margin{
			Top:    pareto.DefaultPadding.Top,
			Right:  pareto.DefaultPadding.Right,
			Bottom: pareto.DefaultPadding.Bottom,
			Left:   pareto.DefaultPadding.Left,
		},
		Ticks:       pareto.DefaultTicks,
		Palette:     pareto.DefaultFill,
		LineColor:   pareto.DefaultLineColor,
		LineWidth:   1.5,
		Markers:     "none",
		LineLabel:   "none",
		Delimiter:   ",",
		NameColumn:  0,
		ValueColumn: 1,
		OutputDir:   ".",
		Addr:        ":8080",
		LogLevel:    "info",
	}
}

// LoadConfig returns the defaults overridden by the file at path, if any, and
// by PARETO_* environment variables.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()
	if path != "" {
		return cfg, cfg.LoadFromFile(path)
	}
	return cfg, cfg.LoadFromEnv()
}

// LoadFromFile reads a yaml, json or toml file. Environment variables take
// precedence over the values of the file.
func (c *Config) LoadFromFile(path string) error {
	v := c.viper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	return errors.Wrapf(v.Unmarshal(c), "decoding config %s", path)
}

func (c *Config) LoadFromEnv() error {
	v := c.viper()
	return errors.Wrap(v.Unmarshal(c), "decoding environment")
}

func (c *Config) Save(path string) error {
	v := c.viper()
	return errors.Wrapf(v.WriteConfigAs(path), "writing config %s", path)
}

func (c *Config) Validate() error {
	if c.Width-c.Margin.Left-c.Margin.Right <= 0 || c.Height-c.Margin.Top-c.Margin.Bottom <= 0 {
		return errors.Wrapf(ErrDimension, "%gx%g", c.Width, c.Height)
	}
	if c.Ticks < 0 {
		return errors.Errorf("ticks: negative count %d", c.Ticks)
	}
	if c.NameColumn < 0 || c.ValueColumn < 0 || c.NameColumn == c.ValueColumn {
		return errors.Wrapf(ErrColumn, "name %d, value %d", c.NameColumn, c.ValueColumn)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return errors.Errorf("delimiter: %q should be a single character", c.Delimiter)
	}
	if _, ok := pareto.PointByName(c.Markers); !ok {
		return errors.Errorf("markers: %s unknown", c.Markers)
	}
	if _, ok := pareto.TextPositionByName(c.LineLabel); !ok {
		return errors.Errorf("line label: %s unknown", c.LineLabel)
	}
	return nil
}

// Chart builds the chart settings described by c.
func (c *Config) Chart() pareto.Chart {
	ch := pareto.DefaultChart()
	ch.Padding = pareto.Padding{
		Top:    c.Margin.Top,
		Right:  c.Margin.Right,
		Bottom: c.Margin.Bottom,
		Left:   c.Margin.Left,
	}
	ch.Ticks = c.Ticks
	ch.Grid = c.Grid
	ch.Fill.List = pareto.PaletteByName(c.Palette)
	if c.LineColor != "" {
		ch.Line.Color = c.LineColor
	}
	if c.LineWidth > 0 {
		ch.Line.Width = c.LineWidth
	}
	ch.Point, _ = pareto.PointByName(c.Markers)
	ch.LineLabel, _ = pareto.TextPositionByName(c.LineLabel)
	ch.ValueLabel = c.ValueLabel
	ch.ShareLabel = c.ShareLabel
	return ch
}

// Delim returns the first character of the delimiter.
func (c *Config) Delim() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

func (c *Config) viper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("PARETO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("width", c.Width)
	v.SetDefault("height", c.Height)
	v.SetDefault("margin.top", c.Margin.Top)
	v.SetDefault("margin.right", c.Margin.Right)
	v.SetDefault("margin.bottom", c.Margin.Bottom)
	v.SetDefault("margin.left", c.Margin.Left)
	v.SetDefault("ticks", c.Ticks)
	v.SetDefault("grid", c.Grid)
	v.SetDefault("palette", c.Palette)
	v.SetDefault("line_color", c.LineColor)
	v.SetDefault("line_width", c.LineWidth)
	v.SetDefault("markers", c.Markers)
	v.SetDefault("line_label", c.LineLabel)
	v.SetDefault("value_label", c.ValueLabel)
	v.SetDefault("share_label", c.ShareLabel)
	v.SetDefault("delimiter", c.Delimiter)
	v.SetDefault("name_column", c.NameColumn)
	v.SetDefault("value_column", c.ValueColumn)
	v.SetDefault("output_dir", c.OutputDir)
	v.SetDefault("addr", c.Addr)
	v.SetDefault("log_level", c.LogLevel)
	return v
}
