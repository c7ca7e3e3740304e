// Package config provides configuration types, defaults, loading and
// persistence for codearea hosts.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/iw2rmb/codearea/hexview"
	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

// EnvPrefix prefixes environment overrides, e.g. CODEAREA_LAYOUT_CODE_TYPE.
const EnvPrefix = "CODEAREA"

// Config holds all configuration options for a codearea host.
type Config struct {
	Layout  LayoutConfig `mapstructure:"layout" yaml:"layout"`
	Scroll  ScrollConfig `mapstructure:"scroll" yaml:"scroll"`
	Debug   bool         `mapstructure:"debug" yaml:"debug"`
	LogFile string       `mapstructure:"log_file" yaml:"log_file"`
}

// LayoutConfig holds grid geometry options.
type LayoutConfig struct {
	ViewMode       string `mapstructure:"view_mode" yaml:"view_mode"` // "dual", "code" or "preview"
	CodeType       string `mapstructure:"code_type" yaml:"code_type"` // "hex", "dec", "oct" or "bin"
	Wrap           bool   `mapstructure:"wrap" yaml:"wrap"`
	MaxBytesPerRow int    `mapstructure:"max_bytes_per_row" yaml:"max_bytes_per_row"`
	GroupSize      int    `mapstructure:"group_size" yaml:"group_size"`
}

// ScrollConfig holds scrolling options.
type ScrollConfig struct {
	VerticalUnit   string `mapstructure:"vertical_unit" yaml:"vertical_unit"`     // "pixel" or "row"
	HorizontalUnit string `mapstructure:"horizontal_unit" yaml:"horizontal_unit"` // "pixel" or "character"
	VerticalBar    string `mapstructure:"vertical_bar" yaml:"vertical_bar"`       // "if-needed", "never" or "always"
	HorizontalBar  string `mapstructure:"horizontal_bar" yaml:"horizontal_bar"`
	Policy         string `mapstructure:"policy" yaml:"policy"` // "allow-manual" or "follow-caret"
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Layout: LayoutConfig{
			ViewMode:       "dual",
			CodeType:       "hex",
			MaxBytesPerRow: 16,
			GroupSize:      4,
		},
		Scroll: ScrollConfig{
			VerticalUnit:   "pixel",
			HorizontalUnit: "pixel",
			VerticalBar:    "if-needed",
			HorizontalBar:  "if-needed",
			Policy:         "allow-manual",
		},
		LogFile: "codearea-debug.log",
	}
}

// SetDefaults registers every default with v so environment overrides and
// Unmarshal see all keys.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("layout.view_mode", d.Layout.ViewMode)
	v.SetDefault("layout.code_type", d.Layout.CodeType)
	v.SetDefault("layout.wrap", d.Layout.Wrap)
	v.SetDefault("layout.max_bytes_per_row", d.Layout.MaxBytesPerRow)
	v.SetDefault("layout.group_size", d.Layout.GroupSize)
	v.SetDefault("scroll.vertical_unit", d.Scroll.VerticalUnit)
	v.SetDefault("scroll.horizontal_unit", d.Scroll.HorizontalUnit)
	v.SetDefault("scroll.vertical_bar", d.Scroll.VerticalBar)
	v.SetDefault("scroll.horizontal_bar", d.Scroll.HorizontalBar)
	v.SetDefault("scroll.policy", d.Scroll.Policy)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
}

// Load reads configuration through v: defaults, then the file at path (yaml,
// toml or json by extension; skipped when path is empty), then CODEAREA_*
// environment variables and any flags already bound to v. A nil v uses a
// fresh viper instance.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "path", path)
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "Loaded config", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated option and numeric range.
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseViewMode(c.Layout.ViewMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseCodeType(c.Layout.CodeType); err != nil {
		errs = append(errs, err)
	}
	if c.Layout.MaxBytesPerRow < 0 {
		errs = append(errs, fmt.Errorf("layout.max_bytes_per_row must be >= 0, got %d", c.Layout.MaxBytesPerRow))
	}
	if !c.Layout.Wrap && c.Layout.MaxBytesPerRow == 0 {
		errs = append(errs, errors.New("layout.max_bytes_per_row must be set when wrapping is off"))
	}
	if c.Layout.GroupSize < 0 {
		errs = append(errs, fmt.Errorf("layout.group_size must be >= 0, got %d", c.Layout.GroupSize))
	}
	if _, err := ParseVerticalUnit(c.Scroll.VerticalUnit); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseHorizontalUnit(c.Scroll.HorizontalUnit); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseBarVisibility(c.Scroll.VerticalBar); err != nil {
		errs = append(errs, fmt.Errorf("scroll.vertical_bar: %w", err))
	}
	if _, err := ParseBarVisibility(c.Scroll.HorizontalBar); err != nil {
		errs = append(errs, fmt.Errorf("scroll.horizontal_bar: %w", err))
	}
	if _, err := ParseScrollPolicy(c.Scroll.Policy); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Hexview converts the configuration into a hexview.Config for a document
// of dataSize bytes.
func (c Config) Hexview(dataSize int64) (hexview.Config, error) {
	if err := c.Validate(); err != nil {
		return hexview.Config{}, err
	}
	out := hexview.DefaultConfig()
	out.DataSize = dataSize
	out.ViewMode, _ = ParseViewMode(c.Layout.ViewMode)
	out.CodeType, _ = ParseCodeType(c.Layout.CodeType)
	out.RowWrapping = layout.WrappingOff
	if c.Layout.Wrap {
		out.RowWrapping = layout.WrappingOn
	}
	out.MaxBytesPerRow = c.Layout.MaxBytesPerRow
	out.WrappingBytesGroupSize = c.Layout.GroupSize
	out.Scroll.VerticalUnit, _ = ParseVerticalUnit(c.Scroll.VerticalUnit)
	out.Scroll.HorizontalUnit, _ = ParseHorizontalUnit(c.Scroll.HorizontalUnit)
	out.Scroll.VerticalBarVisibility, _ = ParseBarVisibility(c.Scroll.VerticalBar)
	out.Scroll.HorizontalBarVisibility, _ = ParseBarVisibility(c.Scroll.HorizontalBar)
	out.ScrollPolicy, _ = ParseScrollPolicy(c.Scroll.Policy)
	return out, nil
}

func ParseViewMode(s string) (layout.ViewMode, error) {
	switch normalize(s) {
	case "dual":
		return layout.ViewDual, nil
	case "code", "code-matrix":
		return layout.ViewCodeMatrix, nil
	case "preview", "text-preview":
		return layout.ViewTextPreview, nil
	default:
		return 0, fmt.Errorf("layout.view_mode: unknown value %q (want dual, code or preview)", s)
	}
}

func ParseCodeType(s string) (layout.CodeType, error) {
	switch normalize(s) {
	case "hex", "hexadecimal":
		return layout.CodeHexadecimal, nil
	case "dec", "decimal":
		return layout.CodeDecimal, nil
	case "oct", "octal":
		return layout.CodeOctal, nil
	case "bin", "binary":
		return layout.CodeBinary, nil
	default:
		return 0, fmt.Errorf("layout.code_type: unknown value %q (want hex, dec, oct or bin)", s)
	}
}

func ParseVerticalUnit(s string) (scroll.VerticalUnit, error) {
	switch normalize(s) {
	case "pixel":
		return scroll.VerticalUnitPixel, nil
	case "row":
		return scroll.VerticalUnitRow, nil
	default:
		return 0, fmt.Errorf("scroll.vertical_unit: unknown value %q (want pixel or row)", s)
	}
}

func ParseHorizontalUnit(s string) (scroll.HorizontalUnit, error) {
	switch normalize(s) {
	case "pixel":
		return scroll.HorizontalUnitPixel, nil
	case "character", "char":
		return scroll.HorizontalUnitCharacter, nil
	default:
		return 0, fmt.Errorf("scroll.horizontal_unit: unknown value %q (want pixel or character)", s)
	}
}

func ParseBarVisibility(s string) (scroll.BarVisibility, error) {
	switch normalize(s) {
	case "if-needed", "":
		return scroll.BarIfNeeded, nil
	case "never":
		return scroll.BarNever, nil
	case "always":
		return scroll.BarAlways, nil
	default:
		return 0, fmt.Errorf("unknown scrollbar visibility %q (want if-needed, never or always)", s)
	}
}

func ParseScrollPolicy(s string) (hexview.ScrollPolicy, error) {
	switch normalize(s) {
	case "allow-manual", "":
		return hexview.ScrollAllowManual, nil
	case "follow-caret":
		return hexview.ScrollFollowCaretOnly, nil
	default:
		return 0, fmt.Errorf("scroll.policy: unknown value %q (want allow-manual or follow-caret)", s)
	}
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}
