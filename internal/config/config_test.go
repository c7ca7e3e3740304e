package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/codearea/hexview"
	"github.com/iw2rmb/codearea/layout"
	"github.com/iw2rmb/codearea/scroll"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codearea.yaml")
	content := `
layout:
  view_mode: preview
  code_type: oct
  wrap: true
  max_bytes_per_row: 0
scroll:
  vertical_unit: row
  policy: follow-caret
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	require.Equal(t, "preview", cfg.Layout.ViewMode)
	require.Equal(t, "oct", cfg.Layout.CodeType)
	require.True(t, cfg.Layout.Wrap)
	require.Equal(t, 0, cfg.Layout.MaxBytesPerRow)
	require.Equal(t, 4, cfg.Layout.GroupSize, "unset keys keep defaults")
	require.Equal(t, "row", cfg.Scroll.VerticalUnit)
	require.Equal(t, "pixel", cfg.Scroll.HorizontalUnit)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codearea.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  code_type: dec\n"), 0o600))
	t.Setenv("CODEAREA_LAYOUT_CODE_TYPE", "bin")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "bin", cfg.Layout.CodeType)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codearea.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  view_mode: sideways\n"), 0o600))

	_, err := Load(nil, path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "layout.view_mode")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Layout.CodeType = "base64"
	cfg.Layout.MaxBytesPerRow = 0
	cfg.Scroll.HorizontalBar = "sometimes"

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "layout.code_type")
	require.Contains(t, err.Error(), "max_bytes_per_row must be set")
	require.Contains(t, err.Error(), "scroll.horizontal_bar")
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "CODEAREA_")

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestSave_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	want := Defaults()
	want.Layout.ViewMode = "code"
	want.Scroll.VerticalBar = "always"
	want.Debug = true
	require.NoError(t, Save(path, want))

	got, err := Load(nil, path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestHexview_ConvertsEnums(t *testing.T) {
	cfg := Defaults()
	cfg.Layout.ViewMode = "code"
	cfg.Layout.CodeType = "bin"
	cfg.Layout.Wrap = true
	cfg.Scroll.HorizontalUnit = "character"
	cfg.Scroll.VerticalBar = "never"
	cfg.Scroll.Policy = "follow-caret"

	hv, err := cfg.Hexview(4096)
	require.NoError(t, err)
	require.Equal(t, int64(4096), hv.DataSize)
	require.Equal(t, layout.ViewCodeMatrix, hv.ViewMode)
	require.Equal(t, layout.CodeBinary, hv.CodeType)
	require.Equal(t, layout.WrappingOn, hv.RowWrapping)
	require.Equal(t, 16, hv.MaxBytesPerRow)
	require.Equal(t, 4, hv.WrappingBytesGroupSize)
	require.Equal(t, scroll.VerticalUnitPixel, hv.Scroll.VerticalUnit)
	require.Equal(t, scroll.HorizontalUnitCharacter, hv.Scroll.HorizontalUnit)
	require.Equal(t, scroll.BarNever, hv.Scroll.VerticalBarVisibility)
	require.Equal(t, hexview.ScrollFollowCaretOnly, hv.ScrollPolicy)
	require.NotEmpty(t, hv.KeyMap.Left.Keys())
}

func TestParse_AcceptsAliases(t *testing.T) {
	v, err := ParseViewMode(" Text_Preview ")
	require.NoError(t, err)
	require.Equal(t, layout.ViewTextPreview, v)

	c, err := ParseCodeType("Hexadecimal")
	require.NoError(t, err)
	require.Equal(t, layout.CodeHexadecimal, c)

	u, err := ParseHorizontalUnit("char")
	require.NoError(t, err)
	require.Equal(t, scroll.HorizontalUnitCharacter, u)
}
