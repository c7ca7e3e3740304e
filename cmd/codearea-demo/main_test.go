package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_InitWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codearea.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init", path})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), path)
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestRootCmd_RejectsInvalidFlagValue(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--view", "sideways"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "layout.view_mode")
}

func TestRootCmd_MissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.bin")})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading")
}
