package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cyrlat v"+version)
}

func TestRootCommand_RenamesLibrary(t *testing.T) {
	root := t.TempDir()
	album := filepath.Join(root, "Рок", "2001 - Тень")
	require.NoError(t, os.MkdirAll(album, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(album, "01 - Звезда.mp3"), []byte("x"), 0o644))

	out, err := execute(t, "--color=never", root)
	require.NoError(t, err)
	assert.Contains(t, out, "[ALBUM] 2001 - Тень -> 2001 - Ten’ (Тень)")
	assert.FileExists(t, filepath.Join(root, "Рок", "2001 - Ten’ (Тень)", "01 - Zvezda (Звезда).mp3"))
}

func TestCheckCommand_MissingRoot(t *testing.T) {
	out, err := execute(t, "check", "--color=never", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "library root not found")
}

func TestRootCommand_TooManyArgs(t *testing.T) {
	_, err := execute(t, "a", "b")
	assert.Error(t, err)
}
