package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/music/library", "/music/library"},
		{"single trailing slash", "/music/library/", "/music/library"},
		{"multiple trailing slashes", "/music/library///", "/music/library"},
		{"root path", "/", "/"},
		{"relative path", "music", "music"},
		{"relative with slash", "music/", "music"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeExtensions(t *testing.T) {
	got := NormalizeExtensions([]string{"MP3", ".Flac", " ", ".mp3", "jpg", "."})
	assert.Equal(t, []string{".mp3", ".flac", ".jpg"}, got)
}

func TestValidate_Layout(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"recursive is valid", LayoutRecursive, false},
		{"hierarchy is valid", LayoutHierarchy, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "flat", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Layout = tt.layout
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	for _, mode := range []ColorMode{ColorAuto, ColorAlways, ColorNever} {
		cfg := DefaultConfig()
		cfg.ColorMode = mode
		assert.NoError(t, cfg.Validate(), mode)
	}
	cfg := DefaultConfig()
	cfg.ColorMode = "rainbow"
	assert.Error(t, cfg.Validate())
}

func TestValidate_RequiresExtensionsAndRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{" ", ""}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Root = "  "
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.WatchDebounce = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Root = "/music/"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "/music", cfg.Root)
}

func TestHasExtension(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.True(t, cfg.HasExtension("/a/01 - Тень.mp3"))
	assert.True(t, cfg.HasExtension("/a/Cover.JPG"))
	assert.True(t, cfg.HasExtension("folder.jpeg"))
	assert.False(t, cfg.HasExtension("/a/01 - Тень.flac"))
	assert.False(t, cfg.HasExtension("/a/notes.txt"))
	assert.False(t, cfg.HasExtension("/a/noext"))
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, LayoutRecursive, cfg.Layout)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.Equal(t, []string{".mp3", ".jpg", ".jpeg", ".png"}, cfg.Extensions)
	assert.Equal(t, 2*time.Second, cfg.WatchDebounce)
	assert.False(t, cfg.DryRun)

	cfg.Extensions[0] = ".wav"
	assert.Equal(t, ".mp3", DefaultExtensions[0], "DefaultConfig must copy the extension list")
}

// parseFlags registers and parses the shared flags the way cobra would.
func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("cyrlat", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// inTempDir switches the working directory so ./cyrlat.yaml lookups are isolated.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)
	fs := parseFlags(t)

	cfg, err := Load(fs, fs.Args())
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, LayoutRecursive, cfg.Layout)
	assert.Equal(t, []string{".mp3", ".jpg", ".jpeg", ".png"}, cfg.Extensions)
	assert.Equal(t, 2*time.Second, cfg.WatchDebounce)
}

func TestLoad_Flags(t *testing.T) {
	inTempDir(t)
	fs := parseFlags(t,
		"--layout", "hierarchy", "--ext", "flac,MP3", "-d", "-v",
		"--no-color", "--log", "/tmp/cyrlat.log", "--debounce", "500ms", "/music/")

	cfg, err := Load(fs, fs.Args())
	require.NoError(t, err)
	assert.Equal(t, "/music", cfg.Root)
	assert.Equal(t, LayoutHierarchy, cfg.Layout)
	assert.Equal(t, []string{".flac", ".mp3"}, cfg.Extensions)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, "/tmp/cyrlat.log", cfg.LogFile)
	assert.Equal(t, 500*time.Millisecond, cfg.WatchDebounce)
}

func TestLoad_ConfigFileAndEnv(t *testing.T) {
	dir := inTempDir(t)
	content := "root: /srv/music\nlayout: hierarchy\nextensions: [\".ogg\"]\nwatch_debounce: 5s\ncolor: always\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cyrlat.yaml"), []byte(content), 0o644))
	t.Setenv("CYRLAT_DRY_RUN", "true")

	fs := parseFlags(t)
	cfg, err := Load(fs, fs.Args())
	require.NoError(t, err)
	assert.Equal(t, "/srv/music", cfg.Root)
	assert.Equal(t, LayoutHierarchy, cfg.Layout)
	assert.Equal(t, []string{".ogg"}, cfg.Extensions)
	assert.Equal(t, 5*time.Second, cfg.WatchDebounce)
	assert.Equal(t, ColorAlways, cfg.ColorMode)
	assert.True(t, cfg.DryRun)
}

func TestLoad_FlagBeatsFileBeatsDefault(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: hierarchy\nverbose: true\n"), 0o644))

	fs := parseFlags(t, "--config", path, "--layout", "recursive")
	cfg, err := Load(fs, fs.Args())
	require.NoError(t, err)
	assert.Equal(t, LayoutRecursive, cfg.Layout)
	assert.True(t, cfg.Verbose)
}

func TestLoad_Errors(t *testing.T) {
	inTempDir(t)

	fs := parseFlags(t, "--config", "/nonexistent/cyrlat.yaml")
	_, err := Load(fs, fs.Args())
	assert.Error(t, err, "explicit missing config file")

	fs = parseFlags(t, "--layout", "flat")
	_, err = Load(fs, fs.Args())
	assert.Error(t, err, "invalid layout")

	fs = parseFlags(t, "a", "b")
	_, err = Load(fs, fs.Args())
	assert.Error(t, err, "two roots")
}
