package config

// This file loads configuration from an optional YAML file, CYRLAT_*
// environment variables and command-line flags, in increasing priority.
// Flags are registered on the caller's pflag set (cobra owns parsing);
// Load binds them into viper so unchanged flags never mask file or env
// values.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CYRLAT_DRY_RUN.
const EnvPrefix = "CYRLAT"

// flagKeys maps flag names to viper keys.
var flagKeys = map[string]string{
	"layout":   "layout",
	"ext":      "extensions",
	"dry-run":  "dry_run",
	"verbose":  "verbose",
	"color":    "color",
	"log":      "log_file",
	"debounce": "watch_debounce",
}

// RegisterFlags defines the shared flags on fs. Defaults shown in help
// come from [DefaultConfig]; the effective defaults are applied in [Load].
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String("config", "", "Config file (default: ./cyrlat.yaml if present)")
	fs.String("layout", string(d.Layout), "Album discovery: recursive | hierarchy")
	fs.StringSlice("ext", d.Extensions, "File extensions to rename inside albums")
	fs.BoolP("dry-run", "d", false, "Preview only; do not rename anything")
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.String("color", string(d.ColorMode), "Colored logs: auto | always | never")
	fs.Bool("no-color", false, "Same as --color=never")
	fs.StringP("log", "l", "", "Append logs to file")
	fs.Duration("debounce", d.WatchDebounce, "Watch mode: quiet period before a rescan")
}

// Load builds the effective Config from defaults, the config file, the
// environment and fs (already parsed). args are the positional arguments;
// the first one, if any, overrides the library root. The result is
// validated.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, fs); err != nil {
		return Config{}, err
	}

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if noColor, err := fs.GetBool("no-color"); err == nil && noColor {
		cfg.ColorMode = ColorNever
	}
	if len(args) > 1 {
		return Config{}, errors.New("expected at most one library root")
	}
	if len(args) == 1 {
		cfg.Root = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("root", d.Root)
	v.SetDefault("layout", string(d.Layout))
	v.SetDefault("extensions", d.Extensions)
	v.SetDefault("dry_run", d.DryRun)
	v.SetDefault("watch_debounce", d.WatchDebounce)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("color", string(d.ColorMode))
	v.SetDefault("log_file", d.LogFile)
}

// readConfigFile reads --config when given (a missing file is an error),
// otherwise ./cyrlat.yaml when it exists.
func readConfigFile(v *viper.Viper, fs *pflag.FlagSet) error {
	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("cyrlat")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
