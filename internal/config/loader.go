package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/toast/internal/errors"
	"github.com/rileyhilliard/toast/internal/logger"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every setting's environment variable.
	EnvPrefix = "TOAST"
	// GlobalConfigDir is the directory for the optional config file.
	GlobalConfigDir = ".config/toast"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yaml"

	// NoColorEnvVar is the cross-tool convention for disabling colour.
	NoColorEnvVar = "NO_COLOR"
)

// Setting keys. Flag names use dashes, keys use underscores.
const (
	KeyWatch    = "watch"
	KeyBar      = "bar"
	KeyFormat   = "format"
	KeyNoColor  = "no_color"
	KeyVerbose  = "verbose"
	KeyLogLevel = "log_level"
)

// NewViper returns a viper instance with defaults and TOAST_* environment
// bindings in place. Callers bind flags on top of it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyWatch, d.Watch)
	v.SetDefault(KeyBar, d.Bar)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// Find locates the config file:
// 1. Explicit path (from --config flag)
// 2. ~/.config/toast/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", nil
	}
	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	if _, err := os.Stat(global); err == nil {
		return global, nil
	}
	return "", nil
}

// Load reads the config file at path (if any) into v and resolves the
// final Settings. An empty path skips the file.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML: "+path)
		}
	}

	s := Defaults()
	if err := v.Unmarshal(s); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the setting types in "+describe(path))
	}

	// NO_COLOR disables colour whatever its value, as long as it is set.
	if os.Getenv(NoColorEnvVar) != "" {
		s.NoColor = true
	}
	if lvl, ok := logger.LevelFromEnv(); ok {
		s.LogLevel = lvl
	}
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))

	return s, nil
}

func describe(path string) string {
	if path == "" {
		return "your TOAST_* environment variables"
	}
	return path
}
