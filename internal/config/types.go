package config

import "time"

// Poll cadence. Watch mode reads once per CheckInterval ticks of
// TickDuration, showing a countdown on each tick.
const (
	CheckInterval = 5
	TickDuration  = time.Second
)

// Output formats for the one-shot query.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Settings is the resolved configuration for one toast invocation.
// Values come from flags, TOAST_* environment variables and the optional
// config file, in that order of precedence.
type Settings struct {
	// Watch keeps polling instead of reading once.
	Watch bool `yaml:"watch" mapstructure:"watch"`

	// Bar draws the history chart in watch mode.
	Bar bool `yaml:"bar" mapstructure:"bar"`

	// Format is the one-shot output format: text, json or yaml.
	Format string `yaml:"format" mapstructure:"format"`

	// NoColor disables colour output. NO_COLOR also sets it.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() *Settings {
	return &Settings{
		Format:   FormatText,
		LogLevel: "warn",
	}
}

// EffectiveLogLevel returns the level the logger should run at.
// --verbose always means debug.
func (s *Settings) EffectiveLogLevel() string {
	if s.Verbose {
		return "debug"
	}
	if s.LogLevel == "" {
		return "warn"
	}
	return s.LogLevel
}
