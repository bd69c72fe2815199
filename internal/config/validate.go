package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/toast/internal/errors"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// ValidLogLevels lists the accepted log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that the settings make sense together.
func (s *Settings) Validate() error {
	if !contains(ValidFormats, s.Format) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output format '%s'", s.Format),
			fmt.Sprintf("Use one of: %s.", strings.Join(ValidFormats, ", ")))
	}

	if !contains(ValidLogLevels, strings.ToLower(s.LogLevel)) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown log level '%s'", s.LogLevel),
			fmt.Sprintf("Use one of: %s.", strings.Join(ValidLogLevels, ", ")))
	}

	if s.Bar && !s.Watch {
		return errors.New(errors.ErrConfig,
			"--bar only works in watch mode",
			"Add --watch: toast --watch --bar")
	}

	if s.Watch && s.Format != FormatText {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Watch mode can't print %s", s.Format),
			"Drop --format, or run without --watch for a single structured reading.")
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
