package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rileyhilliard/toast/internal/config"
	"github.com/rileyhilliard/toast/internal/errors"
	"github.com/rileyhilliard/toast/internal/logger"
	"github.com/rileyhilliard/toast/internal/thermal"
	"github.com/rileyhilliard/toast/internal/ui"
	"gopkg.in/yaml.v3"
)

// Reading is the structured form of a one-shot result.
type Reading struct {
	Level       string `json:"level" yaml:"level"`
	Ordinal     uint64 `json:"ordinal" yaml:"ordinal"`
	Throttled   bool   `json:"throttled" yaml:"throttled"`
	Description string `json:"description" yaml:"description"`
	Raw         uint64 `json:"raw" yaml:"raw"`
}

// NewReading describes p for structured output.
func NewReading(p thermal.Pressure) Reading {
	return Reading{
		Level:       p.String(),
		Ordinal:     p.Level(),
		Throttled:   p.IsThrottled(),
		Description: p.Description(),
		Raw:         uint64(p),
	}
}

// runOneShot reads the level once and prints it. A throttled reading is
// reported as an ExitError carrying ExitThrottled.
func runOneShot(w io.Writer, src thermal.Source, format string, log logger.Logger) error {
	m, err := thermal.Open(src)
	if err != nil {
		return err
	}
	defer m.Close()

	p, err := m.Read()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrRead,
			"Cannot read thermal pressure",
			"The notification was registered but reading it failed. Try again.")
	}
	log.Debug("read %s (raw %d)", p, uint64(p))

	if err := writeReading(w, p, format); err != nil {
		return err
	}

	if p.IsThrottled() {
		return errors.NewExitError(errors.ExitThrottled)
	}
	return nil
}

func writeReading(w io.Writer, p thermal.Pressure, format string) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewReading(p)); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to write JSON output", "")
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewReading(p)); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to write YAML output", "")
		}
		if err := enc.Close(); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to write YAML output", "")
		}
	default:
		fmt.Fprintf(w, "Thermal pressure: %s\n", ui.ColoredLabel(p))
		fmt.Fprintln(w, p.Description())
	}
	return nil
}
