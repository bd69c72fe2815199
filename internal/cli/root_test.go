package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rileyhilliard/toast/internal/config"
	toasterrors "github.com/rileyhilliard/toast/internal/errors"
	thermaltest "github.com/rileyhilliard/toast/internal/thermal/testing"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  errors.New(`unknown command "foo" for "toast"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  errors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "unknown shorthand",
			err:  errors.New(`unknown shorthand flag: 'x' in -x`),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("registration failed"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  errors.New(`unknown command "foo" for "toast"`),
			want: "foo",
		},
		{
			name: "command with hyphen",
			err:  errors.New(`unknown command "my-cmd" for "toast"`),
			want: "my-cmd",
		},
		{
			name: "no quotes returns empty",
			err:  errors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  errors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	isolate(t)

	code, stdout, stderr := runCLI("frobnicate")

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)
	assert.Contains(t, stderr, "Run 'toast --help' for usage.")
}

func TestUnknownFlag(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI("--loud")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown flag: --loud")
}

func TestPrintErrorStructured(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, toasterrors.New(toasterrors.ErrConfig, "Bad setting", "Fix it"))

	assert.Equal(t, "✗ Bad setting\n\n  Fix it\n", buf.String())
}

func TestRootFlags(t *testing.T) {
	cmd := newRootCmd()

	tests := []struct {
		name      string
		shorthand string
		persist   bool
	}{
		{"watch", "w", false},
		{"bar", "b", false},
		{"format", "", false},
		{"config", "", true},
		{"no-color", "", true},
		{"verbose", "v", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := cmd.Flags()
			if tt.persist {
				flags = cmd.PersistentFlags()
			}
			flag := flags.Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestConfigFileSettings(t *testing.T) {
	isolate(t)
	useSource(t, thermaltest.NewFakeSource(0))

	path := writeConfig(t, "format: yaml\n")

	code, stdout, _ := runCLI("--config", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "level: Nominal")
}

func TestMissingConfigFile(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI("--config", "/nonexistent/toast.yaml")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Specified config file not found")
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolate(t)
	useSource(t, thermaltest.NewFakeSource(0))

	code, stdout, stderr := runCLI("--verbose")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Nominal")
	assert.Contains(t, stderr, "debug read Nominal (raw 0)")
}

func TestVersionSubcommand(t *testing.T) {
	isolate(t)
	orig := version
	version = "1.4.0"
	defer func() { version = orig }()

	code, stdout, _ := runCLI("version", "--short")

	assert.Equal(t, 0, code)
	assert.Equal(t, "1.4.0\n", stdout)
}

func TestBindFlag(t *testing.T) {
	cmd := newRootCmd()
	v := viper.New()

	assert.NotPanics(t, func() {
		bindFlag(v, config.KeyWatch, cmd.Flags().Lookup("watch"))
	})
	require.NoError(t, cmd.Flags().Set("watch", "true"))
	assert.True(t, v.GetBool(config.KeyWatch))

	assert.Panics(t, func() {
		bindFlag(v, config.KeyBar, cmd.Flags().Lookup("bars"))
	}, "a misspelled flag name must not bind silently")
}
