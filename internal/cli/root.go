package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rileyhilliard/toast/internal/config"
	"github.com/rileyhilliard/toast/internal/errors"
	"github.com/rileyhilliard/toast/internal/logger"
	"github.com/rileyhilliard/toast/internal/thermal"
	"github.com/rileyhilliard/toast/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// newSource creates the platform signal source. Tests swap it for a fake.
var newSource = thermal.NewNotifySource

// rootOptions holds the flag state for one command tree.
type rootOptions struct {
	v          *viper.Viper
	configFile string
}

// newRootCmd builds the full command tree with a fresh viper instance.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: config.NewViper()}

	cmd := &cobra.Command{
		Use:   "toast",
		Short: "Check whether your Mac is thermally throttled",
		Long: `Read the macOS thermal pressure level.

By default toast reads the level once, prints it and exits:
  0  nominal, not throttled
  1  throttled (any level above Nominal)
  2  the level could not be read

With --watch it keeps checking every 5 seconds and prints a line whenever
the level changes. Add --bar for a rolling chart of recent levels.

Examples:
  toast
  toast --format json
  toast --watch
  toast --watch --bar`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.resolve()
			if err != nil {
				return err
			}
			if settings.NoColor {
				ui.DisableColors()
			}
			log := logger.NewWriterLogger("", cmd.ErrOrStderr(), settings.EffectiveLogLevel())
			log.Debug("settings: %+v", *settings)

			if !settings.Watch {
				return runOneShot(cmd.OutOrStdout(), newSource(), settings.Format, log)
			}
			return runWatch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), newSource(), settings.Bar, log)
		},
	}

	flags := cmd.Flags()
	flags.BoolP("watch", "w", false, "continuously monitor thermal pressure")
	flags.BoolP("bar", "b", false, "show a bar chart of recent levels (requires --watch)")
	flags.String("format", config.FormatText, "one-shot output format: text, json or yaml")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.configFile, "config", "", "config file (default ~/.config/toast/config.yaml)")
	persistent.Bool("no-color", false, "disable colored output")
	persistent.BoolP("verbose", "v", false, "enable debug logging")

	bindFlag(opts.v, config.KeyWatch, flags.Lookup("watch"))
	bindFlag(opts.v, config.KeyBar, flags.Lookup("bar"))
	bindFlag(opts.v, config.KeyFormat, flags.Lookup("format"))
	bindFlag(opts.v, config.KeyNoColor, persistent.Lookup("no-color"))
	bindFlag(opts.v, config.KeyVerbose, persistent.Lookup("verbose"))

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// resolve merges flags, environment and the config file into validated
// settings.
func (o *rootOptions) resolve() (*config.Settings, error) {
	path, err := config.Find(o.configFile)
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(o.v, path)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// bindFlag ties a settings key to a flag registered on the root command.
// A nil flag means the lookup name is misspelled.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag for %q: %v", key, err))
	}
}

// Execute runs the CLI and exits with the resulting code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with args and returns the process exit
// code. SIGINT and SIGTERM cancel the command's context.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		if _, ok := errors.GetExitCode(err); !ok {
			printError(stderr, err)
		}
	}
	return errors.ExitCode(err)
}

// printError writes err to w. Structured errors carry their own layout;
// cobra usage errors get a pointer to --help.
func printError(w io.Writer, err error) {
	var toastErr *errors.Error
	if errors.As(err, &toastErr) {
		fmt.Fprint(w, toastErr.Error())
		return
	}

	fmt.Fprintf(w, "%s %s\n", ui.ErrorSymbol(), err)
	if isUnknownCommandError(err) {
		if name := extractUnknownCommand(err); name != "" {
			fmt.Fprintf(w, "\n  %s\n", ui.Hint(fmt.Sprintf("toast has no '%s' command.", name)))
		}
		fmt.Fprintf(w, "\n  %s\n", ui.Hint("Run 'toast --help' for usage."))
	}
}

// isUnknownCommandError reports whether err is cobra's complaint about an
// unknown subcommand or flag.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "toast"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
