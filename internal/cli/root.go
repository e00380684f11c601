package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/idilsaglam/demo/internal/config"
	"github.com/idilsaglam/demo/internal/model"
	"github.com/idilsaglam/demo/internal/tui"
	"github.com/idilsaglam/demo/internal/ui"
)

var termCheck = term.IsTerminal

const longHelp = `demo - a counter, a todo list and a theme switch.

Run without a subcommand for the interactive screen. Todos and the theme
are kept in a small JSON key-value file; the counter lives only as long
as the session.`

const exampleUsage = `  demo
  demo add "Buy milk"
  demo ls --group
  demo done 1
  demo rm 2
  demo theme dark
  demo reset`

// usageError marks mistakes in how a command was called (exit code 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

type rootOptions struct {
	cfgPath string
	cfg     config.Config
	app     *app
}

// usageArgs turns a positional-argument check into a usage error.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError{msg: err.Error()}
		}
		return nil
	}
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.DefaultConfig()}

	cmd := &cobra.Command{
		Use:           "demo",
		Short:         "Counter, persisted todos and a light/dark theme",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.app != nil {
				opts.app.close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if isTerminal(out) {
				return tui.Run(opts.app.store, opts.app.log)
			}
			st := opts.app.store.State()
			fmt.Fprintln(out, ui.Render(st, ui.Options{Cursor: -1}))
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	f := cmd.PersistentFlags()
	f.StringVar(&opts.cfgPath, "config", "", "config file (default ~/.demo/config.toml)")
	f.StringVar(&opts.cfg.DataFile, "data", opts.cfg.DataFile, "storage file")
	f.StringVar(&opts.cfg.DefaultTheme, "theme", opts.cfg.DefaultTheme, "theme to use when none is stored (light|dark)")
	f.StringVar(&opts.cfg.LogFile, "log-file", "", "append logs to this file")
	f.StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "log level (trace|debug|info|warn|error)")
	f.BoolVar(&opts.cfg.LogHuman, "log-human", false, "human-readable log lines")
	f.BoolVar(&opts.cfg.Ephemeral, "ephemeral", false, "keep storage in memory only")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newDoneCmd(opts))
	cmd.AddCommand(newRemoveCmd(opts))
	cmd.AddCommand(newThemeCmd(opts))
	cmd.AddCommand(newResetCmd(opts))

	return cmd
}

// resolve layers defaults, the config file, DEMO_* variables and flags,
// then opens storage.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := o.cfgPath
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}
	if cfgFile != "" && config.FileExists(cfgFile) {
		fc, err := config.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		config.ApplyFileConfig(&o.cfg, fc, changed)
	} else if o.cfgPath != "" {
		return fmt.Errorf("load config: %s does not exist", o.cfgPath)
	}

	config.ApplyEnvConfig(&o.cfg, changed)

	if err := o.cfg.Validate(); err != nil {
		return err
	}

	a, err := openApp(o.cfg)
	if err != nil {
		return err
	}
	o.app = a
	a.log.WithFields(map[string]any{
		"command":   cmd.Name(),
		"data":      o.cfg.DataFile,
		"ephemeral": o.cfg.Ephemeral,
	}).Debug("configuration resolved")
	return nil
}

// palette picks status-line colors from the stored theme.
func (o *rootOptions) palette() ui.Palette {
	if o.app == nil {
		return ui.PaletteFor(model.ThemeLight)
	}
	return ui.PaletteFor(o.app.store.State().Theme)
}

// Run executes the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	p := ui.PaletteFor(model.ThemeLight)
	ui.Fail(stderr, p, err.Error())

	var ue usageError
	if errors.As(err, &ue) {
		ui.Hint(stderr, p, "Run `demo --help` for usage.")
		return 2
	}
	return 1
}
