// Package cli provides the command-line interface for ignite.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joaopnk/ignite-timer/internal/config"
	"github.com/joaopnk/ignite-timer/internal/cycle"
	"github.com/joaopnk/ignite-timer/internal/session"
	"github.com/joaopnk/ignite-timer/internal/tui"
	"github.com/joaopnk/ignite-timer/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the TUI is launched without a terminal on stdout.
var ErrNotTerminal = errors.New("ignite needs an interactive terminal")

// launchTUIFunc is a function variable so tests can replace the TUI launch.
var launchTUIFunc = launchTUI

type rootOptions struct {
	configPath string
	logLevel   string
	minutes    int
}

// NewRootCommand creates the root command. Running it without a subcommand
// starts the timer UI.
func NewRootCommand(version string) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Focus timer for your projects",
		Long: `ignite counts down focused work cycles of 5 to 60 minutes.
Start a cycle by naming a task and a duration; interrupt it at any time.
The history of this run can be exported as a PDF report with ctrl+r.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return launchTUIFunc(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/ignite/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.IntVar(&opts.minutes, "minutes", 0, "default cycle duration in minutes")

	root.AddCommand(newConfigCommand(&opts))
	return root
}

func newConfigCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			data, err := cfg.EncodeTOML()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// loadConfig reads the config file and applies flag overrides. Only an
// explicitly named file must exist.
func loadConfig(opts rootOptions) (*config.Config, error) {
	path := opts.configPath
	allowMissing := path == ""
	if allowMissing {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, allowMissing)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.minutes != 0 {
		cfg.Timer.DefaultMinutes = opts.minutes
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func launchTUI(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	logPath := cfg.Log.File
	if logPath == "" {
		logPath = filepath.Join(util.UserDirs(config.AppName).Data(), config.LogFileName)
	}
	logger, closer, err := util.NewLogger(logPath, util.ParseLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	store := cycle.NewStore(cycle.WithLogger(logger))
	sess := session.New(store, session.WithLogger(logger))
	defer sess.Close()

	logger.Info("starting", "theme", cfg.UI.Theme, "default_minutes", cfg.Timer.DefaultMinutes)
	model := tui.NewMainModel(sess, cfg, tui.WithLogger(logger))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("exiting", "cycles", store.Len())
	return nil
}
