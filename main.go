package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dojo/internal/commands"
	"github.com/colonyops/dojo/internal/core/config"
	"github.com/colonyops/dojo/internal/core/styles"
	"github.com/colonyops/dojo/internal/core/toast"
	"github.com/colonyops/dojo/internal/fitness"
	"github.com/colonyops/dojo/internal/printer"
	"github.com/colonyops/dojo/internal/tui"
	"github.com/colonyops/dojo/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, buildInfo() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() tui.BuildInfo {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}
	return tui.BuildInfo{Version: v, Commit: c, Date: d}
}

func build() string {
	b := buildInfo()
	return fmt.Sprintf("%s (%s) %s", b.Version, b.Commit, b.Date)
}

// isConfigValidate reports whether the invocation is `dojo config validate`,
// which must see the config even when it does not validate.
func isConfigValidate(c *cli.Command) bool {
	args := c.Args().Slice()
	return len(args) >= 2 && args[0] == "config" && args[1] == "validate"
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "dojo",
		Usage:     "Track workouts, food and weight from the terminal",
		UsageText: "dojo [global options] command [command options]",
		Description: `Dojo is a fitness journal with a dashboard, food and weight logs,
workout tracking, achievements and a trainer chat.

Run 'dojo' with no arguments to open the interactive dashboard.
Run 'dojo log calories' to add a food entry from the command line.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DOJO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/dojo.log)",
				Sources:     cli.EnvVars("DOJO_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DOJO_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("DOJO_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file so the TUI owns the terminal.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "dojo.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Read(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if !isConfigValidate(c) {
				if err := cfg.Validate(); err != nil {
					return ctx, fmt.Errorf("load config: invalid config: %w", err)
				}
			}
			flags.Config = cfg

			if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
				styles.SetTheme(palette)
			}

			now := time.Now()
			flags.Journal = fitness.NewJournal(fitness.SampleData(now, fitness.Profile(cfg.Profile)), time.Now)
			flags.Toaster = toast.New(cfg.ToastOptions())

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("theme", cfg.TUI.Theme).
				Int("toast_limit", cfg.Toasts.Limit).
				Msg("dojo ready")

			return printer.NewContext(ctx, printer.New(os.Stderr)), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if flags.Toaster != nil {
				flags.Toaster.Store().Close()
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, buildInfo())

	app = commands.NewSummaryCmd(flags).Register(app)
	app = commands.NewLogCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'dojo --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Println()
			fmt.Println(msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
