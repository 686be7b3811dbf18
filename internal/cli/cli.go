// Package cli provides the command-line interface for lazyopencode.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/klauern/lazyopencode/internal/config"
	"github.com/klauern/lazyopencode/internal/discovery"
	"github.com/klauern/lazyopencode/internal/logging"
	"github.com/klauern/lazyopencode/internal/ui"
)

var (
	// Version is the current version of the application.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	app := &cli.Command{
		Name:    "lazyopencode",
		Usage:   "Browse opencode customizations across global and project scopes",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "Project directory to scan (defaults to the working directory)",
			},
			&cli.StringFlag{
				Name:  "home",
				Usage: "Home directory the global config root is derived from",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a lazyopencode config file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := configureLogging(cmd); err != nil {
				return ctx, err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return ctx, err
			}
			configureColors(cmd, cfg)
			return withConfig(ctx, cfg), nil
		},
		Commands: []*cli.Command{
			listCommand(),
			diagnosticsCommand(),
			browseCommand(),
			configCommand(),
			versionCommand(),
		},
		DefaultCommand: "browse",
	}
	return app.Run(ctx, args)
}

// configKey stores the loaded configuration on the context.
type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// loadConfig loads the config file, letting the --config, --project, and
// --home flags win over file and environment.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := cmd.String("config"); path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if project := cmd.String("project"); project != "" {
		cfg.Roots.Project = project
	}
	if home := cmd.String("home"); home != "" {
		cfg.Roots.Home = home
	}
	return cfg, nil
}

// newStore builds the discovery store for the resolved roots.
func newStore(cfg *config.Config) *discovery.Store {
	return discovery.NewStore(discovery.New(cfg.HomeDir(), cfg.ProjectDir()))
}

// configureColors sets up color output from flags and config.
func configureColors(cmd *cli.Command, cfg *config.Config) {
	if cmd.Bool("no-color") || cfg.Output.Color == "never" {
		ui.DisableColors()
	} else if cfg.Output.Color == "always" {
		ui.EnableColors()
	}
}

// configureLogging sets up the logging level based on CLI flags.
func configureLogging(cmd *cli.Command) error {
	opts := logging.DefaultOptions()

	if cmd.Bool("debug") {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	} else if cmd.Bool("verbose") {
		opts.Level = slog.LevelInfo
	}

	logger := logging.New(opts)
	logging.SetDefault(logger)

	logging.Debug("logging configured", slog.String("level", opts.Level.String()))

	return nil
}
