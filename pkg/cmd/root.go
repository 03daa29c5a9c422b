package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"

	"github.com/jeannemas/tsql-formatter/pkg/config"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the tsqlfmt CLI application with the fx lifecycle. The
// application runs once the fx app starts and shuts the app down with a
// non-zero exit code when the command fails.
//
// Global Flags:
//   - --config, -c: Configuration file (defaults to the discovered .tsqlfmt.* file)
//   - --env-file: Dotenv file loaded before TSQLFMT_* variables are applied
//   - --verbose, -v: Log at debug level, including nodes kept as source text
//   - --indent, --identifier-style, --keyword-case,
//     --lines-between-statements, --operator-spacing: per-option overrides
//
// The effective configuration is resolved in the root Before hook and stored in
// the *config.Config shared with every subcommand. Precedence, lowest first:
// defaults, configuration file, environment, flags.
//
// Example usage:
//
//	tsqlfmt fmt query.sql
//	tsqlfmt --keyword-case lower fmt -w db/
//	tsqlfmt --config ci/.tsqlfmt.toml fmt --check .
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Config, p.Commands)
	app.Version = p.Version.Version

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(cfg *config.Config, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "tsqlfmt",
		Usage: "A formatter for SQL Server (T-SQL) scripts",
		Description: `tsqlfmt rewrites T-SQL scripts into a canonical layout. SELECT statements
are fully laid out; any other statement is kept as written.

Settings are read from a .tsqlfmt.yaml, .tsqlfmt.yml or .tsqlfmt.toml file
found in the working directory or one of its parents, then from TSQLFMT_*
environment variables, then from the flags below.`,
		Flags:    globalFlags(),
		Before:   resolveConfig(cfg),
		Commands: commands,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "the configuration file",
			DefaultText: "discovered .tsqlfmt.* file",
			Sources:     cli.EnvVars("TSQLFMT_CONFIG"),
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "a dotenv file to load TSQLFMT_* variables from",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log debug information to stderr",
		},
		&cli.StringFlag{
			Name:  "indent",
			Usage: `the indentation unit, e.g. "    "`,
		},
		&cli.StringFlag{
			Name:  "identifier-style",
			Usage: "one of square-brackets, double-quotes or none",
		},
		&cli.StringFlag{
			Name:  "keyword-case",
			Usage: "either upper or lower",
		},
		&cli.IntFlag{
			Name:  "lines-between-statements",
			Usage: "the number of blank lines between statements",
		},
		&cli.StringFlag{
			Name:  "operator-spacing",
			Usage: "either space-around or dense",
		},
	}
}

// resolveConfig returns the root Before hook. It configures logging, reloads
// the configuration when --config or --env-file is given, applies the flag
// overrides and validates the result, updating cfg in place.
func resolveConfig(cfg *config.Config) func(context.Context, *cli.Command) (context.Context, error) {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		level := slog.LevelInfo
		if cmd.Bool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(errWriter(cmd), &slog.HandlerOptions{Level: level})))

		if path, envFile := cmd.String("config"), cmd.String("env-file"); path != "" || envFile != "" {
			loaded, err := config.Load(config.LoadOptions{Path: path, Dir: ".", EnvFile: envFile})
			if err != nil {
				return ctx, err
			}
			*cfg = *loaded
		}

		if cmd.IsSet("indent") {
			cfg.Indent = cmd.String("indent")
		}
		if cmd.IsSet("identifier-style") {
			cfg.IdentifierStyle = cmd.String("identifier-style")
		}
		if cmd.IsSet("keyword-case") {
			cfg.KeywordCase = cmd.String("keyword-case")
		}
		if cmd.IsSet("lines-between-statements") {
			lines := int(cmd.Int("lines-between-statements"))
			cfg.LinesBetweenStatements = &lines
		}
		if cmd.IsSet("operator-spacing") {
			cfg.OperatorSpacing = cmd.String("operator-spacing")
		}

		if _, err := cfg.Options(); err != nil {
			return ctx, errors.Wrap(err, "invalid configuration")
		}

		slog.Debug("Resolved configuration", "path", cfg.Path)
		return ctx, nil
	}
}
