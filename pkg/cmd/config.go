package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/jeannemas/tsql-formatter/pkg/config"
)

// configCmd creates a command that prints the effective configuration, after
// the configuration file, TSQLFMT_* variables and global flags were applied.
// The output is a valid configuration file in the selected format.
//
// Example usage:
//
//	# Print the effective settings as YAML
//	tsqlfmt config
//
//	# Start a TOML configuration from the current settings
//	tsqlfmt --keyword-case lower config --format toml > .tsqlfmt.toml
func configCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "the output format, yaml or toml",
				Value:   string(config.FormatYAML),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f := config.Format(cmd.String("format"))
			if f != config.FormatYAML && f != config.FormatTOML {
				return errors.Errorf("unsupported format: %s", f)
			}

			return cfg.Marshal(writer(cmd), f)
		},
	}
}
