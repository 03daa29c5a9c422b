// Package cmd provides the command-line interface of tsqlfmt.
//
// # Available Commands
//
//   - fmt: Format SQL files, directories or standard input
//   - config: Print the effective configuration
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands receive the
// shared *config.Config through fx and read it when they run, after the root
// command resolved the configuration file, environment and global flags.
//
// # Global Options
//
//   - --config, -c: Configuration file (defaults to the discovered .tsqlfmt.* file)
//   - --env-file: Dotenv file with TSQLFMT_* variables
//   - --verbose, -v: Debug logging on stderr
//   - --indent, --identifier-style, --keyword-case,
//     --lines-between-statements, --operator-spacing: formatting overrides
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	tsqlfmt fmt query.sql                       # Print formatted query
//	tsqlfmt fmt -w db/                          # Format a directory tree in place
//	tsqlfmt fmt -l db/                          # List files that need formatting
//	tsqlfmt fmt --check db/                     # Fail if any file needs formatting
//	tsqlfmt --keyword-case lower fmt < q.sql    # Format stdin with lower case keywords
//	tsqlfmt config --format toml                # Print effective settings as TOML
package cmd
