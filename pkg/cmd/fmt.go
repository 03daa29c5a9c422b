package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/jeannemas/tsql-formatter/pkg/config"
	"github.com/jeannemas/tsql-formatter/pkg/consts"
	"github.com/jeannemas/tsql-formatter/pkg/format"
	"github.com/jeannemas/tsql-formatter/pkg/parser"
)

// stdinPath is the path argument that selects standard input.
const stdinPath = "-"

var notFormattedColor = color.New(color.FgYellow)

type (
	fmtOptions struct {
		write bool
		list  bool
		check bool
	}

	// fmtResult is the outcome of formatting one input.
	fmtResult struct {
		path      string
		formatted string
		changed   bool
	}
)

// fmtCmd creates a CLI command for formatting T-SQL files. It behaves like
// gofmt: inputs are files, directories (searched recursively for .sql files) or
// standard input, and the formatted result goes to stdout unless -w or -l is
// given.
//
// Inputs are formatted concurrently, but output is always written in the order
// the inputs were given, with directory contents in lexicographical order.
//
// Flags:
//   - -w: Write formatted results back to source files instead of stdout
//   - -l: List files whose formatting differs instead of printing them
//   - --check: Fail when any file is not formatted
//
// Examples:
//
//	# Format single file to stdout
//	tsqlfmt fmt report.sql
//
//	# Format all SQL files in a directory tree in-place
//	tsqlfmt fmt -w db/
//
//	# Format standard input
//	cat report.sql | tsqlfmt fmt
//
//	# Verify formatting in CI
//	tsqlfmt fmt --check db/
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Exit with an error when any file is not formatted",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			options, err := cfg.Options()
			if err != nil {
				return err
			}

			opts := fmtOptions{
				write: cmd.Bool("write"),
				list:  cmd.Bool("list"),
				check: cmd.Bool("check"),
			}

			return formatPaths(ctx, format.New(options), cmd.Args().Slice(), opts, cmd)
		},
	}
}

// formatPaths formats every input and reports the results on cmd's writers.
func formatPaths(ctx context.Context, fmtr *format.Formatter, args []string, opts fmtOptions, cmd *cli.Command) error {
	paths, err := collectPaths(args)
	if err != nil {
		return err
	}

	if opts.write && slices.Contains(paths, stdinPath) {
		return errors.New("cannot use --write with standard input")
	}

	var stdin string
	if slices.Contains(paths, stdinPath) {
		data, err := io.ReadAll(reader(cmd))
		if err != nil {
			return errors.Wrap(err, "failed to read standard input")
		}
		stdin = string(data)
	}

	results := make([]fmtResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			var (
				res fmtResult
				err error
			)
			if path == stdinPath {
				res, err = formatSource("<stdin>", stdin, fmtr)
			} else {
				res, err = formatFile(path, fmtr, opts.write)
			}
			if err != nil {
				return err
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return report(results, opts, writer(cmd), errWriter(cmd))
}

// report writes the results in input order. Formatted text is printed only when
// neither -w, -l nor --check was given.
func report(results []fmtResult, opts fmtOptions, out, errOut io.Writer) error {
	unformatted := 0

	for _, res := range results {
		if res.changed {
			unformatted++
		}

		switch {
		case opts.list:
			if res.changed {
				if _, err := fmt.Fprintln(out, res.path); err != nil {
					return errors.Wrap(err, "failed to write output")
				}
			}
		case opts.check:
			if res.changed {
				if _, err := notFormattedColor.Fprintf(errOut, "%s is not formatted\n", res.path); err != nil {
					return errors.Wrap(err, "failed to write output")
				}
			}
		case !opts.write:
			if _, err := fmt.Fprint(out, res.formatted); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}
	}

	if opts.check && unformatted > 0 {
		return errors.Errorf("%d of %d file(s) are not formatted", unformatted, len(results))
	}

	return nil
}

// collectPaths expands the command arguments into the list of inputs. No
// argument means standard input; directories contribute their .sql files in
// lexicographical order.
func collectPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{stdinPath}, nil
	}

	var paths []string
	for _, arg := range args {
		if arg == stdinPath {
			paths = append(paths, stdinPath)
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", arg)
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		files, err := sqlFiles(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}

	return paths, nil
}

// sqlFiles recursively walks through a directory and returns all .sql files.
// filepath.WalkDir visits entries in lexical order, so the result is sorted.
func sqlFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.SQLExtension) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", dir)
	}

	return files, nil
}

// formatFile formats a single SQL file, writing it back when writeBack is set
// and the formatting changed.
func formatFile(path string, fmtr *format.Formatter, writeBack bool) (fmtResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmtResult{}, errors.Wrapf(err, "failed to read file: %s", path)
	}

	res, err := formatSource(path, string(content), fmtr)
	if err != nil {
		return res, err
	}

	if writeBack && res.changed {
		if err := os.WriteFile(path, []byte(res.formatted), consts.ModeFile); err != nil {
			return res, errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		slog.Debug("Formatted file", "path", path)
	}

	return res, nil
}

// formatSource formats sql. Non-empty output ends with a newline.
func formatSource(name, sql string, fmtr *format.Formatter) (fmtResult, error) {
	script, err := parser.ParseString(sql)
	if err != nil {
		return fmtResult{}, errors.Wrapf(err, "failed to parse SQL in file: %s", name)
	}

	var buf strings.Builder
	if err := fmtr.Format(&buf, script); err != nil {
		return fmtResult{}, errors.Wrapf(err, "failed to format SQL in file: %s", name)
	}

	formatted := buf.String()
	if formatted != "" {
		formatted += "\n"
	}

	return fmtResult{
		path:      name,
		formatted: formatted,
		changed:   formatted != sql,
	}, nil
}
