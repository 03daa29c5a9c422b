package cmd

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// reader, writer and errWriter return the streams of cmd, falling back to
// those of the root command.
func reader(cmd *cli.Command) io.Reader {
	if cmd.Reader != nil {
		return cmd.Reader
	}
	if root := cmd.Root(); root.Reader != nil {
		return root.Reader
	}
	return os.Stdin
}

func writer(cmd *cli.Command) io.Writer {
	if cmd.Writer != nil {
		return cmd.Writer
	}
	if root := cmd.Root(); root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if cmd.ErrWriter != nil {
		return cmd.ErrWriter
	}
	if root := cmd.Root(); root.ErrWriter != nil {
		return root.ErrWriter
	}
	return os.Stderr
}
