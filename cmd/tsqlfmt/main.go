package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/jeannemas/tsql-formatter/pkg/cmd"
	"github.com/jeannemas/tsql-formatter/pkg/config"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

// startTimeout bounds the whole command run, since the CLI runs inside the fx
// start hook.
const startTimeout = time.Hour

func main() {
	fx.New(
		fx.NopLogger,
		fx.StartTimeout(startTimeout),
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		fx.Provide(context.Background),
		config.Module,
		cmd.Module,
	).Run()
}
