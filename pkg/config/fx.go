package config

import (
	"go.uber.org/fx"
)

// Module provides the configuration discovered from the working directory,
// with TSQLFMT_* environment overrides applied. Defaults are used when no
// configuration file exists, so every command can run without one.
var Module = fx.Module("config", fx.Provide(
	func() (*Config, error) {
		return Load(LoadOptions{Dir: "."})
	},
))
