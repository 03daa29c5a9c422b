package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jeannemas/tsql-formatter/pkg/consts"
	"github.com/jeannemas/tsql-formatter/pkg/format"
	"github.com/jeannemas/tsql-formatter/pkg/utils"
)

// Format is the encoding of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

type (
	// Config holds the formatting settings of a project.
	//
	// Every field is optional. Empty fields fall back to format.Defaults when the
	// configuration is turned into formatter options, so a partial file only
	// overrides what it names. Enum values use the same spellings as the CLI
	// flags (e.g. "square-brackets", "lower", "dense").
	Config struct {
		// Indent is the indentation unit, e.g. "\t" or "    "
		Indent string `yaml:"indent,omitempty" toml:"indent,omitempty" env:"TSQLFMT_INDENT"`

		// IdentifierStyle is one of "square-brackets", "double-quotes" or "none"
		IdentifierStyle string `yaml:"identifier_style,omitempty" toml:"identifier_style,omitempty" env:"TSQLFMT_IDENTIFIER_STYLE"`

		// KeywordCase is either "upper" or "lower"
		KeywordCase string `yaml:"keyword_case,omitempty" toml:"keyword_case,omitempty" env:"TSQLFMT_KEYWORD_CASE"`

		// LinesBetweenStatements is the number of blank lines emitted between two
		// statements. It is a pointer so that an explicit 0 can be told apart from
		// an unset value.
		LinesBetweenStatements *int `yaml:"lines_between_statements,omitempty" toml:"lines_between_statements,omitempty" env:"TSQLFMT_LINES_BETWEEN_STATEMENTS"`

		// OperatorSpacing is either "space-around" or "dense"
		OperatorSpacing string `yaml:"operator_spacing,omitempty" toml:"operator_spacing,omitempty" env:"TSQLFMT_OPERATOR_SPACING"`

		// Path is the file the configuration was read from, if any
		Path string `yaml:"-" toml:"-"`
	}

	// LoadOptions controls where Load looks for configuration.
	LoadOptions struct {
		// Path is an explicit configuration file. When empty, Load discovers one
		// starting at Dir.
		Path string

		// Dir is the directory discovery starts from. Defaults to the working
		// directory.
		Dir string

		// EnvFile is an optional dotenv file loaded into the process environment
		// before TSQLFMT_* variables are applied.
		EnvFile string
	}
)

// Default returns the configuration equivalent to format.Defaults.
func Default() *Config {
	return &Config{
		Indent:                 format.Defaults.Indent,
		IdentifierStyle:        format.Defaults.IdentifierStyle.String(),
		KeywordCase:            format.Defaults.KeywordCase.String(),
		LinesBetweenStatements: utils.Ptr(format.Defaults.LinesBetweenStatements),
		OperatorSpacing:        format.Defaults.OperatorSpacing.String(),
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Settings missing from the input keep their default value, and an empty input
// yields the default configuration. Unknown keys are rejected so that typos do
// not go unnoticed.
//
// Example:
//
//	yamlData := `
//	indent: "    "
//	keyword_case: lower
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData), config.FormatYAML)
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Keyword case: %s\n", cfg.KeywordCase)
func LoadConfig(r io.Reader, f Format) (*Config, error) {
	cfg := Default()

	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "failed to unmarshal config")
		}
	case FormatTOML:
		meta, err := toml.NewDecoder(r).Decode(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal config")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("failed to unmarshal config: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, errors.Errorf("unsupported config format: %q", f)
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path. The format
// is picked from the file extension.
//
// Example:
//
//	cfg, err := config.LoadConfigFile(".tsqlfmt.toml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = file.Close() }()

	cfg, err := LoadConfig(file, f)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}

	cfg.Path = path
	return cfg, nil
}

// FormatOf returns the configuration format matching the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Errorf("unsupported config file extension: %s", path)
	}
}

// Discover walks up from dir looking for a .tsqlfmt.yaml, .tsqlfmt.yml or
// .tsqlfmt.toml file. The closest directory wins; within a directory the
// extensions are tried in that order. ok is false when no file was found.
func Discover(dir string) (path string, ok bool, err error) {
	if dir == "" {
		dir = "."
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to resolve directory: %s", dir)
	}

	for {
		for _, ext := range consts.ConfigExtensions {
			candidate := filepath.Join(dir, consts.ConfigBaseName+ext)

			info, err := os.Stat(candidate)
			switch {
			case err == nil && !info.IsDir():
				return candidate, true, nil
			case err != nil && !errors.Is(err, os.ErrNotExist):
				return "", false, errors.Wrapf(err, "failed to stat %s", candidate)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load resolves the effective configuration: defaults, then the configuration
// file (explicit or discovered), then TSQLFMT_* environment variables.
func Load(opts LoadOptions) (*Config, error) {
	path := opts.Path
	if path == "" {
		found, ok, err := Discover(opts.Dir)
		if err != nil {
			return nil, err
		}
		if ok {
			path = found
		}
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadConfigFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides settings with the TSQLFMT_* environment variables. When
// envFile is set, it is loaded into the process environment first; variables
// already present in the environment take precedence over the file.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return errors.Wrapf(err, "failed to load env file: %s", envFile)
		}
	}

	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "failed to parse environment")
	}

	return nil
}

// Options validates the configuration and converts it to formatter options.
func (c *Config) Options() (format.FormatterOptions, error) {
	opts := format.Defaults

	if c.Indent != "" {
		opts.Indent = c.Indent
	}

	if c.IdentifierStyle != "" {
		style, err := format.ParseIdentifierStyle(c.IdentifierStyle)
		if err != nil {
			return opts, err
		}
		opts.IdentifierStyle = style
	}

	if c.KeywordCase != "" {
		kc, err := format.ParseKeywordCase(c.KeywordCase)
		if err != nil {
			return opts, err
		}
		opts.KeywordCase = kc
	}

	if c.LinesBetweenStatements != nil {
		if *c.LinesBetweenStatements < 0 {
			return opts, errors.Errorf("invalid lines between statements: %d", *c.LinesBetweenStatements)
		}
		opts.LinesBetweenStatements = *c.LinesBetweenStatements
	}

	if c.OperatorSpacing != "" {
		spacing, err := format.ParseOperatorSpacing(c.OperatorSpacing)
		if err != nil {
			return opts, err
		}
		opts.OperatorSpacing = spacing
	}

	return opts, nil
}

// Marshal encodes the configuration in the given format.
func (c *Config) Marshal(w io.Writer, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return errors.Wrap(err, "failed to marshal config")
		}
		return errors.Wrap(enc.Close(), "failed to marshal config")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(c), "failed to marshal config")
	default:
		return errors.Errorf("unsupported config format: %q", f)
	}
}
