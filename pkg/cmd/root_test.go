package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/jeannemas/tsql-formatter/pkg/config"
)

// runApp runs the full tsqlfmt application with the fmt and config commands
// sharing cfg.
func runApp(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newApp(cfg, []*cli.Command{configCmd(cfg), fmtCmd(cfg)})
	app.Reader = strings.NewReader(stdin)
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(context.Background(), append([]string{"tsqlfmt"}, args...))
	return stdout.String(), err
}

func TestRoot_FlagOverrides(t *testing.T) {
	cfg := config.Default()

	out, err := runApp(t, cfg, "SELECT Id FROM Users WHERE Active = 1; SELECT 1",
		"--keyword-case", "lower",
		"--identifier-style", "double-quotes",
		"--operator-spacing", "dense",
		"--lines-between-statements", "0",
		"--indent", "    ",
		"fmt",
	)
	require.NoError(t, err)
	require.Equal(t, "select\n    \"Id\"\nfrom\n    \"Users\"\nwhere\n    \"Active\"=1;\nselect\n    1;\n", out)

	// The shared configuration reflects the flags
	require.Equal(t, "lower", cfg.KeywordCase)
	require.Equal(t, 0, *cfg.LinesBetweenStatements)
}

func TestRoot_InvalidFlag(t *testing.T) {
	_, err := runApp(t, config.Default(), "select 1", "--keyword-case", "title", "fmt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
	require.Contains(t, err.Error(), `invalid keyword case: "title"`)

	_, err = runApp(t, config.Default(), "select 1", "--lines-between-statements=-1", "fmt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid lines between statements: -1")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fmt.toml")
	require.NoError(t, os.WriteFile(path, []byte("keyword_case = \"lower\"\nidentifier_style = \"none\"\n"), 0o644))

	out, err := runApp(t, config.Default(), "SELECT Id FROM Users", "--config", path, "fmt")
	require.NoError(t, err)
	require.Equal(t, "select\n\tId\nfrom\n\tUsers;\n", out)

	// Flags still win over the file
	out, err = runApp(t, config.Default(), "SELECT Id FROM Users", "-c", path, "--keyword-case", "upper", "fmt")
	require.NoError(t, err)
	require.Equal(t, "SELECT\n\tId\nFROM\n\tUsers;\n", out)

	_, err = runApp(t, config.Default(), "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "fmt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open file")
}

func TestRoot_EnvFile(t *testing.T) {
	const key = "TSQLFMT_KEYWORD_CASE"

	if value, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { _ = os.Setenv(key, value) })
	} else {
		t.Cleanup(func() { _ = os.Unsetenv(key) })
	}
	require.NoError(t, os.Unsetenv(key))

	envFile := filepath.Join(t.TempDir(), "fmt.env")
	require.NoError(t, os.WriteFile(envFile, []byte(key+"=lower\n"), 0o644))

	out, err := runApp(t, config.Default(), "select 1", "--env-file", envFile, "fmt")
	require.NoError(t, err)
	require.Equal(t, "select\n\t1;\n", out)
}

func TestConfigCommand(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		out, err := runApp(t, config.Default(), "", "--keyword-case", "lower", "config")
		require.NoError(t, err)

		cfg, err := config.LoadConfig(strings.NewReader(out), config.FormatYAML)
		require.NoError(t, err)
		require.Equal(t, "lower", cfg.KeywordCase)
		require.Equal(t, "square-brackets", cfg.IdentifierStyle)
		require.Equal(t, 1, *cfg.LinesBetweenStatements)
	})

	t.Run("toml", func(t *testing.T) {
		out, err := runApp(t, config.Default(), "", "--operator-spacing", "dense", "config", "--format", "toml")
		require.NoError(t, err)
		require.Contains(t, out, `operator_spacing = "dense"`)

		cfg, err := config.LoadConfig(strings.NewReader(out), config.FormatTOML)
		require.NoError(t, err)
		require.Equal(t, "dense", cfg.OperatorSpacing)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := runApp(t, config.Default(), "", "config", "-f", "json")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported format: json")
	})
}
