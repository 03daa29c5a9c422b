package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/jeannemas/tsql-formatter/pkg/config"
	"github.com/jeannemas/tsql-formatter/pkg/consts"
)

const (
	unformattedSQL = "select * from Users"
	formattedSQL   = "SELECT\n\t*\nFROM\n\t[Users];\n"
)

type fmtRun struct {
	stdout string
	stderr string
	err    error
}

// runFmt runs the fmt command as a standalone app with the given configuration,
// standard input and arguments.
func runFmt(t *testing.T, cfg *config.Config, stdin string, args ...string) fmtRun {
	t.Helper()

	command := fmtCmd(cfg)

	var stdout, stderr bytes.Buffer
	app := &cli.Command{
		Name:      "test",
		Flags:     command.Flags,
		Action:    command.Action,
		Reader:    strings.NewReader(stdin),
		Writer:    &stdout,
		ErrWriter: &stderr,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return fmtRun{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeSQL(t *testing.T, path, sql string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(t, os.WriteFile(path, []byte(sql), consts.ModeFile))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestFmtCommand_SingleFile(t *testing.T) {
	sqlFile := writeSQL(t, filepath.Join(t.TempDir(), "test.sql"), unformattedSQL)

	res := runFmt(t, config.Default(), "", sqlFile)
	require.NoError(t, res.err)
	require.Equal(t, formattedSQL, res.stdout)

	// stdout mode leaves the file untouched
	require.Equal(t, unformattedSQL, readFile(t, sqlFile))
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	sqlFile := writeSQL(t, filepath.Join(t.TempDir(), "test.sql"), unformattedSQL)

	res := runFmt(t, config.Default(), "", "-w", sqlFile)
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)
	require.Equal(t, formattedSQL, readFile(t, sqlFile))

	// Formatting is stable
	res = runFmt(t, config.Default(), "", "-w", sqlFile)
	require.NoError(t, res.err)
	require.Equal(t, formattedSQL, readFile(t, sqlFile))
}

func TestFmtCommand_WriteBackKeepsComments(t *testing.T) {
	sql := "-- header comment\nUPDATE t SET a = 1 -- trailing\n;\n/* keep */\nSELECT a -- why\nFROM t;\nselect b from t; -- done\n"
	expected := "-- header comment\nUPDATE t SET a = 1 -- trailing\n;\n\n/* keep */\nSELECT a -- why\nFROM t;\n\nSELECT\n\t[b]\nFROM\n\t[t];\n-- done\n"
	sqlFile := writeSQL(t, filepath.Join(t.TempDir(), "commented.sql"), sql)

	res := runFmt(t, config.Default(), "", "-w", sqlFile)
	require.NoError(t, res.err)
	require.Equal(t, expected, readFile(t, sqlFile))

	res = runFmt(t, config.Default(), "", "-w", sqlFile)
	require.NoError(t, res.err)
	require.Equal(t, expected, readFile(t, sqlFile))
}

func TestFmtCommand_Stdin(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		res := runFmt(t, config.Default(), unformattedSQL)
		require.NoError(t, res.err)
		require.Equal(t, formattedSQL, res.stdout)
	})

	t.Run("dash", func(t *testing.T) {
		res := runFmt(t, config.Default(), "select 1", "-")
		require.NoError(t, res.err)
		require.Equal(t, "SELECT\n\t1;\n", res.stdout)
	})

	t.Run("mixed with files", func(t *testing.T) {
		sqlFile := writeSQL(t, filepath.Join(t.TempDir(), "a.sql"), "select 2")

		res := runFmt(t, config.Default(), "select 1", sqlFile, "-")
		require.NoError(t, res.err)
		require.Equal(t, "SELECT\n\t2;\nSELECT\n\t1;\n", res.stdout)
	})

	t.Run("listed as <stdin>", func(t *testing.T) {
		res := runFmt(t, config.Default(), unformattedSQL, "-l")
		require.NoError(t, res.err)
		require.Equal(t, "<stdin>\n", res.stdout)
	})

	t.Run("write is rejected", func(t *testing.T) {
		res := runFmt(t, config.Default(), unformattedSQL, "-w")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "cannot use --write with standard input")
	})

	t.Run("empty input", func(t *testing.T) {
		res := runFmt(t, config.Default(), "")
		require.NoError(t, res.err)
		require.Empty(t, res.stdout)
	})
}

func TestFmtCommand_Directory(t *testing.T) {
	tmpDir := t.TempDir()

	writeSQL(t, filepath.Join(tmpDir, "b.sql"), "select 2")
	writeSQL(t, filepath.Join(tmpDir, "a.sql"), "select 1")
	writeSQL(t, filepath.Join(tmpDir, "sub", "c.SQL"), "select 3")
	writeSQL(t, filepath.Join(tmpDir, "readme.txt"), "Not SQL")

	res := runFmt(t, config.Default(), "", tmpDir)
	require.NoError(t, res.err)
	require.Equal(t, "SELECT\n\t1;\nSELECT\n\t2;\nSELECT\n\t3;\n", res.stdout)
}

func TestFmtCommand_DirectoryWriteBack(t *testing.T) {
	tmpDir := t.TempDir()

	file1 := writeSQL(t, filepath.Join(tmpDir, "schema1.sql"), "select id from db1.dbo.t")
	file2 := writeSQL(t, filepath.Join(tmpDir, "nested", "schema2.sql"), "select id from db2.dbo.t")
	txtFile := writeSQL(t, filepath.Join(tmpDir, "notes.txt"), "select id from t")

	res := runFmt(t, config.Default(), "", "-w", tmpDir)
	require.NoError(t, res.err)

	require.Equal(t, "SELECT\n\t[id]\nFROM\n\t[db1].[dbo].[t];\n", readFile(t, file1))
	require.Equal(t, "SELECT\n\t[id]\nFROM\n\t[db2].[dbo].[t];\n", readFile(t, file2))
	require.Equal(t, "select id from t", readFile(t, txtFile))
}

func TestFmtCommand_OutputOrder(t *testing.T) {
	tmpDir := t.TempDir()

	// Arguments are given in reverse file name order: output follows the
	// arguments.
	var (
		args     []string
		expected strings.Builder
	)
	for i := 39; i >= 0; i-- {
		path := writeSQL(t, filepath.Join(tmpDir, fmt.Sprintf("q%02d.sql", i)), fmt.Sprintf("select %d", i))
		args = append(args, path)
		fmt.Fprintf(&expected, "SELECT\n\t%d;\n", i)
	}

	res := runFmt(t, config.Default(), "", args...)
	require.NoError(t, res.err)
	require.Equal(t, expected.String(), res.stdout)
}

func TestFmtCommand_List(t *testing.T) {
	tmpDir := t.TempDir()

	clean := writeSQL(t, filepath.Join(tmpDir, "clean.sql"), formattedSQL)
	dirty := writeSQL(t, filepath.Join(tmpDir, "dirty.sql"), unformattedSQL)

	res := runFmt(t, config.Default(), "", "-l", tmpDir)
	require.NoError(t, res.err)
	require.Equal(t, dirty+"\n", res.stdout)

	// -l combined with -w rewrites and lists
	res = runFmt(t, config.Default(), "", "-l", "-w", tmpDir)
	require.NoError(t, res.err)
	require.Equal(t, dirty+"\n", res.stdout)
	require.Equal(t, formattedSQL, readFile(t, dirty))
	require.Equal(t, formattedSQL, readFile(t, clean))

	res = runFmt(t, config.Default(), "", "-l", tmpDir)
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)
}

func TestFmtCommand_Check(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	tmpDir := t.TempDir()
	writeSQL(t, filepath.Join(tmpDir, "clean.sql"), formattedSQL)
	dirty := writeSQL(t, filepath.Join(tmpDir, "dirty.sql"), unformattedSQL)

	res := runFmt(t, config.Default(), "", "--check", tmpDir)
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "1 of 2 file(s) are not formatted")
	require.Contains(t, res.stderr, dirty+" is not formatted\n")
	require.NotContains(t, res.stderr, "clean.sql")
	require.Empty(t, res.stdout)

	// The check does not modify files
	require.Equal(t, unformattedSQL, readFile(t, dirty))

	writeSQL(t, dirty, formattedSQL)
	res = runFmt(t, config.Default(), "", "--check", tmpDir)
	require.NoError(t, res.err)
	require.Empty(t, res.stderr)
}

func TestFmtCommand_UsesConfig(t *testing.T) {
	sqlFile := writeSQL(t, filepath.Join(t.TempDir(), "test.sql"), "SELECT Id FROM Users WHERE Active = 1; SELECT 1")

	lines := 0
	cfg := &config.Config{
		Indent:                 "  ",
		IdentifierStyle:        "none",
		KeywordCase:            "lower",
		LinesBetweenStatements: &lines,
		OperatorSpacing:        "dense",
	}

	res := runFmt(t, cfg, "", sqlFile)
	require.NoError(t, res.err)
	require.Equal(t, "select\n  Id\nfrom\n  Users\nwhere\n  Active=1;\nselect\n  1;\n", res.stdout)
}

func TestFmtCommand_InvalidConfig(t *testing.T) {
	res := runFmt(t, &config.Config{KeywordCase: "sentence"}, unformattedSQL)
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), `invalid keyword case: "sentence"`)
}

func TestFmtCommand_NonexistentPath(t *testing.T) {
	res := runFmt(t, config.Default(), "", "/nonexistent/path")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "failed to access path")
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeSQL(t, filepath.Join(tmpDir, "readme.txt"), "Not SQL")

	res := runFmt(t, config.Default(), "", tmpDir)
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "no SQL files found")
}

func TestFmtCommand_EmptyFile(t *testing.T) {
	sqlFile := writeSQL(t, filepath.Join(t.TempDir(), "empty.sql"), "")

	res := runFmt(t, config.Default(), "", "-l", sqlFile)
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)

	res = runFmt(t, config.Default(), "", sqlFile)
	require.NoError(t, res.err)
	require.Empty(t, res.stdout)
}

func TestFmtCommand_VerbatimStatements(t *testing.T) {
	sqlFile := writeSQL(t, filepath.Join(t.TempDir(), "proc.sql"), "SET NOCOUNT ON\nGO\nexec dbo.Cleanup @days = 7")

	res := runFmt(t, config.Default(), "", sqlFile)
	require.NoError(t, res.err)
	require.Equal(t, "SET NOCOUNT ON;\n\nexec dbo.Cleanup @days = 7;\n", res.stdout)
}

func TestFmtCommand_WritePermissions(t *testing.T) {
	sqlFile := writeSQL(t, filepath.Join(t.TempDir(), "test.sql"), unformattedSQL)
	require.NoError(t, os.Chmod(sqlFile, 0o600))

	originalInfo, err := os.Stat(sqlFile)
	require.NoError(t, err)

	res := runFmt(t, config.Default(), "", "-w", sqlFile)
	require.NoError(t, res.err)

	newInfo, err := os.Stat(sqlFile)
	require.NoError(t, err)
	require.Equal(t, originalInfo.Mode(), newInfo.Mode())
}

func TestFmtCommand_FlagConfiguration(t *testing.T) {
	command := fmtCmd(config.Default())

	require.Equal(t, "fmt", command.Name)
	require.Equal(t, "Format SQL files", command.Usage)
	require.Equal(t, "[path ...]", command.ArgsUsage)
	require.Len(t, command.Flags, 3)

	writeFlag := command.Flags[0].(*cli.BoolFlag)
	require.Equal(t, "write", writeFlag.Name)
	require.Equal(t, []string{"w"}, writeFlag.Aliases)

	listFlag := command.Flags[1].(*cli.BoolFlag)
	require.Equal(t, "list", listFlag.Name)
	require.Equal(t, []string{"l"}, listFlag.Aliases)

	checkFlag := command.Flags[2].(*cli.BoolFlag)
	require.Equal(t, "check", checkFlag.Name)
}
