package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const copySource = `public class Point2D
{
    public int X { get; set; }
    public int Y { get; set; }
}

public class PointDto
{
    public PointDto(Point2D p)
    {
    |}
}
`

// writeSource writes src without its "|" marker and returns the path and the
// marker offset.
func writeSource(t *testing.T, src string) (string, int) {
	t.Helper()

	offset := strings.Index(src, "|")
	require.GreaterOrEqual(t, offset, 0)

	dir := t.TempDir()
	path := filepath.Join(dir, "Model.cs")
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(src, "|", "", 1)), 0o644))

	cfgPath := filepath.Join(dir, ".csrefactor.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: error\n"), 0o644))

	return path, offset
}

// run executes the root command with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	applyProposal, proposalID, showDiff, writeBack = false, "", false, false
	configPath, logLevel = "", ""

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func configFor(path string) string {
	return filepath.Join(filepath.Dir(path), ".csrefactor.yaml")
}

func TestRefactorListsProposals(t *testing.T) {
	path, offset := writeSource(t, copySource)

	out, err := run(t, "refactor", "--config", configFor(path), path, strconv.Itoa(offset))
	require.NoError(t, err)

	assert.Contains(t, out, "copy-constructor")
	assert.Contains(t, out, "Copy properties and values from 'p'")
}

func TestRefactorApply(t *testing.T) {
	path, offset := writeSource(t, copySource)

	out, err := run(t, "refactor", "--config", configFor(path), "--apply", path, strconv.Itoa(offset))
	require.NoError(t, err)

	assert.Contains(t, out, "    public int Y { get; set; }\n    public int X { get; set; }\n    public PointDto(Point2D p)")
	assert.Contains(t, out, "        X = p.X;\n        Y = p.Y;\n")
}

func TestRefactorApplyDiffAndWrite(t *testing.T) {
	path, offset := writeSource(t, copySource)

	out, err := run(t, "refactor", "--config", configFor(path), "--apply", "--diff", "--write", path, strconv.Itoa(offset))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "@@ "), "patch output expected, got %q", out)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "X = p.X;")
}

func TestRefactorApplyWithoutProposal(t *testing.T) {
	path, _ := writeSource(t, copySource)

	_, err := run(t, "refactor", "--config", configFor(path), "--apply", path, "0")
	require.ErrorIs(t, err, errNoProposal)
}

func TestRefactorApplyUnknownID(t *testing.T) {
	path, offset := writeSource(t, copySource)

	_, err := run(t, "refactor", "--config", configFor(path), "--apply", "--id", "field-from-parameter", path, strconv.Itoa(offset))
	require.ErrorIs(t, err, errNoProposal)
}

func TestOffsetCommand(t *testing.T) {
	src := "class A\n{\n    string s = \"he|llo\";\n}\n"
	path, offset := writeSource(t, src)

	out, err := run(t, "offset", "--config", configFor(path), path, strconv.Itoa(offset))
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, "offset", "--config", configFor(path), path, "0")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)
}

func TestSnippetCommand(t *testing.T) {
	src := strings.Replace(copySource, "    public PointDto(Point2D p)", "    public int X { get; set; }\n    public PointDto(Point2D p)", 1)
	path, offset := writeSource(t, src)

	out, err := run(t, "snippet", "--config", configFor(path), path, strconv.Itoa(offset))
	require.NoError(t, err)
	assert.Equal(t, "X = p.X;\n", out)
}

func TestFileRequestErrors(t *testing.T) {
	path, _ := writeSource(t, copySource)

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad offset", args: []string{path, "abc"}},
		{name: "offset past end", args: []string{path, "100000"}},
		{name: "missing file", args: []string{filepath.Join(t.TempDir(), "none.cs"), "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"offset", "--config", configFor(path)}, tt.args...)
			_, err := run(t, args...)
			require.Error(t, err)
		})
	}
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runVersion(cmd, []string{}))

	output := buf.String()
	assert.Contains(t, output, "csrefactor-lsp version")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
}

func TestProtocolVerbosity(t *testing.T) {
	assert.Equal(t, 2, protocolVerbosity("debug"))
	assert.Equal(t, 1, protocolVerbosity("info"))
	assert.Equal(t, 0, protocolVerbosity("error"))
}
