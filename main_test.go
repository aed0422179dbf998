package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	_invalidInput = "11-22,95-115,998-1012\n"
	_freshInput   = "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32\n"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestInvalid(t *testing.T) {
	out, _, err := run(t, _invalidInput, "invalid")
	require.NoError(t, err)
	assert.Equal(t, "1142\n", out)
}

func TestInvalidAll(t *testing.T) {
	for _, workers := range []string{"1", "3"} {
		out, _, err := run(t, _invalidInput, "invalid", "--all", "--workers", workers, "--chunk-size", "5")
		require.NoError(t, err)
		assert.Equal(t, "2252\n", out)
	}
}

func TestInvalidYAML(t *testing.T) {
	out, _, err := run(t, _invalidInput, "invalid", "-o", "yaml")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, report{
		Query:   "doubles",
		Result:  1142,
		Ranges:  []string{"11-22", "95-115", "998-1012"},
		Matches: []uint64{11, 22, 99, 1010},
	}, r)
}

func TestFresh(t *testing.T) {
	out, _, err := run(t, _freshInput, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = run(t, _freshInput, "fresh", "--format", "json")
	require.NoError(t, err)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, report{Query: "fresh", Result: 3, Matches: []uint64{5, 11, 17}}, r)
}

func TestFreshTotal(t *testing.T) {
	out, _, err := run(t, _freshInput, "fresh", "--total")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, _, err = run(t, "3-5\n10-14\n16-20\n12-18\n", "fresh", "-t")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestFreshWithoutIDs(t *testing.T) {
	out, _, err := run(t, "3-5\n10-14\n", "fresh")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestEmptyInput(t *testing.T) {
	for _, args := range [][]string{{"invalid"}, {"invalid", "--all"}, {"fresh"}, {"fresh", "--total"}} {
		out, _, err := run(t, "", args...)
		require.NoError(t, err, "%v", args)
		assert.Equal(t, "0\n", out, "%v", args)
	}
}

func TestInputFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(name, []byte(_invalidInput), 0o644))

	out, _, err := run(t, "", "invalid", "-f", name)
	require.NoError(t, err)
	assert.Equal(t, "1142\n", out)

	_, _, err = run(t, "", "invalid", "-f", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "opening input")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte(_freshInput), 0o644))
	cfgFile := filepath.Join(dir, "idscan.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("file: "+input+"\nformat: json\n"), 0o644))

	out, _, err := run(t, "", "fresh", "--total", "--config", cfgFile)
	require.NoError(t, err)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, uint64(14), r.Result)
	assert.Equal(t, []string{"3-5", "10-20"}, r.Ranges)

	// Flags win over the file.
	out, _, err = run(t, "", "fresh", "--total", "--config", cfgFile, "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)
}

func TestBadConfig(t *testing.T) {
	for _, args := range [][]string{
		{"invalid", "--format", "xml"},
		{"invalid", "--workers", "0"},
		{"invalid", "--log-level", "loud"},
		{"invalid", "--config", filepath.Join(t.TempDir(), "missing.yaml")},
		{"invalid", "extra"},
	} {
		_, _, err := run(t, _invalidInput, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, _invalidInput, "invalid", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=debug")
	assert.Contains(t, stderr, `msg="merged ranges"`)

	_, stderr, err = run(t, _invalidInput, "invalid")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "idscan version dev")
}

func TestSplitSections(t *testing.T) {
	head, tail := splitSections("1-2\n3-4\n\n5\n6\n")
	assert.Equal(t, "1-2\n3-4\n\n", head)
	assert.Equal(t, "5\n6\n", tail)

	head, tail = splitSections("1-2\r\n  \r\n5\r\n")
	assert.Equal(t, "1-2\r\n  \r\n", head)
	assert.Equal(t, "5\r\n", tail)

	head, tail = splitSections("1-2\n3-4")
	assert.Equal(t, "1-2\n3-4", head)
	assert.Empty(t, tail)
}

func TestParseIDs(t *testing.T) {
	assert.Equal(t, []uint64{1, 5, 18446744073709551615}, parseIDs(" 1\n\nx\n5\r\n-3\n18446744073709551615\n"))
	assert.Nil(t, parseIDs(""))
}

type writerFunc func(p []byte) (n int, err error)

func (f writerFunc) Write(p []byte) (n int, err error) {
	return f(p)
}

func TestWriteReportError(t *testing.T) {
	broken := writerFunc(func(p []byte) (int, error) { return 0, os.ErrClosed })
	for _, format := range []string{_formatText, _formatYAML, _formatJSON} {
		err := writeReport(broken, format, report{Query: "fresh", Result: 3})
		assert.ErrorContains(t, err, "writing report", format)
		if format != _formatYAML {
			assert.ErrorIs(t, err, os.ErrClosed, format)
		}
	}
}
