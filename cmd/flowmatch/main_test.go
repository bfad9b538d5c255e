package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns captured stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// TestMaxflowDemo solves the built-in reference network.
func TestMaxflowDemo(t *testing.T) {
	out, err := run(t, "maxflow", "--demo")
	require.NoError(t, err)
	require.Contains(t, out, "max flow 0→7: 17")
	require.Contains(t, out, "min cut")
}

// TestMatchDemo solves the built-in bipartite instance.
func TestMatchDemo(t *testing.T) {
	out, err := run(t, "match", "--demo", "--strategy", "dfs")
	require.NoError(t, err)
	require.Contains(t, out, "maximum matching: 3 edges")
}

// TestMaxflowFromFile loads a YAML definition from disk.
func TestMaxflowFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	def := "source: 0\nsink: 2\narcs:\n" +
		"  - {from: 0, to: 1, cap: 4}\n" +
		"  - {from: 1, to: 2, cap: 3}\n"
	require.NoError(t, os.WriteFile(path, []byte(def), 0o600))

	out, err := run(t, "maxflow", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, "max flow 0→2: 3")
}

// TestInputExclusive rejects both --file and --demo, and neither.
func TestInputExclusive(t *testing.T) {
	_, err := run(t, "maxflow")
	require.Error(t, err)
	_, err = run(t, "maxflow", "--demo", "--file", "x.yaml")
	require.Error(t, err)
}

// TestUnknownStrategy rejects a bad --strategy value.
func TestUnknownStrategy(t *testing.T) {
	_, err := run(t, "match", "--demo", "--strategy", "best-first")
	require.Error(t, err)
}
