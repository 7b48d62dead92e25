package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/primarray/pkg/core/version"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetFlags clears flag state left behind by a previous execution
func resetFlags() {
	cfgFile, logLevel, logFormat = "", "", ""
	runKinds, runOps, runOutput = "", "", ""
	runSize, runRounds, runSeed = 0, 0, 0
	for _, name := range []string{"kinds", "ops", "size", "rounds", "seed", "output"} {
		runCmd.Flags().Lookup(name).Changed = false
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunJSON(t *testing.T) {
	path := writeConfig(t, `
[bench]
kinds = ["long"]
size = 32
rounds = 1

[log]
level = "warn"
format = "json"
`)
	stdout, stderr, err := execute(t, "run", "--config", path, "--kinds", "int,boolean", "--ops", "sort", "--output", "json")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var report struct {
		Size    int `json:"size"`
		Results []struct {
			Kind    string `json:"kind"`
			Skipped string `json:"skipped"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 32, report.Size)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "Int", report.Results[0].Kind)
	assert.Empty(t, report.Results[0].Skipped)
	assert.Equal(t, "Boolean", report.Results[1].Kind)
	assert.Equal(t, "UNSUPPORTED_OPERATION", report.Results[1].Skipped)
}

func TestRunTableWithLogs(t *testing.T) {
	path := writeConfig(t, "[bench]\nsize = 16\nrounds = 1\n")
	stdout, stderr, err := execute(t, "run", "--config", path, "--kinds", "char", "--ops", "reverse",
		"--log-level", "info", "--log-format", "logfmt")
	require.NoError(t, err)

	assert.Contains(t, stdout, "primarray benchmark")
	assert.Contains(t, stdout, "Char")
	assert.Contains(t, stderr, `message="benchmark started"`)
}

func TestRunRejectsBadInput(t *testing.T) {
	path := writeConfig(t, "[bench]\nsize = 16\nrounds = 1\n")

	_, _, err := execute(t, "run", "--config", path, "--kinds", "quad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid kind "quad"`)

	_, _, err = execute(t, "run", "--config", path, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid output "xml"`)

	_, _, err = execute(t, "run", "--config", path, "--log-level", "loud")
	require.Error(t, err)
}

func TestKinds(t *testing.T) {
	path := writeConfig(t, "")
	stdout, _, err := execute(t, "kinds", "--config", path)
	require.NoError(t, err)

	for _, want := range []string{"Byte", "Boolean", "[false]", "[0]", "Char"} {
		assert.Contains(t, stdout, want)
	}
	assert.Equal(t, 8, strings.Count(stdout, "\n")-2)
}

func TestVersion(t *testing.T) {
	path := writeConfig(t, "")
	stdout, _, err := execute(t, "version", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "primbench v"+version.Primbench+"\n"))
}
