package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	diagonalCfg = filepath.Join("..", "..", "config", "testdata", "diagonal.yaml")
	covCfg      = filepath.Join("..", "..", "config", "testdata", "cov.yaml")
)

// run executes the CLI with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

type sampleDoc map[string]map[string]float64

// decodeLines parses JSON-lines output.
func decodeLines(t *testing.T, out string) []sampleDoc {
	t.Helper()
	var docs []sampleDoc
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var d sampleDoc
		require.NoError(t, json.Unmarshal(sc.Bytes(), &d))
		docs = append(docs, d)
	}
	require.NoError(t, sc.Err())

	return docs
}

func TestValidate(t *testing.T) {
	out, _, err := run(t, "validate", "-c", diagonalCfg, "--strict", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: ")
	assert.Contains(t, out, "DiagonalBNNPrior, 2 components")

	out, _, err = run(t, "validate", "-c", covCfg, "--strict", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "CovBNNPrior, 3 components")
}

func TestValidate_Errors(t *testing.T) {
	_, _, err := run(t, "validate", "--log-level", "error")
	assert.Error(t, err, "config flag is required")

	_, _, err = run(t, "validate", "-c", filepath.Join("testdata", "missing.yaml"), "--log-level", "error")
	assert.Error(t, err)

	_, _, err = run(t, "validate", "-c", diagonalCfg, "--log-level", "loud")
	assert.Error(t, err)
}

func TestSample_JSONLines(t *testing.T) {
	out, _, err := run(t, "sample", "-c", covCfg, "-n", "5", "--seed", "3", "--log-level", "error")
	require.NoError(t, err)
	docs := decodeLines(t, out)
	require.Len(t, docs, 5)
	for _, d := range docs {
		assert.Equal(t, d["lens_mass"]["center_x"], d["lens_light"]["center_x"])
		assert.Equal(t, d["lens_mass"]["center_y"], d["lens_light"]["center_y"])
	}

	again, _, err := run(t, "sample", "-c", covCfg, "-n", "5", "--seed", "3", "--workers", "1", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, any worker count")
}

func TestSample_YAMLDefaultsToNData(t *testing.T) {
	out, _, err := run(t, "sample", "-c", covCfg, "--format", "yaml", "--log-level", "error")
	require.NoError(t, err)
	var docs []sampleDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	assert.Len(t, docs, 8)
}

func TestSample_BadFormat(t *testing.T) {
	_, _, err := run(t, "sample", "-c", diagonalCfg, "--format", "csv", "--log-level", "error")
	assert.ErrorContains(t, err, "format")
}

func TestSample_LogsJSON(t *testing.T) {
	_, stderr, err := run(t, "sample", "-c", diagonalCfg, "-n", "1", "--log-format", "json", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"sampling"`)
}
