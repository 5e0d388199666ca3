package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
}

func writeUIConfig(t *testing.T, values map[string]any) string {
	t.Helper()
	data, err := json.Marshal(values)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "ui_config.json")
	writeFile(t, path, string(data), 0o644)
	return path
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses sh scripts")
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", stdout)
}

func TestPathCmds(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"normalize", []string{"path", "normalize", `C:\palm\configs`, "a/b"}, "C:/palm/configs\na/b\n"},
		{"rel", []string{"path", "rel", "C:/palm/scripts", "C:/palm/output/valuation/"}, "../output/valuation/\n"},
		{"resolve", []string{"path", "resolve", "C:/palm/configs/run1.json", "../valuation/run2.json"}, "C:/palm/valuation/run2.json\n"},
		{"traverse", []string{"path", "traverse", "C:/palm", "C:/palm/configs/valuation/run1.json"}, "configs/valuation\n"},
		{"traverse null", []string{"path", "traverse", "C:/palm", "C:/palm/"}, "null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestPathCmd_WrongArgCount(t *testing.T) {
	_, _, err := execute(t, "path", "rel", "only-one")
	assert.Error(t, err)
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRootCmd_InvalidLogFormat(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}
