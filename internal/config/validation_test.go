package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"empty python", func(c *Config) { c.Run.Python = "" }, "run.python"},
		{"launcher is a folder", func(c *Config) { c.Run.LauncherName = "bin" }, "run.launcherName"},
		{"negative timeout", func(c *Config) { c.Run.TimeoutSeconds = -1 }, "run.timeoutSeconds"},
		{"zero grace period", func(c *Config) { c.Run.GracefulShutdownMs = 0 }, "run.gracefulShutdownMs"},
		{"zero output cap", func(c *Config) { c.Run.MaxScriptOutputBytes = 0 }, "run.maxScriptOutputBytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	t.Run("all problems reported", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Run.Python = ""
		cfg.Run.TimeoutSeconds = -5
		cfg.Run.MaxScriptOutputBytes = -1

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "run.python")
		assert.Contains(t, err.Error(), "run.timeoutSeconds")
		assert.Contains(t, err.Error(), "run.maxScriptOutputBytes")
	})
}

func TestRequireRunPaths(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.RequireRunPaths()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingPath)
	assert.Contains(t, err.Error(), "palmFolderPath")
	assert.Contains(t, err.Error(), "scriptsFolderPath")
	assert.Contains(t, err.Error(), "pythonParserScript")

	cfg.PalmFolderPath = "/opt/palm/bin"
	cfg.ScriptsFolderPath = "/opt/palm/scripts"
	cfg.PythonParserScript = "resultMergeScenarios.py"
	assert.NoError(t, cfg.RequireRunPaths())
}

func TestRequireScenarioPaths(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.RequireScenarioPaths()
	assert.ErrorIs(t, err, ErrMissingPath)
	assert.Contains(t, err.Error(), "generateScenarioPath")

	cfg.ScenarioConfigsPath = "/opt/esg/configs"
	cfg.GenerateScenarioPath = "/opt/esg/generate.py"
	cfg.GenerateInputFolderPath = "/opt/esg"
	assert.NoError(t, cfg.RequireScenarioPaths())
}
