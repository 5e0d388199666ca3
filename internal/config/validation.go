package config

import (
	"errors"
	"fmt"

	"github.com/Cyclone1070/palm/internal/palmpath"
	"github.com/hashicorp/go-multierror"
)

// Validate checks config values for correctness.
// Every problem is reported, not just the first one.
func (c *Config) Validate() error {
	var merr *multierror.Error

	if c.Run.Python == "" {
		merr = multierror.Append(merr, errors.New("run.python must not be empty"))
	}
	if !palmpath.IsFileName(c.Run.LauncherName) {
		merr = multierror.Append(merr, fmt.Errorf("run.launcherName %q must be a file name", c.Run.LauncherName))
	}
	if c.Run.TimeoutSeconds < 0 {
		merr = multierror.Append(merr, errors.New("run.timeoutSeconds must be >= 0"))
	}
	if c.Run.GracefulShutdownMs < 1 {
		merr = multierror.Append(merr, errors.New("run.gracefulShutdownMs must be >= 1"))
	}
	if c.Run.MaxScriptOutputBytes < 1 {
		merr = multierror.Append(merr, errors.New("run.maxScriptOutputBytes must be >= 1"))
	}

	if err := merr.ErrorOrNil(); err != nil {
		return &ValidationError{Cause: err}
	}
	return nil
}

// RequireRunPaths checks the paths a pALM run and its output parsing need.
func (c *Config) RequireRunPaths() error {
	var merr *multierror.Error

	if c.PalmFolderPath == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: palmFolderPath", ErrMissingPath))
	}
	if c.ScriptsFolderPath == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: scriptsFolderPath", ErrMissingPath))
	}
	if c.PythonParserScript == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: pythonParserScript", ErrMissingPath))
	}

	return merr.ErrorOrNil()
}

// RequireScenarioPaths checks the paths scenario generation needs.
func (c *Config) RequireScenarioPaths() error {
	var merr *multierror.Error

	if c.ScenarioConfigsPath == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: scenarioConfigsPath", ErrMissingPath))
	}
	if c.GenerateScenarioPath == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: generateScenarioPath", ErrMissingPath))
	}
	if c.GenerateInputFolderPath == "" {
		merr = multierror.Append(merr, fmt.Errorf("%w: generateInputFolderPath", ErrMissingPath))
	}

	return merr.ErrorOrNil()
}
