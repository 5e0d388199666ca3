// Package pipeline drives a complete pALM run: write the next config
// version, launch pALM against it, then parse its output with the
// configured script.
package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/Cyclone1070/palm/internal/artifact"
	"github.com/Cyclone1070/palm/internal/config"
	"github.com/Cyclone1070/palm/internal/launcher"
	"github.com/Cyclone1070/palm/internal/liability"
	"github.com/Cyclone1070/palm/internal/logging"
	"github.com/Cyclone1070/palm/internal/palmpath"
	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// RunRequest describes one run.
type RunRequest struct {
	// Module selects how the output is located and parsed. An empty module
	// skips output parsing.
	Module config.Module
	// ConfigDir is the run's config folder, where the new config version is
	// written and which the launcher is pointed at.
	ConfigDir string
	Document  liability.Document
	Timeout   time.Duration
}

// RunResult records what a run did.
type RunResult struct {
	ID         string
	ConfigName string
	// Traversal is the config folder relative to the palm folder. Launched
	// is false when there was none.
	Traversal  string
	Launched   bool
	OutputPath string
	RelOutput  string
	Parse      *launcher.ScriptResult
}

// Runner executes runs and reports progress on an event channel.
type Runner struct {
	config  *config.Config
	process processRunner
	store   configStore
	events  chan<- workflow.Event
	logger  *log.Logger
	newID   func() string
}

// NewRunner creates a Runner. events may be nil.
func NewRunner(cfg *config.Config, process processRunner, store configStore, events chan<- workflow.Event, logger *log.Logger) *Runner {
	if cfg == nil {
		panic("cfg is required")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{
		config:  cfg,
		process: process,
		store:   store,
		events:  events,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// OutputSubpath returns where a module's run writes the file the parser
// script reads, relative to the palm folder. ok is false for modules
// without a parse step.
func OutputSubpath(module config.Module, s liability.Summary) (string, bool) {
	switch module {
	case config.ModuleValuation, config.ModuleSAA:
		return s.CashPath, true
	case config.ModuleLiabilityAnalytics:
		return s.CashPath + s.FileName + "_LiabilityOutput_Scenario_0.csv", true
	case config.ModuleRiskAnalytics:
		return s.CashPath + "DebugInfo_Scenario_" + s.FileName + "_0.csv", true
	default:
		return "", false
	}
}

// Run writes the next liability_config_N.json into req.ConfigDir, launches
// pALM against it and runs the parser script over the module's output.
//
// The launch is skipped when req.ConfigDir resolves to the palm folder
// itself. A launch failure ends the run before parsing. The returned result
// is filled up to the step that failed.
func (r *Runner) Run(ctx context.Context, req RunRequest) (res *RunResult, err error) {
	res = &RunResult{ID: r.newID()}
	logger := r.logger.With("run", res.ID)

	defer func() {
		if err != nil {
			logger.Error("run failed", "err", err)
			r.emit(ctx, workflow.FailedEvent{Err: err})
		}
		r.emit(ctx, workflow.DoneEvent{})
	}()

	if req.Document == nil {
		return res, ErrNoDocument
	}

	palmFolder := palmpath.Normalize(r.config.PalmFolderPath)
	traversal, hasTraversal := palmpath.TraversalPathToFolder(palmFolder, req.ConfigDir)
	res.Traversal = traversal

	r.emit(ctx, workflow.StageEvent{Stage: workflow.StageWriteConfig, Detail: req.ConfigDir})
	name, err := liability.WriteNext(r.store, req.ConfigDir, req.Document)
	if err != nil {
		return res, &StageError{Stage: workflow.StageWriteConfig, Cause: err}
	}
	res.ConfigName = name
	logger.Info("wrote config", "dir", req.ConfigDir, "name", name)

	if hasTraversal {
		exe := r.config.Launcher()
		r.emit(ctx, workflow.StageEvent{Stage: workflow.StageLaunch, Detail: exe})
		launchReq := launcher.Request{
			Executable: exe,
			ConfigDir:  traversal,
			ConfigName: name,
			Timeout:    req.Timeout,
		}
		if err := r.process.Start(ctx, launchReq, r.events); err != nil {
			return res, &StageError{Stage: workflow.StageLaunch, Cause: err}
		}
		res.Launched = true
	} else {
		logger.Warn("config folder is the palm folder, nothing to launch", "dir", req.ConfigDir)
	}

	if palmFolder == "" {
		return res, nil
	}

	summary, err := req.Document.Summary()
	if err != nil {
		return res, &StageError{Stage: workflow.StageParse, Cause: err}
	}
	sub, ok := OutputSubpath(req.Module, summary)
	if !ok {
		return res, nil
	}

	res.OutputPath = palmpath.ResolvePath(palmFolder, sub)
	res.RelOutput = palmpath.RelativePathFrom(r.config.ScriptsFolderPath, res.OutputPath)

	script := palmpath.Normalize(r.config.PythonParserScript)
	r.emit(ctx, workflow.StageEvent{Stage: workflow.StageParse, Detail: script})
	logger.Info("parsing output", "module", req.Module, "output", res.RelOutput, "runName", summary.FileName)

	res.Parse, err = r.process.RunScript(ctx, launcher.ScriptRequest{
		Script: script,
		Args:   []string{string(req.Module), res.RelOutput, summary.FileName},
	})
	if err != nil {
		return res, &StageError{Stage: workflow.StageParse, Cause: err}
	}

	return res, nil
}

// GenerateResult records what scenario generation did.
type GenerateResult struct {
	ConfigName string
	Script     *launcher.ScriptResult
}

// GenerateScenarios writes doc as the next config_ESG_OTF_N.json into the
// scenario configs folder and runs the generator script on it.
func (r *Runner) GenerateScenarios(ctx context.Context, doc liability.Document) (res *GenerateResult, err error) {
	defer func() {
		if err != nil {
			r.emit(ctx, workflow.FailedEvent{Err: err})
		}
		r.emit(ctx, workflow.DoneEvent{})
	}()

	if doc == nil {
		return nil, ErrNoDocument
	}
	if err := r.config.RequireScenarioPaths(); err != nil {
		return nil, err
	}

	// spotRates only feeds the editor; the generator reads the per-curve maps.
	out := doc.Clone()
	delete(out, "spotRates")

	dir := r.config.ScenarioConfigsPath
	names, err := r.store.ListNames(dir)
	if err != nil {
		return nil, &StageError{Stage: workflow.StageGenerate, Cause: err}
	}
	data, err := liability.Encode(out)
	if err != nil {
		return nil, &StageError{Stage: workflow.StageGenerate, Cause: err}
	}

	res = &GenerateResult{ConfigName: artifact.NextScenarioConfig(names)}
	if err := r.store.WriteFileAtomic(filepath.Join(dir, res.ConfigName), data, 0o644); err != nil {
		return res, &StageError{Stage: workflow.StageGenerate, Cause: err}
	}

	workDir := palmpath.Normalize(r.config.GenerateInputFolderPath) + palmpath.Separator + r.config.Run.ScenarioWorkDir
	r.emit(ctx, workflow.StageEvent{Stage: workflow.StageGenerate, Detail: res.ConfigName})
	r.logger.Info("generating scenarios", "config", res.ConfigName, "dir", workDir)

	res.Script, err = r.process.RunScript(ctx, launcher.ScriptRequest{
		Script: palmpath.Normalize(r.config.GenerateScenarioPath),
		Args:   []string{res.ConfigName},
		Dir:    workDir,
	})
	if err != nil {
		return res, &StageError{Stage: workflow.StageGenerate, Cause: err}
	}
	return res, nil
}

// GenerateLiabilityConfig runs the liability config script on an input
// workbook in the UI directory.
func (r *Runner) GenerateLiabilityConfig(ctx context.Context, inputFile string) (*launcher.ScriptResult, error) {
	input := palmpath.Normalize(r.config.UIDirectory) + palmpath.Separator + inputFile
	r.logger.Info("generating liability config", "input", input)

	res, err := r.process.RunScript(ctx, launcher.ScriptRequest{
		Script: palmpath.Normalize(r.config.PythonLiabilityConfigScript),
		Args:   []string{input},
	})
	if err != nil {
		return res, &StageError{Stage: workflow.StageGenerate, Cause: err}
	}
	return res, nil
}

func (r *Runner) emit(ctx context.Context, ev workflow.Event) {
	if r.events == nil {
		return
	}
	select {
	case r.events <- ev:
	case <-ctx.Done():
	}
}
