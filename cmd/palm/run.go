package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Cyclone1070/palm/internal/config"
	"github.com/Cyclone1070/palm/internal/fsutil"
	"github.com/Cyclone1070/palm/internal/launcher"
	"github.com/Cyclone1070/palm/internal/liability"
	"github.com/Cyclone1070/palm/internal/logging"
	"github.com/Cyclone1070/palm/internal/palmpath"
	"github.com/Cyclone1070/palm/internal/ui"
	"github.com/Cyclone1070/palm/internal/ui/services"
	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/Cyclone1070/palm/internal/workflow/pipeline"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// ErrRunFailed is returned when a run completed but reported errors.
var ErrRunFailed = errors.New("run finished with errors")

type runOptions struct {
	module      string
	configDir   string
	overrides   []string
	tui         bool
	timeout     time.Duration
	reportStyle string
	noReport    bool
}

func newRunCmd(a *app) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Write the next config version, launch pALM on it and parse its output",
		Long: `Reads liability_config.json from the config folder, applies --set
overrides, writes the result as the next liability_config_N.json next to it
and launches pALM against that file. When the launcher exits cleanly the
module's parser script is run over the output.

--config is a folder path, or a folder name below the module's config folder.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.module, "module", "m", string(config.ModuleValuation), moduleFlagUsage())
	f.StringVarP(&opts.configDir, "config", "c", "", "run config folder")
	f.StringArrayVar(&opts.overrides, "set", nil, "override a config key (key=value, repeatable)")
	f.BoolVar(&opts.tui, "tui", false, "follow the run in the terminal viewer")
	f.DurationVar(&opts.timeout, "timeout", 0, "stop the launcher after this long (default: run.timeoutSeconds)")
	f.StringVar(&opts.reportStyle, "report-style", "", "glamour style for the run report (dark, light, notty; default: auto)")
	f.BoolVar(&opts.noReport, "no-report", false, "skip the run report")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (a *app) run(cmd *cobra.Command, opts *runOptions) error {
	logger := logging.FromContext(cmd.Context())
	cfg, err := a.Config(cmd.Context())
	if err != nil {
		return err
	}
	if err := cfg.RequireRunPaths(); err != nil {
		return err
	}
	module, err := config.ParseModule(opts.module)
	if err != nil {
		return err
	}

	dir, err := resolveConfigDir(cfg, module, opts.configDir)
	if err != nil {
		return err
	}
	doc, _, err := readDocument(cmd.Context(), dir)
	if err != nil {
		return err
	}
	doc, err = liability.Apply(doc, opts.overrides)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	events := make(chan workflow.Event, 64)
	runner := pipeline.NewRunner(cfg, launcher.New(cfg, logger), fsutil.NewOSFileSystem(), events, logger)

	type outcome struct {
		res *pipeline.RunResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		defer close(events)
		res, err := runner.Run(ctx, pipeline.RunRequest{
			Module:    module,
			ConfigDir: dir,
			Document:  doc,
			Timeout:   opts.timeout,
		})
		done <- outcome{res: res, err: err}
	}()

	var state workflow.RunState
	if opts.tui {
		title := fmt.Sprintf("pALM %s: %s", module, palmpath.Base(dir))
		var watchErr error
		state, watchErr = ui.Watch(ctx, title, events, cmd.InOrStdin(), cmd.OutOrStdout())
		switch {
		case watchErr != nil:
			logger.Warn("run viewer unavailable, printing output", "err", watchErr)
			state = followEvents(events, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
		case !state.Done:
			// Quit before the run ended. Stop it and let the pipeline finish.
			cancel()
			fallthrough
		default:
			for range events {
			}
		}
	} else {
		state = followEvents(events, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
	}

	out := <-done
	if !opts.noReport {
		printReport(cmd.OutOrStdout(), string(module)+" run", state, out.res, opts.reportStyle)
	}

	if out.err != nil {
		return out.err
	}
	if state.HadError {
		return ErrRunFailed
	}
	return nil
}

// followEvents prints process output as it arrives and returns the final
// state once events closes.
func followEvents(events <-chan workflow.Event, stdout, stderr io.Writer, logger *log.Logger) workflow.RunState {
	var state workflow.RunState
	for ev := range events {
		state.Apply(ev)
		switch e := ev.(type) {
		case workflow.StdoutEvent:
			fmt.Fprintln(stdout, e.Line)
		case workflow.StderrEvent:
			fmt.Fprintln(stderr, e.Line)
		case workflow.StageEvent:
			logger.Info("stage", "stage", e.Stage, "detail", e.Detail)
		case workflow.CompletedEvent:
			if e.Succeeded() {
				logger.Info("launcher finished", "status", e.Status)
			} else {
				logger.Error("launcher finished", "status", e.Status)
			}
		}
	}
	return state
}

func printReport(w io.Writer, title string, state workflow.RunState, res *pipeline.RunResult, style string) {
	var fields []services.ReportField
	if res != nil {
		fields = []services.ReportField{
			{Name: "Run", Value: res.ID},
			{Name: "Config", Value: res.ConfigName},
			{Name: "Launch folder", Value: res.Traversal},
			{Name: "Output", Value: res.OutputPath},
		}
		if res.Parse != nil && res.Parse.Stdout != "" {
			state.Output = append(state.Output, res.Parse.Stdout)
		}
	}
	report := services.RunReport(title, state, fields)
	fmt.Fprintln(w, services.RenderMarkdown(report, 100, services.NewGlamourRenderer(style)))
}

// resolveConfigDir accepts an existing folder, or a folder name below the
// module's config folder.
func resolveConfigDir(cfg *config.Config, module config.Module, arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return "", err
		}
		return palmpath.Normalize(abs), nil
	}

	base, err := cfg.ConfigsDir(module)
	if err != nil {
		return "", err
	}
	dir := palmpath.ResolvePath(base, arg)
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("config folder %q: %w", arg, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("config folder %q is not a directory", dir)
	}
	return dir, nil
}
