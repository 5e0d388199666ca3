// Package launcher runs the pALM launcher and its helper scripts as child
// processes.
package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/Cyclone1070/palm/internal/config"
	"github.com/Cyclone1070/palm/internal/logging"
	"github.com/Cyclone1070/palm/internal/workflow"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// maxLineBytes bounds a single output line. Longer lines end the scan of
// that stream; the rest of it is discarded so the child never blocks.
const maxLineBytes = 1024 * 1024

// Request describes one launcher invocation.
type Request struct {
	Executable string // path to pALMLauncher.exe
	ConfigDir  string // config folder relative to the launcher's folder
	ConfigName string // liability_config_N.json inside ConfigDir
	Timeout    time.Duration
}

// Args returns the launcher's command line arguments.
func (r Request) Args() []string {
	return []string{"run", "--config", r.ConfigDir, "--configname", r.ConfigName}
}

// Launcher starts pALM runs and helper scripts.
type Launcher struct {
	config *config.Config
	logger *log.Logger
}

// New creates a Launcher with injected config.
func New(cfg *config.Config, logger *log.Logger) *Launcher {
	if cfg == nil {
		panic("cfg is required")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Launcher{config: cfg, logger: logger}
}

// Start runs the launcher and blocks until it exits.
//
// Every stdout and stderr line becomes a StdoutEvent or StderrEvent. When
// both streams are drained exactly one CompletedEvent follows, also when the
// process could not be started. The child runs in the launcher's own folder.
// A timeout (the request's, else the configured one) first interrupts the
// process and kills it after the grace period.
func (l *Launcher) Start(ctx context.Context, req Request, events chan<- workflow.Event) (err error) {
	defer func() {
		status := workflow.StatusSuccess
		if err != nil {
			status = fmt.Sprintf("Error: %s", err.Error())
		}
		send(ctx, events, workflow.CompletedEvent{Status: status})
	}()

	if req.Executable == "" {
		return &CommandError{Cmd: req.Executable, Stage: "resolve", Cause: ErrNoExecutable}
	}
	exe, err := filepath.Abs(req.Executable)
	if err != nil {
		return &CommandError{Cmd: req.Executable, Stage: "resolve", Cause: err}
	}

	// We don't use CommandContext here because we want to handle graceful shutdown
	cmd := exec.Command(exe, req.Args()...)
	cmd.Dir = filepath.Dir(exe)
	cmd.Stdin = nil
	cmd.WaitDelay = l.grace()
	hideWindow(cmd)

	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	l.logger.Debug("starting launcher", "exe", exe, "dir", cmd.Dir, "args", req.Args())
	if err := cmd.Start(); err != nil {
		stdoutW.Close()
		stderrW.Close()
		return &CommandError{Cmd: exe, Stage: "start", Cause: err}
	}

	var g errgroup.Group
	g.Go(func() error {
		return pump(ctx, stdoutR, events, func(s string) workflow.Event { return workflow.StdoutEvent{Line: s} })
	})
	g.Go(func() error {
		return pump(ctx, stderrR, events, func(s string) workflow.Event { return workflow.StderrEvent{Line: s} })
	})

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		stdoutW.Close()
		stderrW.Close()
		done <- err
	}()

	execErr := l.wait(ctx, cmd, done, l.timeout(req))

	// Output is drained before completion is reported.
	if scanErr := g.Wait(); scanErr != nil {
		l.logger.Warn("reading launcher output", "err", scanErr)
	}

	if execErr != nil {
		return &CommandError{Cmd: exe, Stage: "execution", Cause: execErr}
	}
	return nil
}

func (l *Launcher) wait(ctx context.Context, cmd *exec.Cmd, done <-chan error, timeout time.Duration) error {
	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return ctx.Err()
	case <-timeoutC:
		// Try graceful shutdown
		l.logger.Warn("launcher timed out, interrupting", "timeout", timeout)
		_ = cmd.Process.Signal(os.Interrupt)
		select {
		case <-done:
		case <-time.After(l.grace()):
			_ = cmd.Process.Kill()
			<-done
		}
		return ErrTimeout
	}
}

func (l *Launcher) timeout(req Request) time.Duration {
	if req.Timeout > 0 {
		return req.Timeout
	}
	return time.Duration(l.config.Run.TimeoutSeconds) * time.Second
}

func (l *Launcher) grace() time.Duration {
	return time.Duration(l.config.Run.GracefulShutdownMs) * time.Millisecond
}

// pump turns r into one event per line. After a scan error the remainder of
// r is discarded so the writer side never blocks.
func pump(ctx context.Context, r io.Reader, events chan<- workflow.Event, wrap func(string) workflow.Event) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		send(ctx, events, wrap(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return err
	}
	return nil
}

// send delivers ev unless ctx ends first or events is nil.
func send(ctx context.Context, events chan<- workflow.Event, ev workflow.Event) {
	if events == nil {
		return
	}
	select {
	case events <- ev:
	case <-ctx.Done():
	}
}

// ExitCode extracts the process exit code from err, -1 when there is none.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrTimeout) {
		return -1
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
