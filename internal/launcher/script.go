package launcher

import (
	"context"
	"io"
	"os/exec"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ScriptRequest describes a helper script run.
type ScriptRequest struct {
	Interpreter string // defaults to the configured python
	Script      string
	Args        []string
	Dir         string // defaults to the script's folder
}

// ScriptResult represents the outcome of a script run.
type ScriptResult struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// RunScript runs "<interpreter> <script> args..." and buffers its output.
// A non-zero exit returns a ScriptError carrying the script's stderr.
func (l *Launcher) RunScript(ctx context.Context, req ScriptRequest) (*ScriptResult, error) {
	interpreter := req.Interpreter
	if interpreter == "" {
		interpreter = l.config.Run.Python
	}
	dir := req.Dir
	if dir == "" {
		dir = filepath.Dir(req.Script)
	}

	cmd := exec.CommandContext(ctx, interpreter, append([]string{req.Script}, req.Args...)...)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.WaitDelay = l.grace()
	hideWindow(cmd)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &CommandError{Cmd: interpreter, Cause: err, Stage: "start"}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &CommandError{Cmd: interpreter, Cause: err, Stage: "start"}
	}

	l.logger.Debug("running script", "interpreter", interpreter, "script", req.Script, "args", req.Args, "dir", dir)
	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: interpreter, Cause: err, Stage: "start"}
	}

	res := l.collectOutput(stdoutPipe, stderrPipe)

	if err := cmd.Wait(); err != nil {
		res.ExitCode = ExitCode(err)
		return res, &ScriptError{Script: req.Script, ExitCode: res.ExitCode, Stderr: res.Stderr, Cause: err}
	}

	return res, nil
}

func (l *Launcher) collectOutput(stdout, stderr io.Reader) *ScriptResult {
	maxBytes := int(l.config.Run.MaxScriptOutputBytes)

	stdoutBuf := newCappedBuffer(maxBytes)
	stderrBuf := newCappedBuffer(maxBytes)

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(stdoutBuf, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(stderrBuf, stderr)
		return err
	})
	if err := g.Wait(); err != nil {
		l.logger.Debug("reading script output", "err", err)
	}

	return &ScriptResult{
		Stdout:    stdoutBuf.String(),
		Stderr:    stderrBuf.String(),
		Truncated: stdoutBuf.Truncated() || stderrBuf.Truncated(),
	}
}
