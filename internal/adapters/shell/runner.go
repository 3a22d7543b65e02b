// Package shell launches the build tool and captures what it prints.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner that streams the tool's output to logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run launches the invocation and blocks until the process exits. Stdout and
// stderr are captured into separate buffers while being streamed line by
// line to the logger. The process is not tied to ctx: the host build owns
// cancellation and timeouts.
//
// A process that cannot be started yields a BuildError of kind
// KindLaunchFailure. A non-zero exit yields KindBuildFailure together with
// the captured output, which is also returned.
func (r *Runner) Run(_ context.Context, inv *domain.Invocation) (*domain.ProcessOutput, error) {
	cmd := exec.Command(inv.Tool.String(), inv.Args...) //nolint:gosec,noctx // tool is user configured
	cmd.Dir = inv.Dir

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, r.launchError(inv, zerr.Wrap(err, "failed to open stdout pipe"))
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, r.launchError(inv, zerr.Wrap(err, "failed to open stderr pipe"))
	}

	if err := cmd.Start(); err != nil {
		return nil, r.launchError(inv, zerr.Wrap(err, "failed to start process"))
	}

	var stdout, stderr bytes.Buffer
	stdoutLog := &logWriter{logger: r.logger, stream: domain.StreamStdout}
	stderrLog := &logWriter{logger: r.logger, stream: domain.StreamStderr}

	// Both pipes must be drained before Wait, or a chatty tool blocks on a
	// full pipe buffer.
	var g errgroup.Group
	g.Go(func() error {
		return drain(stdoutPipe, &stdout, stdoutLog)
	})
	g.Go(func() error {
		return drain(stderrPipe, &stderr, stderrLog)
	})
	readErr := g.Wait()
	waitErr := cmd.Wait()

	out := &domain.ProcessOutput{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if waitErr != nil {
		out.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
		}
		return out, r.buildError(inv, out, zerr.With(zerr.Wrap(waitErr, "command failed"), "exit_code", out.ExitCode))
	}
	if readErr != nil {
		out.ExitCode = -1
		return out, r.buildError(inv, out, zerr.Wrap(readErr, "failed to read process output"))
	}

	return out, nil
}

func (r *Runner) launchError(inv *domain.Invocation, err error) error {
	return &domain.BuildError{
		Kind:     domain.KindLaunchFailure,
		Tool:     inv.Tool.String(),
		Command:  inv.String(),
		Dir:      inv.Dir,
		ExitCode: -1,
		Err:      err,
	}
}

func (r *Runner) buildError(inv *domain.Invocation, out *domain.ProcessOutput, err error) error {
	return &domain.BuildError{
		Kind:     domain.KindBuildFailure,
		Tool:     inv.Tool.String(),
		Command:  inv.String(),
		Dir:      inv.Dir,
		ExitCode: out.ExitCode,
		Stdout:   out.Stdout,
		Stderr:   out.Stderr,
		Err:      err,
	}
}

// drain copies src into both the capture buffer and the line logger.
func drain(src io.Reader, capture *bytes.Buffer, log *logWriter) error {
	_, err := io.Copy(io.MultiWriter(capture, log), src)
	_ = log.Close()
	return err
}

type logWriter struct {
	logger ports.Logger
	stream domain.Stream
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line that has no newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	switch l := w.logger.(type) {
	case ports.StreamLogger:
		l.Stream(w.stream, msg)
	default:
		if w.stream == domain.StreamStdout {
			w.logger.Info(msg)
		} else {
			w.logger.Warn(msg)
		}
	}
}
