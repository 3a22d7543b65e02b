// Package runner drives one zig build from launch to a resolved artifact.
package runner

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/core/ports"
)

// TracerName is the instrumentation name of the runner's spans.
const TracerName = "go.trai.ch/zigcli/runner"

// Span names.
const (
	SpanBuild   = "zig.build"
	SpanExecute = "zig.execute"
	SpanResolve = "zig.resolve"
)

// Runner implements ports.Executor. It launches the invocation, waits for it
// and resolves the artifact, moving through the run states
//
//	NotStarted -> Running -> Succeeded | FailedExit | FailedMissingArtifact
//	NotStarted -> FailedLaunch
//
// Every outcome is terminal; nothing is retried.
type Runner struct {
	process  ports.ProcessRunner
	resolver ports.ArtifactResolver
	logger   ports.Logger
	tracer   trace.Tracer
}

// Option configures a Runner.
type Option func(*Runner)

// WithTracer sets the tracer used for build spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		r.tracer = t
	}
}

// New creates a Runner. Spans go to the global tracer provider unless
// WithTracer is given.
func New(process ports.ProcessRunner, resolver ports.ArtifactResolver, logger ports.Logger, opts ...Option) *Runner {
	r := &Runner{
		process:  process,
		resolver: resolver,
		logger:   logger,
		tracer:   otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// run tracks the state of a single invocation.
type run struct {
	state domain.RunState
	span  trace.Span
}

func (r *run) transition(next domain.RunState) {
	if !r.state.CanTransition(next) {
		panic(fmt.Sprintf("runner: invalid transition %s -> %s", r.state, next))
	}
	r.state = next
	r.span.AddEvent("state", trace.WithAttributes(attribute.String("zig.state", next.String())))
}

// Run executes inv and returns the resolved artifact. Failures are
// *domain.BuildError values; a non-zero exit never reaches artifact
// discovery.
func (rn *Runner) Run(ctx context.Context, inv *domain.Invocation) (*domain.BuildResult, error) {
	ctx, span := rn.tracer.Start(ctx, SpanBuild, trace.WithAttributes(
		attribute.String("zig.tool", inv.Tool.String()),
		attribute.String("zig.command", inv.String()),
		attribute.String("zig.digest", inv.Digest()),
		attribute.String("zig.target", inv.Target.Triple.String()),
		attribute.String("zig.optimize", inv.Target.Optimize.String()),
	))
	defer span.End()

	st := &run{state: domain.StateNotStarted, span: span}
	rn.logger.Info("running: " + inv.String())

	out, err := rn.execute(ctx, inv)
	if err != nil {
		be := asBuildError(inv, err)
		if be.Kind == domain.KindLaunchFailure {
			st.transition(domain.StateFailedLaunch)
		} else {
			st.transition(domain.StateRunning)
			st.transition(domain.StateFailedExit)
		}
		return nil, fail(span, st.state, be)
	}
	st.transition(domain.StateRunning)

	result, err := rn.resolve(ctx, inv)
	if err != nil {
		st.transition(domain.StateFailedMissingArtifact)
		be := asBuildError(inv, err)
		be.ExitCode = out.ExitCode
		be.Stdout = out.Stdout
		be.Stderr = out.Stderr
		return nil, fail(span, st.state, be)
	}

	st.transition(domain.StateSucceeded)
	result.Stdout = out.Stdout
	result.Stderr = out.Stderr
	result.State = st.state

	span.SetAttributes(
		attribute.String("zig.state", st.state.String()),
		attribute.String("zig.artifact", result.Artifact),
	)
	span.SetStatus(codes.Ok, "")
	return result, nil
}

func (rn *Runner) execute(ctx context.Context, inv *domain.Invocation) (*domain.ProcessOutput, error) {
	ctx, span := rn.tracer.Start(ctx, SpanExecute)
	defer span.End()

	out, err := rn.process.Run(ctx, inv)
	if out != nil {
		span.SetAttributes(attribute.Int("zig.exit_code", out.ExitCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "zig failed")
	}
	return out, err
}

func (rn *Runner) resolve(ctx context.Context, inv *domain.Invocation) (*domain.BuildResult, error) {
	_, span := rn.tracer.Start(ctx, SpanResolve)
	defer span.End()

	result, err := rn.resolver.Resolve(inv)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "artifact missing")
		return nil, err
	}
	span.SetAttributes(attribute.StringSlice("zig.system_libs", result.SystemLibs))
	return result, nil
}

// asBuildError makes sure every failure carries the invocation context.
func asBuildError(inv *domain.Invocation, err error) *domain.BuildError {
	var be *domain.BuildError
	if errors.As(err, &be) {
		return be
	}
	return &domain.BuildError{
		Kind:     domain.KindBuildFailure,
		Tool:     inv.Tool.String(),
		Command:  inv.String(),
		Dir:      inv.Dir,
		ExitCode: -1,
		Err:      err,
	}
}

func fail(span trace.Span, state domain.RunState, be *domain.BuildError) error {
	span.SetAttributes(
		attribute.String("zig.state", state.String()),
		attribute.String("zig.error_kind", be.Kind.String()),
	)
	span.RecordError(be)
	span.SetStatus(codes.Error, be.Kind.String())
	return be
}
