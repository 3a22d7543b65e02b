package runner_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/zigcli/internal/adapters/artifact"
	"go.trai.ch/zigcli/internal/adapters/shell"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/core/ports/mocks"
	"go.trai.ch/zigcli/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

func testInvocation() *domain.Invocation {
	return &domain.Invocation{
		Tool:   "zig",
		Args:   []string{"build", "--prefix", "/out", "src/root.zig"},
		Prefix: "/out",
		Target: domain.NewTargetDescription(
			domain.MustParseTriple("x86_64-unknown-linux-gnu"), domain.OptimizeReleaseFast, nil),
		Config: domain.BuildConfiguration{Name: "zig_package", EntryPoint: "src/root.zig", OutputDir: "/out"},
	}
}

type fixture struct {
	process  *mocks.MockProcessRunner
	resolver *mocks.MockArtifactResolver
	recorder *tracetest.SpanRecorder
	runner   *runner.Runner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	f := &fixture{
		process:  mocks.NewMockProcessRunner(ctrl),
		resolver: mocks.NewMockArtifactResolver(ctrl),
		recorder: sr,
	}
	f.runner = runner.New(f.process, f.resolver, log, runner.WithTracer(tp.Tracer("test")))
	return f
}

func (f *fixture) span(t *testing.T, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, s := range f.recorder.Ended() {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("span %q not recorded", name)
	return nil
}

func attr(s sdktrace.ReadOnlySpan, key string) attribute.Value {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == key {
			return kv.Value
		}
	}
	return attribute.Value{}
}

func stateEvents(s sdktrace.ReadOnlySpan) []string {
	var states []string
	for _, ev := range s.Events() {
		for _, kv := range ev.Attributes {
			if kv.Key == "zig.state" {
				states = append(states, kv.Value.AsString())
			}
		}
	}
	return states
}

func TestRunner_Run_Succeeded(t *testing.T) {
	f := newFixture(t)
	inv := testInvocation()

	f.process.EXPECT().Run(gomock.Any(), inv).Return(&domain.ProcessOutput{
		Stdout: []byte("installed\n"),
		Stderr: []byte("warning: deprecated\n"),
	}, nil)
	f.resolver.EXPECT().Resolve(inv).Return(&domain.BuildResult{
		Name:       "zig_package",
		Artifact:   "/out/lib/libzig_package.a",
		LibDir:     "/out/lib",
		SystemLibs: []string{"c"},
	}, nil)

	res, err := f.runner.Run(context.Background(), inv)
	require.NoError(t, err)

	assert.Equal(t, domain.StateSucceeded, res.State)
	assert.Equal(t, "/out/lib/libzig_package.a", res.Artifact)
	assert.Equal(t, "installed\n", string(res.Stdout))
	assert.Equal(t, "warning: deprecated\n", string(res.Stderr))

	build := f.span(t, runner.SpanBuild)
	assert.Equal(t, codes.Ok, build.Status().Code)
	assert.Equal(t, "succeeded", attr(build, "zig.state").AsString())
	assert.Equal(t, inv.Digest(), attr(build, "zig.digest").AsString())
	assert.Equal(t, []string{"running", "succeeded"}, stateEvents(build))
	assert.Len(t, f.recorder.Ended(), 3)
}

func TestRunner_Run_FailedExit(t *testing.T) {
	f := newFixture(t)
	inv := testInvocation()

	f.process.EXPECT().Run(gomock.Any(), inv).Return(
		&domain.ProcessOutput{Stderr: []byte("error: bad\n"), ExitCode: 1},
		&domain.BuildError{
			Kind:     domain.KindBuildFailure,
			Tool:     "zig",
			ExitCode: 1,
			Stderr:   []byte("error: bad\n"),
		},
	)
	// No artifact discovery after a failed exit.
	f.resolver.EXPECT().Resolve(gomock.Any()).Times(0)

	res, err := f.runner.Run(context.Background(), inv)
	require.Error(t, err)
	assert.Nil(t, res)

	var be *domain.BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, domain.KindBuildFailure, be.Kind)
	assert.Equal(t, "error: bad\n", string(be.Stderr))

	build := f.span(t, runner.SpanBuild)
	assert.Equal(t, codes.Error, build.Status().Code)
	assert.Equal(t, "failed-exit", attr(build, "zig.state").AsString())
	assert.Equal(t, []string{"running", "failed-exit"}, stateEvents(build))
	assert.Equal(t, int64(1), attr(f.span(t, runner.SpanExecute), "zig.exit_code").AsInt64())
}

func TestRunner_Run_FailedLaunch(t *testing.T) {
	f := newFixture(t)
	inv := testInvocation()

	f.process.EXPECT().Run(gomock.Any(), inv).Return(nil, &domain.BuildError{
		Kind: domain.KindLaunchFailure,
		Tool: "zig",
		Err:  errors.New("executable file not found"),
	})
	f.resolver.EXPECT().Resolve(gomock.Any()).Times(0)

	_, err := f.runner.Run(context.Background(), inv)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindLaunchFailure))

	build := f.span(t, runner.SpanBuild)
	assert.Equal(t, "failed-launch", attr(build, "zig.state").AsString())
	assert.Equal(t, []string{"failed-launch"}, stateEvents(build))
}

func TestRunner_Run_FailedMissingArtifact(t *testing.T) {
	f := newFixture(t)
	inv := testInvocation()

	f.process.EXPECT().Run(gomock.Any(), inv).Return(&domain.ProcessOutput{
		Stdout: []byte("install step done\n"),
		Stderr: []byte("warning: installed nothing\n"),
	}, nil)
	f.resolver.EXPECT().Resolve(inv).Return(nil, &domain.BuildError{
		Kind:     domain.KindMissingArtifact,
		Tool:     "zig",
		Expected: "/out/lib/libzig_package.a",
	})

	res, err := f.runner.Run(context.Background(), inv)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, domain.IsKind(err, domain.KindMissingArtifact))
	assert.False(t, domain.IsKind(err, domain.KindBuildFailure))

	var be *domain.BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "install step done\n", string(be.Stdout))
	assert.Equal(t, "warning: installed nothing\n", string(be.Stderr))
	assert.Equal(t, 0, be.ExitCode)
	assert.Contains(t, err.Error(), "warning: installed nothing")

	build := f.span(t, runner.SpanBuild)
	assert.Equal(t, "failed-missing-artifact", attr(build, "zig.state").AsString())
	assert.Equal(t, "MissingArtifactFailure", attr(build, "zig.error_kind").AsString())
	assert.Equal(t, codes.Error, f.span(t, runner.SpanResolve).Status().Code)
}

func TestRunner_Run_PlainErrorBecomesBuildError(t *testing.T) {
	f := newFixture(t)
	inv := testInvocation()

	f.process.EXPECT().Run(gomock.Any(), inv).Return(nil, errors.New("pipe closed"))

	_, err := f.runner.Run(context.Background(), inv)
	require.Error(t, err)

	var be *domain.BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, domain.KindBuildFailure, be.Kind)
	assert.Equal(t, inv.String(), be.Command)
	assert.Contains(t, err.Error(), "pipe closed")
}

func TestRunner_Run_WithRealProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	inv := testInvocation()
	inv.Tool = "sh"
	inv.Args = []string{"-c", "mkdir -p zig-out/lib && : > zig-out/lib/libzig_package.a && echo done"}
	inv.Dir = dir
	inv.Prefix = "zig-out"

	r := runner.New(shell.NewRunner(log), artifact.NewResolver(), log)
	res, err := r.Run(context.Background(), inv)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "zig-out", "lib", "libzig_package.a"), res.Artifact)
	assert.Equal(t, []string{"c"}, res.SystemLibs)
	assert.Equal(t, "done\n", string(res.Stdout))
	assert.Equal(t, domain.StateSucceeded, res.State)
}

func TestRunner_Run_RealProcessEmptyOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	inv := testInvocation()
	inv.Tool = "sh"
	inv.Args = []string{"-c", "exit 0"}
	inv.Dir = t.TempDir()
	inv.Prefix = "zig-out"

	r := runner.New(shell.NewRunner(log), artifact.NewResolver(), log)
	_, err := r.Run(context.Background(), inv)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindMissingArtifact))
}

func TestRunner_Run_RealProcessMissingArtifactKeepsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn("warning: installed nothing")

	inv := testInvocation()
	inv.Tool = "sh"
	inv.Args = []string{"-c", "echo 'warning: installed nothing' >&2"}
	inv.Dir = t.TempDir()
	inv.Prefix = "zig-out"

	r := runner.New(shell.NewRunner(log), artifact.NewResolver(), log)
	_, err := r.Run(context.Background(), inv)
	require.Error(t, err)

	var be *domain.BuildError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, domain.KindMissingArtifact, be.Kind)
	assert.Equal(t, "warning: installed nothing\n", string(be.Stderr))
	assert.Contains(t, be.Message(), "stderr:\nwarning: installed nothing")
}
