package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zigcli/internal/adapters/emitter"
	"go.trai.ch/zigcli/internal/adapters/logger"
	"go.trai.ch/zigcli/internal/adapters/zig"
	"go.trai.ch/zigcli/internal/app"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testRequest() *domain.BuildRequest {
	return &domain.BuildRequest{
		Target: domain.NewTargetDescription(
			domain.MustParseTriple("x86_64-unknown-linux-gnu"),
			domain.OptimizeReleaseFast,
			nil,
		),
		Config: domain.BuildConfiguration{
			Name:       "mylib",
			EntryPoint: "src/root.zig",
			OutputDir:  "/out",
		},
	}
}

type fixture struct {
	loader   *mocks.MockConfigLoader
	locator  *mocks.MockToolLocator
	executor *mocks.MockExecutor
	writer   *mocks.MockDirectiveWriter
	logger   *mocks.MockLogger
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		locator:  mocks.NewMockToolLocator(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		writer:   mocks.NewMockDirectiveWriter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(f.loader, f.locator, zig.NewBuilder(), f.executor, f.writer, f.logger)
	return f
}

func TestApp_Build(t *testing.T) {
	f := newFixture(t)
	overrides := domain.BuildSettings{Name: "mylib"}
	result := &domain.BuildResult{
		Name:     "mylib",
		Artifact: "/out/lib/libmylib.a",
		LibDir:   "/out/lib",
		State:    domain.StateSucceeded,
	}

	f.loader.EXPECT().Load("zigcli.yaml", overrides).Return(testRequest(), nil)
	f.locator.EXPECT().Resolve().Return(domain.ToolPath("zig"))
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *domain.Invocation) (*domain.BuildResult, error) {
			assert.Equal(t, domain.ToolPath("zig"), inv.Tool)
			assert.Equal(t, []string{
				"build", "--prefix", "/out", "src/root.zig",
				"-Dtarget=x86_64-linux-gnu", "-Doptimize=ReleaseFast",
			}, inv.Args)
			return result, nil
		})

	var out bytes.Buffer
	f.writer.EXPECT().Write(&out, "cargo", result).Return(nil)

	err := f.app.Build(context.Background(), app.BuildOptions{
		ConfigPath: "zigcli.yaml",
		Settings:   overrides,
		Format:     "cargo",
		Output:     &out,
	})
	require.NoError(t, err)
}

func TestApp_Build_DryRun(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("", gomock.Any()).Return(testRequest(), nil)
	f.locator.EXPECT().Resolve().Return(domain.ToolPath("/opt/zig/zig"))

	var out bytes.Buffer
	err := f.app.Build(context.Background(), app.BuildOptions{DryRun: true, Output: &out})
	require.NoError(t, err)

	assert.Equal(t,
		"/opt/zig/zig build --prefix /out src/root.zig -Dtarget=x86_64-linux-gnu -Doptimize=ReleaseFast\n",
		out.String())
}

func TestApp_Build_LoadError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("missing.yaml", gomock.Any()).Return(nil, errors.New("open missing.yaml: no such file"))

	err := f.app.Build(context.Background(), app.BuildOptions{ConfigPath: "missing.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Build_UnsupportedConfiguration(t *testing.T) {
	f := newFixture(t)
	req := testRequest()
	req.Config.Options = []string{"-Dtarget=x86_64-linux"}
	f.loader.EXPECT().Load("", gomock.Any()).Return(req, nil)
	f.locator.EXPECT().Resolve().Return(domain.ToolPath("zig"))

	err := f.app.Build(context.Background(), app.BuildOptions{})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnsupportedConfiguration))
}

func TestApp_Build_ExecutorError(t *testing.T) {
	f := newFixture(t)
	buildErr := &domain.BuildError{Kind: domain.KindBuildFailure, Tool: "zig", ExitCode: 1}
	f.loader.EXPECT().Load("", gomock.Any()).Return(testRequest(), nil)
	f.locator.EXPECT().Resolve().Return(domain.ToolPath("zig"))
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, buildErr)

	err := f.app.Build(context.Background(), app.BuildOptions{Output: &bytes.Buffer{}})
	require.Error(t, err)

	var got *domain.BuildError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 1, got.ExitCode)
}

func TestApp_Build_MissingImportLibrary(t *testing.T) {
	f := newFixture(t)
	result := &domain.BuildResult{
		Name:     "mylib",
		Artifact: `/out/bin/mylib.dll`,
		LibDir:   "/out/lib",
		Linkage:  domain.LinkageDynamic,
	}
	f.loader.EXPECT().Load("", gomock.Any()).Return(testRequest(), nil)
	f.locator.EXPECT().Resolve().Return(domain.ToolPath("zig"))
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(result, nil)
	f.logger.EXPECT().Warn("no import library found next to /out/bin/mylib.dll")
	f.writer.EXPECT().Write(gomock.Any(), "text", result).Return(nil)

	err := f.app.Build(context.Background(), app.BuildOptions{Format: "text", Output: &bytes.Buffer{}})
	require.NoError(t, err)
}

func TestApp_Build_WritesDirectives(t *testing.T) {
	f := newFixture(t)
	f.app = app.New(f.loader, f.locator, zig.NewBuilder(), f.executor, emitter.New(), f.logger)
	result := &domain.BuildResult{
		Name:       "mylib",
		Artifact:   "/out/lib/libmylib.a",
		LibDir:     "/out/lib",
		SystemLibs: []string{"c"},
	}
	f.loader.EXPECT().Load("", gomock.Any()).Return(testRequest(), nil)
	f.locator.EXPECT().Resolve().Return(domain.ToolPath("zig"))
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(result, nil)

	var out bytes.Buffer
	err := f.app.Build(context.Background(), app.BuildOptions{Format: "cgo", Output: &out})
	require.NoError(t, err)
	assert.Equal(t, "-L/out/lib -lmylib -lc\n", out.String())
}

func TestApp_Translate(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		in   string
		want string
	}{
		{"x86_64-unknown-linux-gnu", "x86_64-linux-gnu"},
		{"aarch64-apple-darwin", "aarch64-macos"},
		{"wasm32-unknown-unknown", "wasm32-freestanding"},
		{"mystery-arch-os", "mystery-arch-os"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := f.app.Translate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := f.app.Translate("  ")
	require.Error(t, err)
}

func TestApp_SetLogFormat(t *testing.T) {
	log := logger.New()
	a := app.New(nil, nil, nil, nil, nil, log)

	require.NoError(t, a.SetLogFormat("json"))
	require.NoError(t, a.SetLogFormat("pretty"))

	err := a.SetLogFormat("xml")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown output format"))
}
