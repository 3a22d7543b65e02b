package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zigcli/internal/adapters/config"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger).WithHost("linux", "amd64"), mockLogger
}

func ptr[T any](v T) *T {
	return &v
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	req, err := loader.Load("", domain.BuildSettings{Name: "zig_package", ProjectDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "x86_64-unknown-linux-gnu", req.Target.Triple.String())
	assert.Equal(t, domain.OptimizeDebug, req.Target.Optimize)
	assert.Empty(t, req.Target.FeatureNames())

	cfg := req.Config
	assert.Equal(t, "zig_package", cfg.Name)
	assert.Equal(t, "src/root.zig", cfg.EntryPoint)
	assert.Equal(t, dir, cfg.ProjectDir)
	assert.Equal(t, "zig-out", cfg.OutputDir)
	assert.Equal(t, filepath.Join("zig-out", ".zig-cache"), cfg.CacheDir)
	assert.Equal(t, domain.LinkageStatic, cfg.Linkage)
	assert.Equal(t, domain.ReleaseNone, cfg.Release)
	assert.False(t, cfg.PIC)
	assert.False(t, cfg.BundleCompilerRT)
	assert.Zero(t, cfg.Jobs)
}

func TestLoader_Load_File(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
name: mylib
entryPoint: lib/main.zig
outputDir: build/out
target: aarch64-apple-darwin
optimize: release-small
cpu: apple_m1
features:
  neon: true
  fp-armv8: false
pic: true
bundleCompilerRt: true
linkage: dynamic
release: safe
jobs: 8
verbose: true
options:
  - -Dstrip
  - -Dfoo=bar
`)

	req, err := loader.Load("", domain.BuildSettings{ProjectDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "aarch64-apple-darwin", req.Target.Triple.String())
	assert.Equal(t, domain.OptimizeReleaseSmall, req.Target.Optimize)
	assert.Equal(t, []string{"fp-armv8", "neon"}, req.Target.FeatureNames())

	cfg := req.Config
	assert.Equal(t, "mylib", cfg.Name)
	assert.Equal(t, "lib/main.zig", cfg.EntryPoint)
	assert.Equal(t, "build/out", cfg.OutputDir)
	assert.Equal(t, filepath.Join("build/out", ".zig-cache"), cfg.CacheDir)
	assert.Equal(t, "apple_m1", cfg.CPU)
	assert.True(t, cfg.PIC)
	assert.True(t, cfg.BundleCompilerRT)
	assert.Equal(t, domain.LinkageDynamic, cfg.Linkage)
	assert.Equal(t, domain.ReleaseSafe, cfg.Release)
	assert.Equal(t, 8, cfg.Jobs)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"-Dstrip", "-Dfoo=bar"}, cfg.Options)
}

func TestLoader_Load_OverridesWin(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `
version: "1"
name: mylib
optimize: release-small
pic: true
features:
  sse4.2: true
options: ["-Da"]
`)

	req, err := loader.Load("", domain.BuildSettings{
		ProjectDir: dir,
		Name:       "override",
		OptLevel:   "3",
		PIC:        ptr(false),
		Triple:     "x86_64-unknown-linux-musl",
		Features:   map[string]bool{"sse4.2": false, "avx2": true},
		Options:    []string{"-Db"},
	})
	require.NoError(t, err)

	assert.Equal(t, "override", req.Config.Name)
	assert.Equal(t, domain.OptimizeReleaseSafe, req.Target.Optimize, "opt level replaces the file's optimize")
	assert.False(t, req.Config.PIC)
	assert.Equal(t, "x86_64-unknown-linux-musl", req.Target.Triple.String())
	enabled, ok := req.Target.Feature("sse4.2")
	assert.True(t, ok)
	assert.False(t, enabled)
	assert.Equal(t, []string{"-Da", "-Db"}, req.Config.Options)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	path := createFile(t, dir, "custom.yaml", "version: \"1\"\nname: custom\n")

	req, err := loader.Load(path, domain.BuildSettings{})
	require.NoError(t, err)
	assert.Equal(t, "custom", req.Config.Name)
	assert.Equal(t, dir, req.Config.ProjectDir, "project dir defaults to the config file's directory")
}

func TestLoader_Load_ExplicitPathMissing(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"), domain.BuildSettings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, "name: [unterminated\n")

	_, err := loader.Load("", domain.BuildSettings{ProjectDir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_VersionWarnings(t *testing.T) {
	t.Run("missing version", func(t *testing.T) {
		loader, mockLogger := newLoader(t)
		dir := t.TempDir()
		createFile(t, dir, domain.ConfigFileName, "name: lib\n")
		mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

		_, err := loader.Load("", domain.BuildSettings{ProjectDir: dir})
		require.NoError(t, err)
	})

	t.Run("unknown version", func(t *testing.T) {
		loader, mockLogger := newLoader(t)
		dir := t.TempDir()
		createFile(t, dir, domain.ConfigFileName, "version: \"2\"\nname: lib\n")
		mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

		_, err := loader.Load("", domain.BuildSettings{ProjectDir: dir})
		require.NoError(t, err)
	})
}

func TestLoader_Load_UnsupportedValues(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.BuildSettings
		wantErr  string
	}{
		{
			name:     "optimize",
			settings: domain.BuildSettings{Optimize: "turbo"},
			wantErr:  "unknown optimization mode",
		},
		{
			name:     "opt level",
			settings: domain.BuildSettings{OptLevel: "4"},
			wantErr:  "unknown optimization mode",
		},
		{
			name:     "linkage",
			settings: domain.BuildSettings{Linkage: "both"},
			wantErr:  "unknown linkage",
		},
		{
			name:     "release",
			settings: domain.BuildSettings{Release: "fastest"},
			wantErr:  "unknown release mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			tt.settings.ProjectDir = t.TempDir()
			tt.settings.Name = "lib"

			_, err := loader.Load("", tt.settings)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindUnsupportedConfiguration))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_Load_HostTriple(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
	}{
		{"linux", "arm64", "aarch64-unknown-linux-gnu"},
		{"linux", "arm", "armv7-unknown-linux-gnueabihf"},
		{"darwin", "arm64", "aarch64-apple-darwin"},
		{"windows", "amd64", "x86_64-pc-windows-msvc"},
		{"freebsd", "amd64", "x86_64-unknown-freebsd"},
		{"wasip1", "wasm", "wasm32-wasi"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			loader := config.NewLoader(mocks.NewMockLogger(ctrl)).WithHost(tt.goos, tt.goarch)

			req, err := loader.Load("", domain.BuildSettings{Name: "lib", ProjectDir: t.TempDir()})
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Target.Triple.String())
		})
	}
}
