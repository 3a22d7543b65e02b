// Package config provides the configuration loader for zigcli.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
	goos   string
	goarch string
}

// NewLoader creates a new Loader with the given logger. The default target
// is derived from the platform the binary runs on.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, goos: runtime.GOOS, goarch: runtime.GOARCH}
}

// WithHost overrides the platform used to derive the default target.
func (l *Loader) WithHost(goos, goarch string) *Loader {
	l.goos = goos
	l.goarch = goarch
	return l
}

// Load builds a request from the config file at path, with overrides applied
// on top. An empty path looks for zigcli.yaml in the project directory and
// carries on with defaults if there is none; an explicit path must exist.
//
// Relative paths are kept relative: zig runs in the project directory and
// resolves them there.
func (l *Loader) Load(path string, overrides domain.BuildSettings) (*domain.BuildRequest, error) {
	projectDir := overrides.ProjectDir

	configPath, err := findConfiguration(path, projectDir)
	if err != nil {
		return nil, err
	}

	var base domain.BuildSettings
	if configPath != "" {
		zf, err := l.loadZigfile(configPath)
		if err != nil {
			return nil, err
		}
		base = zf.settings()
		if projectDir == "" {
			projectDir = filepath.Dir(configPath)
		}
	}

	s := base.Merge(overrides)
	s.ProjectDir = projectDir

	req, err := resolve(s, l.goos, l.goarch)
	if err != nil {
		return nil, &domain.BuildError{Kind: domain.KindUnsupportedConfiguration, Err: err}
	}
	return req, nil
}

func findConfiguration(path, projectDir string) (string, error) {
	if path != "" {
		return path, nil
	}

	candidate := filepath.Join(projectDir, domain.ConfigFileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
	}
	return candidate, nil
}

func (l *Loader) loadZigfile(configPath string) (*Zigfile, error) {
	var zf Zigfile
	if err := readAndUnmarshalYAML(configPath, &zf); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	switch zf.Version {
	case domain.ConfigVersion:
	case "":
		l.Logger.Warn(fmt.Sprintf("%s has no 'version', assuming %q", configPath, domain.ConfigVersion))
	default:
		l.Logger.Warn(fmt.Sprintf("%s has unsupported version %q, reading it as %q",
			configPath, zf.Version, domain.ConfigVersion))
	}
	return &zf, nil
}

// resolve turns merged settings into a typed request, filling defaults.
func resolve(s domain.BuildSettings, goos, goarch string) (*domain.BuildRequest, error) {
	triple := domain.HostTriple(goos, goarch)
	if s.Triple != "" {
		t, err := domain.ParseTriple(s.Triple)
		if err != nil {
			return nil, err
		}
		triple = t
	}

	optimize := domain.OptimizeDebug
	switch {
	case s.Optimize != "":
		o, err := domain.ParseOptimize(s.Optimize)
		if err != nil {
			return nil, err
		}
		optimize = o
	case s.OptLevel != "":
		o, err := domain.OptimizeFromLevel(s.OptLevel)
		if err != nil {
			return nil, err
		}
		optimize = o
	}

	linkage, err := domain.ParseLinkage(s.Linkage)
	if err != nil {
		return nil, err
	}
	release, err := domain.ParseRelease(s.Release)
	if err != nil {
		return nil, err
	}

	outputDir := s.OutputDir
	if outputDir == "" {
		outputDir = domain.DefaultOutputDirName
	}
	cacheDir := s.CacheDir
	if cacheDir == "" {
		cacheDir = domain.DefaultCacheDir(outputDir)
	}
	entryPoint := s.EntryPoint
	if entryPoint == "" {
		entryPoint = domain.DefaultEntryPoint
	}

	cfg := domain.BuildConfiguration{
		Name:             s.Name,
		EntryPoint:       entryPoint,
		ProjectDir:       s.ProjectDir,
		OutputDir:        outputDir,
		CacheDir:         cacheDir,
		GlobalCacheDir:   s.GlobalCacheDir,
		PIC:              deref(s.PIC),
		BundleCompilerRT: deref(s.BundleCompilerRT),
		Linkage:          linkage,
		Release:          release,
		CPU:              s.CPU,
		Verbose:          deref(s.Verbose),
		Options:          append([]string(nil), s.Options...),
	}
	if s.Jobs != nil {
		cfg.Jobs = *s.Jobs
	}

	return &domain.BuildRequest{
		Target: domain.NewTargetDescription(triple, optimize, s.Features),
		Config: cfg,
	}, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
