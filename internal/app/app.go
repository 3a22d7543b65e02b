// Package app implements the application layer for zigcli.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zigcli/internal/adapters/logger" //nolint:depguard // log format is applied in app layer
	"go.trai.ch/zigcli/internal/adapters/zig"    //nolint:depguard // triple translation is exposed as-is
	"go.trai.ch/zigcli/internal/core/domain"
	"go.trai.ch/zigcli/internal/core/ports"
)

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	locator  ports.ToolLocator
	builder  ports.InvocationBuilder
	executor ports.Executor
	writer   ports.DirectiveWriter
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locator ports.ToolLocator,
	builder ports.InvocationBuilder,
	executor ports.Executor,
	writer ports.DirectiveWriter,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		locator:  locator,
		builder:  builder,
		executor: executor,
		writer:   writer,
		logger:   log,
	}
}

// BuildOptions configures the Build method.
type BuildOptions struct {
	// ConfigPath is an explicit config file. Empty looks for zigcli.yaml.
	ConfigPath string
	// Settings override values from the config file.
	Settings domain.BuildSettings
	// Format selects how the result is printed.
	Format string
	// DryRun prints the command line instead of running it.
	DryRun bool
	// Output receives the result. Nil means stdout.
	Output io.Writer
}

// Plan resolves the tool and configuration and returns the invocation a
// build would run, without running it.
func (a *App) Plan(opts BuildOptions) (*domain.Invocation, error) {
	req, err := a.loader.Load(opts.ConfigPath, opts.Settings)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	tool := a.locator.Resolve()
	inv, err := a.builder.Build(tool, req.Target, req.Config)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Build runs zig for the configured library and prints the result.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	inv, err := a.Plan(opts)
	if err != nil {
		return err
	}

	if opts.DryRun {
		_, err := fmt.Fprintln(out, inv.String())
		return err
	}

	result, err := a.executor.Run(ctx, inv)
	if err != nil {
		return err
	}

	for _, line := range warningsFor(result) {
		a.logger.Warn(line)
	}
	return a.writer.Write(out, opts.Format, result)
}

// warningsFor reports link requirements the host could easily miss.
func warningsFor(r *domain.BuildResult) []string {
	var warnings []string
	if r.Linkage == domain.LinkageDynamic && len(r.Companions) == 0 && strings.HasSuffix(r.Artifact, ".dll") {
		warnings = append(warnings, "no import library found next to "+r.Artifact)
	}
	return warnings
}

// Translate converts a host target triple into zig's spelling.
func (a *App) Translate(triple string) (string, error) {
	t, err := domain.ParseTriple(triple)
	if err != nil {
		return "", err
	}
	return zig.TranslateTriple(t), nil
}

// SetLogFormat switches the logger between pretty and JSON output.
func (a *App) SetLogFormat(format string) error {
	f, err := logger.ParseFormat(format)
	if err != nil {
		return err
	}
	if l, ok := a.logger.(interface{ SetFormat(logger.Format) }); ok {
		l.SetFormat(f)
	}
	return nil
}
