package zig

import (
	"slices"
	"strconv"

	"go.trai.ch/zerr"
	"go.trai.ch/zigcli/internal/core/domain"
)

// Builder implements ports.InvocationBuilder for zig build.
// It performs no I/O: the same inputs always produce the same invocation.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build assembles the zig build command line. The argument order is fixed:
//
//	build --prefix <out> <entry> -Dtarget=.. -Doptimize=.. [-Dpic] [--bundle-compiler-rt]
//
// followed by cpu, linkage, release, jobs, cache and verbosity flags, and
// finally the user's -D options in the order given. The entry point is not
// checked for existence.
func (b *Builder) Build(
	tool domain.ToolPath,
	target domain.TargetDescription,
	cfg domain.BuildConfiguration,
) (*domain.Invocation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, unsupported(tool, err)
	}
	if err := target.Validate(); err != nil {
		return nil, unsupported(tool, err)
	}
	optimize, ok := optimizeValue(target.Optimize)
	if !ok {
		return nil, unsupported(tool, zerr.With(domain.ErrUnknownOptimize, "optimize", int(target.Optimize)))
	}

	args := make([]string, 0, 16+len(cfg.Options))
	args = append(args,
		subcommandBuild,
		flagPrefix, cfg.OutputDir,
		cfg.EntryPoint,
		flagTarget+TranslateTriple(target.Triple),
		flagOptimize+optimize,
	)
	if cfg.PIC {
		args = append(args, flagPIC)
	}
	if cfg.BundleCompilerRT {
		args = append(args, flagBundleCompilerRT)
	}

	if cpu := cpuValue(target, cfg.CPU); cpu != "" {
		args = append(args, flagCPU+cpu)
	}
	if cfg.Linkage == domain.LinkageDynamic {
		args = append(args, flagLinkageDynamic)
	}
	if rel := releaseFlag(cfg.Release); rel != "" {
		args = append(args, rel)
	}
	if cfg.Jobs > 0 {
		args = append(args, flagJobs+strconv.Itoa(cfg.Jobs))
	}
	if cfg.CacheDir != "" {
		args = append(args, flagCacheDir, cfg.CacheDir)
	}
	if cfg.GlobalCacheDir != "" {
		args = append(args, flagGlobalCacheDir, cfg.GlobalCacheDir)
	}
	if cfg.Verbose {
		args = append(args, flagVerbose, flagProminentErrs)
	}
	args = append(args, cfg.Options...)

	cfg.Options = slices.Clone(cfg.Options)
	return &domain.Invocation{
		Tool:   tool,
		Args:   args,
		Dir:    cfg.ProjectDir,
		Prefix: cfg.OutputDir,
		Target: target,
		Config: cfg,
	}, nil
}

func unsupported(tool domain.ToolPath, err error) error {
	return &domain.BuildError{
		Kind: domain.KindUnsupportedConfiguration,
		Tool: tool.String(),
		Err:  err,
	}
}
