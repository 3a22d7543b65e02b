// Package zig turns a target description and build configuration into a
// zig build command line.
package zig

// Command line spellings understood by zig build. The zig CLI changes
// between releases, so no other file spells out a flag.
const (
	subcommandBuild = "build"

	flagPrefix           = "--prefix"
	flagTarget           = "-Dtarget="
	flagOptimize         = "-Doptimize="
	flagPIC              = "-Dpic"
	flagBundleCompilerRT = "--bundle-compiler-rt"

	flagCPU            = "-Dcpu="
	flagLinkageDynamic = "-Dlinkage=dynamic"
	flagRelease        = "--release"
	flagJobs           = "-j"
	flagCacheDir       = "--cache-dir"
	flagGlobalCacheDir = "--global-cache-dir"
	flagVerbose        = "--verbose"
	flagProminentErrs  = "--prominent-compile-errors"
)

// Values of -Doptimize.
const (
	optimizeDebug        = "Debug"
	optimizeReleaseFast  = "ReleaseFast"
	optimizeReleaseSafe  = "ReleaseSafe"
	optimizeReleaseSmall = "ReleaseSmall"
)

// cpuBaseline is the -Dcpu model used when only features are toggled.
const cpuBaseline = "baseline"
