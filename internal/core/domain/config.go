package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var validLibraryNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// reservedOptions are the -D keys the invocation builder emits itself.
var reservedOptions = map[string]struct{}{
	"target":         {},
	"cpu":            {},
	"optimize":       {},
	"dynamic-linker": {},
	"pic":            {},
	"linkage":        {},
}

// BuildConfiguration holds the user options layered on top of a
// TargetDescription.
type BuildConfiguration struct {
	// Name is the library name; the artifact is derived from it.
	Name string
	// EntryPoint is the root source file, relative to ProjectDir unless absolute.
	EntryPoint string
	// ProjectDir is the directory containing the zig project. Empty means
	// the current directory.
	ProjectDir string
	// OutputDir is the install prefix the library lands in.
	OutputDir string
	// CacheDir is the local zig cache. Empty leaves the tool default.
	CacheDir string
	// GlobalCacheDir is the shared zig cache. Empty leaves the tool default.
	GlobalCacheDir string

	PIC              bool
	BundleCompilerRT bool
	Linkage          Linkage
	Release          Release

	// CPU is the cpu model passed with the feature toggles. Empty selects baseline.
	CPU     string
	Jobs    int
	Verbose bool
	// Options are extra -Dkey[=value] project options, passed in order.
	Options []string
}

// Validate checks the configuration before it reaches the invocation builder.
func (c *BuildConfiguration) Validate() error {
	if c.Name == "" {
		return ErrMissingLibraryName
	}
	if !validLibraryNameRegex.MatchString(c.Name) {
		return zerr.With(ErrInvalidLibraryName, "name", c.Name)
	}
	if c.EntryPoint == "" {
		return ErrMissingEntryPoint
	}
	if c.OutputDir == "" {
		return ErrMissingOutputDir
	}
	if c.Jobs < 0 {
		return zerr.With(ErrInvalidJobs, "jobs", c.Jobs)
	}
	for _, opt := range c.Options {
		if err := validateOption(opt); err != nil {
			return err
		}
	}
	return nil
}

func validateOption(opt string) error {
	rest, ok := strings.CutPrefix(opt, "-D")
	if !ok {
		return zerr.With(ErrInvalidOption, "option", opt)
	}
	key, _, _ := strings.Cut(rest, "=")
	if key == "" {
		return zerr.With(ErrInvalidOption, "option", opt)
	}
	if _, reserved := reservedOptions[key]; reserved {
		return zerr.With(ErrReservedOption, "option", opt)
	}
	return nil
}

// BuildRequest bundles everything the host hands over for one build.
type BuildRequest struct {
	Target TargetDescription
	Config BuildConfiguration
}
