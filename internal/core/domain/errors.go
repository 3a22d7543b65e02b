package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownOptimize is returned when an optimization mode is not one of
	// debug, release-fast, release-safe or release-small.
	ErrUnknownOptimize = zerr.New("unknown optimization mode")

	// ErrUnknownLinkage is returned when a linkage is neither static nor dynamic.
	ErrUnknownLinkage = zerr.New("unknown linkage, expected 'static' or 'dynamic'")

	// ErrUnknownRelease is returned when a release mode is not auto, fast, safe or small.
	ErrUnknownRelease = zerr.New("unknown release mode")

	// ErrInvalidTriple is returned when a target triple has fewer than two components.
	ErrInvalidTriple = zerr.New("invalid target triple")

	// ErrMissingLibraryName is returned when the build configuration has no library name.
	ErrMissingLibraryName = zerr.New("missing library name")

	// ErrInvalidLibraryName is returned when the library name contains invalid characters.
	ErrInvalidLibraryName = zerr.New("library name can only contain alphanumeric characters, hyphens and underscores")

	// ErrMissingEntryPoint is returned when the build configuration has no entry point.
	ErrMissingEntryPoint = zerr.New("missing entry point")

	// ErrMissingOutputDir is returned when the build configuration has no output directory.
	ErrMissingOutputDir = zerr.New("missing output directory")

	// ErrInvalidOption is returned when a user option is not of the form -Dkey[=value].
	ErrInvalidOption = zerr.New("invalid option, expected -Dkey or -Dkey=value")

	// ErrReservedOption is returned when a user option overrides a flag owned by the builder.
	ErrReservedOption = zerr.New("option is reserved and must be set through its dedicated setting")

	// ErrInvalidFeature is returned when a cpu feature toggle has an empty or malformed name.
	ErrInvalidFeature = zerr.New("invalid cpu feature name")

	// ErrInvalidJobs is returned when the job limit is negative.
	ErrInvalidJobs = zerr.New("job limit must not be negative")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownFormat is returned when a host directive format is not recognized.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrArtifactNotFound is returned when zig exits cleanly but the library is not installed.
	ErrArtifactNotFound = zerr.New("artifact not found in output directory")
)
