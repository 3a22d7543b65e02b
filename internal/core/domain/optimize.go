package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Optimize is the host build's optimization mode.
type Optimize uint8

const (
	// OptimizeDebug builds without optimizations and with safety checks.
	OptimizeDebug Optimize = iota + 1
	// OptimizeReleaseFast optimizes for speed and drops safety checks.
	OptimizeReleaseFast
	// OptimizeReleaseSafe optimizes for speed and keeps safety checks.
	OptimizeReleaseSafe
	// OptimizeReleaseSmall optimizes for size.
	OptimizeReleaseSmall
)

// Optimizes lists every optimization mode in declaration order.
var Optimizes = []Optimize{
	OptimizeDebug,
	OptimizeReleaseFast,
	OptimizeReleaseSafe,
	OptimizeReleaseSmall,
}

// String returns the host vocabulary name of the mode.
func (o Optimize) String() string {
	switch o {
	case OptimizeDebug:
		return "debug"
	case OptimizeReleaseFast:
		return "release-fast"
	case OptimizeReleaseSafe:
		return "release-safe"
	case OptimizeReleaseSmall:
		return "release-small"
	default:
		return "invalid"
	}
}

// Valid reports whether o is one of the declared modes.
func (o Optimize) Valid() bool {
	return o >= OptimizeDebug && o <= OptimizeReleaseSmall
}

// ParseOptimize parses a host optimization mode. It accepts the hyphenated
// host names as well as the CamelCase spelling used by zig.
func ParseOptimize(s string) (Optimize, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "", "-", "").Replace(norm)
	switch norm {
	case "debug":
		return OptimizeDebug, nil
	case "releasefast":
		return OptimizeReleaseFast, nil
	case "releasesafe":
		return OptimizeReleaseSafe, nil
	case "releasesmall":
		return OptimizeReleaseSmall, nil
	default:
		return 0, zerr.With(ErrUnknownOptimize, "optimize", s)
	}
}

// OptimizeFromLevel maps a numeric host optimization level to a mode.
// Levels 1 through 3 keep safety checks; size levels select ReleaseSmall.
func OptimizeFromLevel(level string) (Optimize, error) {
	switch strings.TrimSpace(level) {
	case "0":
		return OptimizeDebug, nil
	case "1", "2", "3":
		return OptimizeReleaseSafe, nil
	case "s", "z":
		return OptimizeReleaseSmall, nil
	default:
		return 0, zerr.With(ErrUnknownOptimize, "opt_level", level)
	}
}

// Release selects zig's own release mode, independent of -Doptimize.
type Release uint8

const (
	// ReleaseNone leaves the release flag off.
	ReleaseNone Release = iota
	// ReleaseAuto lets the project pick its preferred release mode.
	ReleaseAuto
	// ReleaseFast requests the fast release mode.
	ReleaseFast
	// ReleaseSafe requests the safe release mode.
	ReleaseSafe
	// ReleaseSmall requests the small release mode.
	ReleaseSmall
)

// String returns the configuration name of the release mode.
func (r Release) String() string {
	switch r {
	case ReleaseNone:
		return ""
	case ReleaseAuto:
		return "auto"
	case ReleaseFast:
		return "fast"
	case ReleaseSafe:
		return "safe"
	case ReleaseSmall:
		return "small"
	default:
		return "invalid"
	}
}

// ParseRelease parses a release mode. The empty string selects ReleaseNone.
func ParseRelease(s string) (Release, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ReleaseNone, nil
	case "auto":
		return ReleaseAuto, nil
	case "fast":
		return ReleaseFast, nil
	case "safe":
		return ReleaseSafe, nil
	case "small":
		return ReleaseSmall, nil
	default:
		return 0, zerr.With(ErrUnknownRelease, "release", s)
	}
}

// Linkage selects whether the library is archived or linked as a shared object.
type Linkage uint8

const (
	// LinkageStatic produces a static archive.
	LinkageStatic Linkage = iota
	// LinkageDynamic produces a shared library.
	LinkageDynamic
)

// String returns the configuration name of the linkage.
func (l Linkage) String() string {
	if l == LinkageDynamic {
		return "dynamic"
	}
	return "static"
}

// ParseLinkage parses a linkage. The empty string selects LinkageStatic.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "static":
		return LinkageStatic, nil
	case "dynamic", "shared":
		return LinkageDynamic, nil
	default:
		return 0, zerr.With(ErrUnknownLinkage, "linkage", s)
	}
}
