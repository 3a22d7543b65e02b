package zig

import "go.trai.ch/zigcli/internal/core/domain"

// optimizeValue maps a host optimization mode to its -Doptimize value.
// The switch covers every declared mode; anything else is rejected.
func optimizeValue(o domain.Optimize) (string, bool) {
	switch o {
	case domain.OptimizeDebug:
		return optimizeDebug, true
	case domain.OptimizeReleaseFast:
		return optimizeReleaseFast, true
	case domain.OptimizeReleaseSafe:
		return optimizeReleaseSafe, true
	case domain.OptimizeReleaseSmall:
		return optimizeReleaseSmall, true
	default:
		return "", false
	}
}

// releaseFlag renders zig's --release flag. ReleaseNone renders nothing.
func releaseFlag(r domain.Release) string {
	switch r {
	case domain.ReleaseAuto:
		return flagRelease
	case domain.ReleaseFast, domain.ReleaseSafe, domain.ReleaseSmall:
		return flagRelease + "=" + r.String()
	default:
		return ""
	}
}
