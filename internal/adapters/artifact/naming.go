// Package artifact knows where zig installs a library and what the host
// must additionally link against.
package artifact

import (
	"path"

	"go.trai.ch/zigcli/internal/core/domain"
)

// Family groups target operating systems that share artifact conventions.
type Family uint8

const (
	// FamilyUnix covers Linux, Android, the BSDs and unknown systems.
	FamilyUnix Family = iota
	// FamilyApple covers macOS, iOS and the other Darwin systems.
	FamilyApple
	// FamilyWindows covers Windows with any ABI and UEFI, which zig links
	// with the COFF/PE conventions.
	FamilyWindows
	// FamilyWasm covers WASI, emscripten and freestanding targets.
	FamilyWasm
)

var osFamilies = map[string]Family{
	"darwin":     FamilyApple,
	"macos":      FamilyApple,
	"macosx":     FamilyApple,
	"ios":        FamilyApple,
	"tvos":       FamilyApple,
	"watchos":    FamilyApple,
	"visionos":   FamilyApple,
	"windows":    FamilyWindows,
	"uefi":       FamilyWindows,
	"wasi":       FamilyWasm,
	"wasip1":     FamilyWasm,
	"emscripten": FamilyWasm,
	"none":       FamilyWasm,
	"unknown":    FamilyWasm,
	"":           FamilyWasm,
}

// FamilyOf classifies the operating system of a host triple.
func FamilyOf(t domain.Triple) Family {
	if f, ok := osFamilies[t.OS]; ok {
		return f
	}
	return FamilyUnix
}

// Layout is where zig installs a library, relative to the prefix.
// Paths use forward slashes.
type Layout struct {
	Artifact   string
	Companions []string
}

// Expected returns the install layout of library name for the target and
// linkage. It reflects zig's install conventions at the time of writing;
// tests pin every entry.
func Expected(t domain.Triple, name string, linkage domain.Linkage) Layout {
	lib := domain.LibDirName
	bin := domain.BinDirName

	switch FamilyOf(t) {
	case FamilyWindows:
		if linkage == domain.LinkageDynamic {
			return Layout{
				Artifact:   path.Join(bin, name+".dll"),
				Companions: []string{path.Join(lib, name+".lib"), path.Join(bin, name+".pdb")},
			}
		}
		return Layout{
			Artifact:   path.Join(lib, name+".lib"),
			Companions: []string{path.Join(lib, name+".pdb")},
		}
	case FamilyApple:
		if linkage == domain.LinkageDynamic {
			return Layout{Artifact: path.Join(lib, "lib"+name+".dylib")}
		}
	case FamilyWasm:
		if linkage == domain.LinkageDynamic {
			return Layout{Artifact: path.Join(bin, name+".wasm")}
		}
	default:
		if linkage == domain.LinkageDynamic {
			return Layout{Artifact: path.Join(lib, "lib"+name+".so")}
		}
	}
	return Layout{Artifact: path.Join(lib, "lib"+name+".a")}
}
