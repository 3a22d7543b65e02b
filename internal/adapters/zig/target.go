package zig

import (
	"strings"

	"go.trai.ch/zigcli/internal/core/domain"
)

// archAliases maps host architecture names to zig's.
var archAliases = map[string]string{
	"x86_64":      "x86_64",
	"amd64":       "x86_64",
	"i386":        "x86",
	"i486":        "x86",
	"i586":        "x86",
	"i686":        "x86",
	"x86":         "x86",
	"aarch64":     "aarch64",
	"arm64":       "aarch64",
	"aarch64_be":  "aarch64_be",
	"arm":         "arm",
	"armeb":       "armeb",
	"thumb":       "thumb",
	"riscv32":     "riscv32",
	"riscv64":     "riscv64",
	"riscv64gc":   "riscv64",
	"riscv64imac": "riscv64",
	"wasm32":      "wasm32",
	"wasm64":      "wasm64",
	"powerpc":     "powerpc",
	"powerpc64":   "powerpc64",
	"powerpc64le": "powerpc64le",
	"s390x":       "s390x",
	"loongarch64": "loongarch64",
	"mips":        "mips",
	"mipsel":      "mipsel",
	"mips64":      "mips64",
	"mips64el":    "mips64el",
	"sparc64":     "sparc64",
	"sparcv9":     "sparc64",
}

// archFamilies maps versioned architecture spellings by prefix, e.g.
// armv7 or thumbv7em. Checked in order after archAliases.
var archFamilies = []struct {
	prefix string
	zig    string
}{
	{"armv", "arm"},
	{"thumbv", "thumb"},
	{"riscv32", "riscv32"},
}

// osAliases maps host operating system names to zig's.
var osAliases = map[string]string{
	"linux":      "linux",
	"android":    "linux",
	"darwin":     "macos",
	"macos":      "macos",
	"macosx":     "macos",
	"ios":        "ios",
	"tvos":       "tvos",
	"watchos":    "watchos",
	"visionos":   "visionos",
	"windows":    "windows",
	"freebsd":    "freebsd",
	"netbsd":     "netbsd",
	"openbsd":    "openbsd",
	"dragonfly":  "dragonfly",
	"solaris":    "solaris",
	"illumos":    "illumos",
	"fuchsia":    "fuchsia",
	"haiku":      "haiku",
	"uefi":       "uefi",
	"wasi":       "wasi",
	"wasip1":     "wasi",
	"emscripten": "emscripten",
	"none":       "freestanding",
	"unknown":    "freestanding",
}

// abiAliases maps host ABI names that zig spells differently. An empty
// value drops the ABI. ABIs not listed are passed through.
var abiAliases = map[string]string{
	"sim": "simulator",
	"elf": "",
}

// TranslateTriple converts a host target triple to zig's arch-os[-abi]
// syntax. When the architecture or operating system is not in the alias
// tables the triple is returned unchanged and zig decides whether it is valid.
func TranslateTriple(t domain.Triple) string {
	arch, ok := translateArch(t.Arch)
	if !ok {
		return t.Raw
	}
	osName, ok := osAliases[t.OS]
	if !ok {
		return t.Raw
	}

	abi := t.ABI
	if alias, ok := abiAliases[abi]; ok {
		abi = alias
	}
	if t.OS == "android" && abi == "" {
		abi = "android"
	}

	if abi == "" {
		return arch + "-" + osName
	}
	return arch + "-" + osName + "-" + abi
}

func translateArch(arch string) (string, bool) {
	if zig, ok := archAliases[arch]; ok {
		return zig, true
	}
	for _, f := range archFamilies {
		if strings.HasPrefix(arch, f.prefix) {
			return f.zig, true
		}
	}
	return "", false
}

// isX86 reports whether a zig architecture belongs to the x86 family.
func isX86(arch string) bool {
	return strings.HasPrefix(arch, "x86")
}
