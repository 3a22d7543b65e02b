package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// knownVendors are the vendor components that can appear in the second
// position of a host triple. A three component triple whose middle part is
// not listed here is read as arch-os-abi.
var knownVendors = map[string]struct{}{
	"unknown":  {},
	"pc":       {},
	"apple":    {},
	"nvidia":   {},
	"sun":      {},
	"fortanix": {},
	"wrs":      {},
	"kmc":      {},
	"esp":      {},
	"sony":     {},
	"nintendo": {},
	"unikraft": {},
	"uwp":      {},
}

// Triple is a host target triple split into its components.
// Raw keeps the original spelling so unrecognized triples can pass through.
type Triple struct {
	Arch   string
	Vendor string
	OS     string
	ABI    string
	Raw    string
}

// ParseTriple splits a host target triple. It never rejects a non-empty
// triple: components that cannot be classified are left for the external
// tool to judge.
func ParseTriple(s string) (Triple, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Triple{}, zerr.With(ErrInvalidTriple, "triple", s)
	}

	t := Triple{Raw: s}
	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		t.Arch = parts[0]
	case 2:
		t.Arch, t.OS = parts[0], parts[1]
	case 3:
		if _, ok := knownVendors[parts[1]]; ok {
			t.Arch, t.Vendor, t.OS = parts[0], parts[1], parts[2]
		} else {
			t.Arch, t.OS, t.ABI = parts[0], parts[1], parts[2]
		}
	default:
		t.Arch, t.Vendor, t.OS = parts[0], parts[1], parts[2]
		t.ABI = strings.Join(parts[3:], "-")
	}
	return t, nil
}

// MustParseTriple is like ParseTriple but panics on error. It is meant for
// tests and static tables.
func MustParseTriple(s string) Triple {
	t, err := ParseTriple(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the triple as it was given.
func (t Triple) String() string {
	return t.Raw
}

// hostArch maps GOARCH to the host triple vocabulary.
var hostArch = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "armv7",
	"riscv64": "riscv64gc",
	"ppc64le": "powerpc64le",
	"ppc64":   "powerpc64",
	"s390x":   "s390x",
	"loong64": "loongarch64",
	"mips64":  "mips64",
	"mipsle":  "mipsel",
	"wasm":    "wasm32",
}

// HostTriple derives the host triple for a GOOS/GOARCH pair. It is used as
// the default target when none is configured.
func HostTriple(goos, goarch string) Triple {
	arch, ok := hostArch[goarch]
	if !ok {
		arch = goarch
	}

	var raw string
	switch goos {
	case "linux":
		switch arch {
		case "armv7":
			raw = arch + "-unknown-linux-gnueabihf"
		default:
			raw = arch + "-unknown-linux-gnu"
		}
	case "android":
		raw = arch + "-linux-android"
	case "darwin":
		raw = arch + "-apple-darwin"
	case "ios":
		raw = arch + "-apple-ios"
	case "windows":
		raw = arch + "-pc-windows-msvc"
	case "wasip1":
		raw = arch + "-wasi"
	case "js":
		raw = arch + "-unknown-unknown"
	default:
		raw = arch + "-unknown-" + goos
	}
	return MustParseTriple(raw)
}
