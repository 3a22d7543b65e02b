package artifact

import (
	"strings"

	"go.trai.ch/zigcli/internal/core/domain"
)

// SystemLibs returns the libraries the host has to link next to a static
// archive for the target. Shared libraries carry their own dependencies, so
// dynamic linkage needs none. The table is keyed on the triple only.
func SystemLibs(t domain.Triple, linkage domain.Linkage) []string {
	if linkage == domain.LinkageDynamic {
		return nil
	}

	switch FamilyOf(t) {
	case FamilyApple:
		return []string{"System"}
	case FamilyWindows:
		if t.OS == "uefi" {
			return nil
		}
		return []string{"ntdll", "kernel32"}
	case FamilyWasm:
		return nil
	default:
		if t.OS == "linux" && strings.HasPrefix(t.ABI, "musl") {
			return nil
		}
		return []string{"c"}
	}
}
