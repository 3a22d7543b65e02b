package zig

import (
	"strings"

	"go.trai.ch/zigcli/internal/core/domain"
)

// x86FeatureAliases covers x86 features whose host name differs from zig's.
var x86FeatureAliases = map[string]string{
	"avx512vbmi1": "avx512vbmi",
	"bmi1":        "bmi",
	"cmpxchg16b":  "cx16",
	"rdrand":      "rdrnd",
	"lahfsahf":    "sahf",
	"pclmulqdq":   "pclmul",
}

var featureReplacer = strings.NewReplacer("-", "_", ".", "_")

// translateFeature converts a host feature name to zig's spelling.
func translateFeature(arch, feature string) string {
	feature = featureReplacer.Replace(feature)
	if isX86(arch) {
		if alias, ok := x86FeatureAliases[feature]; ok {
			return alias
		}
	}
	return feature
}

// cpuValue renders the -Dcpu value: the model followed by +feature or
// -feature for every toggle, sorted by host feature name. It returns the
// empty string when there is neither a model nor a toggle.
func cpuValue(target domain.TargetDescription, model string) string {
	names := target.FeatureNames()
	if model == "" && len(names) == 0 {
		return ""
	}
	if model == "" {
		model = cpuBaseline
	}

	arch, ok := translateArch(target.Triple.Arch)
	if !ok {
		arch = target.Triple.Arch
	}

	var b strings.Builder
	b.WriteString(model)
	for _, name := range names {
		enabled, _ := target.Feature(name)
		if enabled {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(translateFeature(arch, name))
	}
	return b.String()
}
