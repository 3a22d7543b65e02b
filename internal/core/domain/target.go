package domain

import (
	"maps"
	"regexp"
	"slices"

	"go.trai.ch/zerr"
)

var validFeatureRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// TargetDescription is what the host build asks for: where the library runs,
// how it is optimized and which CPU features are toggled.
type TargetDescription struct {
	Triple   Triple
	Optimize Optimize
	features map[string]bool
}

// NewTargetDescription creates a target description. The feature map is
// copied so later changes by the caller do not leak in.
func NewTargetDescription(triple Triple, optimize Optimize, features map[string]bool) TargetDescription {
	var fs map[string]bool
	if len(features) > 0 {
		fs = maps.Clone(features)
	}
	return TargetDescription{
		Triple:   triple,
		Optimize: optimize,
		features: fs,
	}
}

// FeatureNames returns the toggled feature names in sorted order.
func (t TargetDescription) FeatureNames() []string {
	return slices.Sorted(maps.Keys(t.features))
}

// Feature reports the state of a feature toggle and whether it was set.
func (t TargetDescription) Feature(name string) (enabled, ok bool) {
	enabled, ok = t.features[name]
	return enabled, ok
}

// Features returns a copy of the feature toggles.
func (t TargetDescription) Features() map[string]bool {
	return maps.Clone(t.features)
}

// Validate checks that every feature toggle has a usable name.
func (t TargetDescription) Validate() error {
	for _, name := range t.FeatureNames() {
		if !validFeatureRegex.MatchString(name) {
			return zerr.With(ErrInvalidFeature, "feature", name)
		}
	}
	return nil
}
