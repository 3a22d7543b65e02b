// Package locator resolves the zig executable to launch.
package locator

import (
	"os"

	"go.trai.ch/zigcli/internal/core/domain"
)

// LookupEnvFunc reads an environment variable.
type LookupEnvFunc func(key string) (string, bool)

// Locator implements ports.ToolLocator.
type Locator struct {
	lookupEnv LookupEnvFunc
}

// New creates a Locator that reads the process environment.
func New() *Locator {
	return NewWithLookup(os.LookupEnv)
}

// NewWithLookup creates a Locator that reads variables through lookup.
func NewWithLookup(lookup LookupEnvFunc) *Locator {
	return &Locator{lookupEnv: lookup}
}

// Resolve returns the value of ZIG verbatim when it is set and non-empty,
// otherwise the bare name "zig" to be searched on PATH. It never fails:
// a missing executable surfaces when the process is launched.
func (l *Locator) Resolve() domain.ToolPath {
	if v, ok := l.lookupEnv(domain.ToolEnvVar); ok && v != "" {
		return domain.ToolPath(v)
	}
	return domain.DefaultToolName
}
