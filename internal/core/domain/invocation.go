package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ToolPath is the zig executable, either a bare name searched on PATH or a path.
type ToolPath string

// String returns the executable name or path.
func (p ToolPath) String() string {
	return string(p)
}

// Invocation is a fully formed command line for one build. It also carries
// the inputs it was derived from so the result can be resolved without
// recomputing anything.
type Invocation struct {
	Tool   ToolPath
	Args   []string
	Dir    string
	Prefix string

	Target TargetDescription
	Config BuildConfiguration
}

// Argv returns the executable followed by its arguments.
func (inv *Invocation) Argv() []string {
	argv := make([]string, 0, len(inv.Args)+1)
	argv = append(argv, inv.Tool.String())
	return append(argv, inv.Args...)
}

// String renders the command line with arguments quoted where needed.
func (inv *Invocation) String() string {
	argv := inv.Argv()
	quoted := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\n\"'\\$") {
			quoted[i] = strconv.Quote(a)
			continue
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}

// Digest returns a stable fingerprint of the executable, working directory
// and arguments.
func (inv *Invocation) Digest() string {
	h := xxhash.New()
	_, _ = h.WriteString(inv.Tool.String())
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(inv.Dir)
	_, _ = h.Write([]byte{0})
	for _, a := range inv.Args {
		_, _ = h.WriteString(a)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
